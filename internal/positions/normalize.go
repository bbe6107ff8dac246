package positions

import (
	"sort"
	"strconv"
)

// Normalize extracts an ordered list of position records from a decoded
// positions payload of unknown shape. The data API has returned, across
// versions, a list under "positions", a list under "data", and an object
// keyed by numeric string indices; the first matching shape wins and
// anything unrecognized resolves to an empty list. Never fails.
func Normalize(payload any) []any {
	obj, ok := payload.(map[string]any)
	if !ok {
		return []any{}
	}

	if list, ok := obj["positions"].([]any); ok {
		return list
	}
	if list, ok := obj["data"].([]any); ok {
		return list
	}

	// Numeric-indexed object: {"0": {...}, "1": {...}, "user": "0x.."}.
	type indexed struct {
		index int
		value any
	}
	var entries []indexed
	for key, value := range obj {
		if !isNumericKey(key) {
			continue
		}
		idx, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		entries = append(entries, indexed{index: idx, value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	out := []any{}
	for _, e := range entries {
		if _, ok := e.value.(map[string]any); ok {
			out = append(out, e.value)
		}
	}
	return out
}

func isNumericKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
