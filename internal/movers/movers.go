package movers

import (
	"math"
	"sort"
	"strings"

	"github.com/betbot/polydash/pkg/sdk/api"
)

const (
	DefaultLimit     = 10
	MinLimit         = 1
	MaxLimit         = 50
	DefaultMinVolume = 1000.0

	// UnknownTitle is the sentinel for markets without a usable title.
	UnknownTitle = "(unknown)"
)

// Mover is one market ranked by magnitude of its 24-hour price change.
// Numeric fields are independently nullable; a null serializes as JSON null.
type Mover struct {
	ID               string   `json:"id,omitempty"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug,omitempty"`
	Icon             string   `json:"icon,omitempty"`
	Price            *float64 `json:"price"`
	Change24h        *float64 `json:"change24h"`
	PercentChange24h *float64 `json:"percentChange24h"`
	Volume24Hr       *float64 `json:"volume24hr"`
}

// Rank computes movers from raw market snapshots: coerce numerics, drop
// records without a 24h change, apply the volume threshold, sort by absolute
// change descending, and truncate to limit.
//
// limit is clamped to [MinLimit, MaxLimit]. minVolume <= 0 or non-finite
// disables volume filtering. Malformed individual snapshots degrade to null
// fields and fall out through the change filter; Rank itself never fails.
func Rank(snapshots []api.MarketSnapshot, limit int, minVolume float64) []Mover {
	limit = ClampLimit(limit)
	filterVolume := minVolume > 0 && !math.IsNaN(minVolume) && !math.IsInf(minVolume, 0)

	movers := make([]Mover, 0, len(snapshots))
	for _, s := range snapshots {
		m := build(s)
		if m.Change24h == nil {
			continue
		}
		if filterVolume {
			vol := 0.0
			if m.Volume24Hr != nil {
				vol = *m.Volume24Hr
			}
			if vol < minVolume {
				continue
			}
		}
		movers = append(movers, m)
	}

	sort.SliceStable(movers, func(i, j int) bool {
		return math.Abs(*movers[i].Change24h) > math.Abs(*movers[j].Change24h)
	})

	if len(movers) > limit {
		movers = movers[:limit]
	}
	return movers
}

// ClampLimit bounds a requested result count to [MinLimit, MaxLimit].
func ClampLimit(limit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func build(s api.MarketSnapshot) Mover {
	price := s.LastTradePrice.Ptr()
	change := s.OneDayPriceChange.Ptr()

	// percent = change / (price - change), i.e. against the implied
	// previous price. Null when either input is null or the previous
	// price is exactly zero.
	var pct *float64
	if price != nil && change != nil {
		if prev := *price - *change; prev != 0 {
			v := *change / prev
			pct = &v
		}
	}

	m := Mover{
		ID:               s.ID,
		Title:            title(s),
		Price:            price,
		Change24h:        change,
		PercentChange24h: pct,
		Volume24Hr:       s.Volume24Hr.Ptr(),
	}
	if strings.TrimSpace(s.Slug) != "" {
		m.Slug = s.Slug
	}
	if s.Icon != "" {
		m.Icon = s.Icon
	} else if s.Image != "" {
		m.Icon = s.Image
	}
	return m
}

func title(s api.MarketSnapshot) string {
	if strings.TrimSpace(s.Question) != "" {
		return s.Question
	}
	if strings.TrimSpace(s.Title) != "" {
		return s.Title
	}
	return UnknownTitle
}
