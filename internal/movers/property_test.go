package movers

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/betbot/polydash/pkg/sdk/api"
)

// Rank must uphold its output guarantees for arbitrary snapshot batches:
// bounded length, non-null change on every record, volume threshold
// satisfied, and |change| non-increasing across the sequence.
func TestProperty_RankOutputGuarantees(t *testing.T) {
	property := func(snaps []api.MarketSnapshot, limit int, minVolume float64) bool {
		out := Rank(snaps, limit, minVolume)

		if len(out) > ClampLimit(limit) || len(out) > MaxLimit {
			return false
		}

		filtering := minVolume > 0 && !math.IsNaN(minVolume) && !math.IsInf(minVolume, 0)
		prevAbs := math.Inf(1)
		for _, m := range out {
			if m.Change24h == nil {
				return false
			}
			abs := math.Abs(*m.Change24h)
			if abs > prevAbs {
				return false
			}
			prevAbs = abs

			if filtering {
				vol := 0.0
				if m.Volume24Hr != nil {
					vol = *m.Volume24Hr
				}
				if vol < minVolume {
					return false
				}
			}
		}
		return true
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 500}); err != nil {
		t.Fatal(err)
	}
}

// Disabling the volume filter must never drop a record that survives the
// change filter: output with threshold 0 has at least as many movers as with
// any positive threshold.
func TestProperty_DisabledVolumeFilterKeepsAll(t *testing.T) {
	property := func(snaps []api.MarketSnapshot, threshold float64) bool {
		unfiltered := Rank(snaps, MaxLimit, 0)
		filtered := Rank(snaps, MaxLimit, math.Abs(threshold))
		return len(filtered) <= len(unfiltered)
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 300}); err != nil {
		t.Fatal(err)
	}
}
