package positions

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(t *testing.T, raw string) []any {
	t.Helper()
	var v []any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestSummarizeMixedAliases(t *testing.T) {
	recs := records(t, `[
		{"size":"10","curPrice":0.5,"realizedPnl":"1.25","cashPnl":-0.5},
		{"shares":4,"current_price":"0.25","realized_pnl":0.75,"unrealized_pnl":"2"}
	]`)

	s := Summarize(recs)
	assert.Equal(t, 2, s.Count)
	assert.True(t, s.TotalShares.Equal(decimal.RequireFromString("14")), "totalShares=%s", s.TotalShares)
	// 10*0.5 + 4*0.25 = 6
	assert.True(t, s.TotalValue.Equal(decimal.RequireFromString("6")), "totalValue=%s", s.TotalValue)
	assert.True(t, s.TotalRealizedPnl.Equal(decimal.RequireFromString("2")), "totalRealizedPnl=%s", s.TotalRealizedPnl)
	assert.True(t, s.TotalUnrealizedPnl.Equal(decimal.RequireFromString("1.5")), "totalUnrealizedPnl=%s", s.TotalUnrealizedPnl)
}

func TestSummarizeSkipsJunk(t *testing.T) {
	recs := records(t, `[
		"not a record",
		{"size":"abc","curPrice":"xyz"},
		{"size":"3"}
	]`)

	s := Summarize(recs)
	// Only object records are counted; unparsable fields contribute nothing.
	assert.Equal(t, 2, s.Count)
	assert.True(t, s.TotalShares.Equal(decimal.RequireFromString("3")), "totalShares=%s", s.TotalShares)
	assert.True(t, s.TotalValue.IsZero())
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Count)
	assert.True(t, s.TotalShares.IsZero())
}

func TestSummarizeValueNeedsBothSharesAndPrice(t *testing.T) {
	recs := records(t, `[{"curPrice":0.5},{"size":"2"}]`)
	s := Summarize(recs)
	assert.True(t, s.TotalValue.IsZero(), "value requires shares and price on the same record")
	assert.True(t, s.TotalShares.Equal(decimal.RequireFromString("2")))
}
