package positions

import (
	"github.com/shopspring/decimal"
)

// Summary aggregates a normalized positions list. Upstream sends sizes and
// prices as strings as often as numbers, so totals are summed with decimals
// rather than floats.
type Summary struct {
	Count              int             `json:"count"`
	TotalShares        decimal.Decimal `json:"totalShares"`
	TotalValue         decimal.Decimal `json:"totalValue"`
	TotalRealizedPnl   decimal.Decimal `json:"totalRealizedPnl"`
	TotalUnrealizedPnl decimal.Decimal `json:"totalUnrealizedPnl"`
}

// Field names vary across data API shapes; each logical field is probed
// through its known aliases, first hit wins.
var (
	sharesAliases        = []string{"shares", "size"}
	currentPriceAliases  = []string{"current_price", "currentPrice", "curPrice"}
	realizedPnlAliases   = []string{"realized_pnl", "realizedPnl"}
	unrealizedPnlAliases = []string{"unrealized_pnl", "unrealizedPnl", "cashPnl"}
)

// Summarize computes totals over position records. Non-object entries and
// unparsable fields are skipped; a record contributes whatever fields it has.
func Summarize(records []any) Summary {
	var s Summary
	for _, r := range records {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}
		s.Count++

		shares, hasShares := probe(rec, sharesAliases)
		if hasShares {
			s.TotalShares = s.TotalShares.Add(shares)
		}
		if price, ok := probe(rec, currentPriceAliases); ok && hasShares {
			s.TotalValue = s.TotalValue.Add(shares.Mul(price))
		}
		if pnl, ok := probe(rec, realizedPnlAliases); ok {
			s.TotalRealizedPnl = s.TotalRealizedPnl.Add(pnl)
		}
		if pnl, ok := probe(rec, unrealizedPnlAliases); ok {
			s.TotalUnrealizedPnl = s.TotalUnrealizedPnl.Add(pnl)
		}
	}
	return s
}

func probe(rec map[string]any, aliases []string) (decimal.Decimal, bool) {
	for _, key := range aliases {
		v, ok := rec[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return decimal.NewFromFloat(t), true
		case string:
			if d, err := decimal.NewFromString(t); err == nil {
				return d, true
			}
		}
	}
	return decimal.Decimal{}, false
}
