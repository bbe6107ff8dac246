package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Numeric handles Polymarket numbers that may arrive as numbers, numeric
// strings, null, or garbage. Anything unparsable or non-finite decodes to an
// invalid value instead of failing the whole payload.
type Numeric struct {
	Float64 float64
	Valid   bool
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	*n = Numeric{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || strings.EqualFold(string(data), "null") {
		return nil
	}

	// Quoted numbers.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		*n = Numeric{Float64: f, Valid: true}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Numeric{Float64: f, Valid: true}
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// Ptr returns the value as a nullable pointer.
func (n Numeric) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// MarketSnapshot is one market record from the gamma /markets endpoint.
// Only the fields the dashboard consumes are declared; everything else the
// API sends is ignored.
type MarketSnapshot struct {
	ID                string  `json:"id"`
	Question          string  `json:"question"`
	Title             string  `json:"title"`
	Slug              string  `json:"slug"`
	Icon              string  `json:"icon"`
	Image             string  `json:"image"`
	LastTradePrice    Numeric `json:"lastTradePrice"`
	OneDayPriceChange Numeric `json:"oneDayPriceChange"`
	Volume24Hr        Numeric `json:"volume24hr"`
}

// MarketQuery controls /markets requests.
type MarketQuery struct {
	Limit  int
	Active *bool
	Closed *bool
}
