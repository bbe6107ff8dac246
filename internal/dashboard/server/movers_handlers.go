package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/betbot/polydash/internal/movers"
	"github.com/betbot/polydash/pkg/logger"
	"github.com/betbot/polydash/pkg/sdk/api"
)

// marketsFetchLimit is the slice of active markets pulled per movers
// request; ranking happens locally over this batch.
const marketsFetchLimit = 250

type moversResponse struct {
	Movers []movers.Mover `json:"movers"`
	AsOf   string         `json:"asOf"`
}

func (s *Server) handleMovers(w http.ResponseWriter, r *http.Request) {
	limit := movers.DefaultLimit
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	minVolume := movers.DefaultMinVolume
	if v := strings.TrimSpace(r.URL.Query().Get("minVolume")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			minVolume = f
		}
	}

	active, closed := true, false
	snapshots, err := s.api.FetchMarkets(r.Context(), api.MarketQuery{
		Limit:  marketsFetchLimit,
		Active: &active,
		Closed: &closed,
	})
	if err != nil {
		logger.Warnf("movers: fetch markets: %v", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, moversResponse{
		Movers: movers.Rank(snapshots, limit, minVolume),
		AsOf:   time.Now().UTC().Format(time.RFC3339),
	})
}
