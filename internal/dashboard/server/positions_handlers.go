package server

import (
	"net/http"
	"strings"

	"github.com/betbot/polydash/internal/positions"
	"github.com/betbot/polydash/pkg/logger"
)

type positionsResponse struct {
	User      string            `json:"user"`
	Positions []any             `json:"positions"`
	Summary   positions.Summary `json:"summary"`
	Raw       any               `json:"raw"`
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	user := strings.TrimSpace(q.Get("user"))
	if user == "" {
		user = strings.TrimSpace(q.Get("address"))
	}
	if user == "" {
		user = s.cfg.DefaultUserAddress
	}
	if user == "" {
		writeError(w, http.StatusBadRequest,
			"Missing wallet address. Provide ?user=0x... or set POLYMARKET_USER_ADDRESS.")
		return
	}

	raw, err := s.api.FetchPositions(r.Context(), user)
	if err != nil {
		logger.Warnf("positions: fetch for %s: %v", user, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	list := positions.Normalize(raw)
	writeJSON(w, http.StatusOK, positionsResponse{
		User:      user,
		Positions: list,
		Summary:   positions.Summarize(list),
		Raw:       raw,
	})
}
