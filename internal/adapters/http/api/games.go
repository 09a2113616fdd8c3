package api

import (
	"context"
	"net/http"

	"github.com/okian/fiesta/internal/branding"
)

// GamesDependencies defines the interface for hub catalog queries.
type GamesDependencies interface {
	Branding() branding.Branding
	EnabledGames(ctx context.Context) []branding.GameInfo
}

// GamesHandler handles hub catalog requests.
type GamesHandler struct {
	deps GamesDependencies
}

// NewGamesHandler creates a new games handler.
func NewGamesHandler(deps GamesDependencies) *GamesHandler {
	return &GamesHandler{deps: deps}
}

type gamesResponse struct {
	CompanyName string              `json:"companyName"`
	BrandColor  string              `json:"brandColor"`
	Motive      string              `json:"motive"`
	Games       []branding.GameInfo `json:"games"`
}

// HandleGetGames handles GET /games requests: the enabled catalog plus
// the branding the hub page renders with.
func (h *GamesHandler) HandleGetGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	b := h.deps.Branding()
	writeJSON(w, http.StatusOK, gamesResponse{
		CompanyName: b.CompanyName,
		BrandColor:  b.BrandColor,
		Motive:      b.Motive,
		Games:       h.deps.EnabledGames(r.Context()),
	})
}
