// Package api declares HTTP contracts and route registration helpers for
// the hub's presentation layer.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/okian/fiesta/internal/app"
	"github.com/okian/fiesta/internal/branding"
	"github.com/okian/fiesta/internal/domain/model"
	"github.com/okian/fiesta/internal/gate"
)

// Dependencies required by HTTP handlers. The interface bundle keeps the
// handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Branding() branding.Branding
	EnabledGames(ctx context.Context) []branding.GameInfo

	TopPlayers(ctx context.Context, limit int) []model.LeaderboardEntry
	GameLeaderboard(ctx context.Context, game model.GameID, limit int) []model.ScoreRecord
	SaveScore(ctx context.Context, draft service.ScoreDraft) model.ScoreRecord
	ClearLeaderboard(ctx context.Context)

	LoadSettings(ctx context.Context) model.UserSettings
	SaveSettings(ctx context.Context, settings model.UserSettings) gate.Snapshot
	Settings(ctx context.Context) gate.Snapshot
}

// ScoreDraft mirrors the write shape accepted by POST /scores.
type ScoreDraft = service.ScoreDraft

// Server wires HTTP routes for the hub API.
type Server struct {
	healthHandler      *HealthHandler
	gamesHandler       *GamesHandler
	leaderboardHandler *LeaderboardHandler
	scoresHandler      *ScoresHandler
	settingsHandler    *SettingsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, maxLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		gamesHandler:       NewGamesHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLimit),
		scoresHandler:      NewScoresHandler(deps),
		settingsHandler:    NewSettingsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/games", MetricsMiddleware(s.gamesHandler.HandleGetGames, "games"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetTopPlayers, "leaderboard"))
	mux.HandleFunc("/leaderboard/", MetricsMiddleware(s.leaderboardHandler.HandleGetGameLeaderboard, "game_leaderboard"))
	mux.HandleFunc("/scores", MetricsMiddleware(s.scoresHandler.HandleScores, "scores"))
	mux.HandleFunc("/settings", MetricsMiddleware(s.settingsHandler.HandleSettings, "settings"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
