package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/fiesta/internal/domain/model"
)

// defaultLimit applies when no limit query parameter is given, matching
// the reference leaderboard page.
const defaultLimit = 10

// LeaderboardDependencies defines the interface for ranking queries.
type LeaderboardDependencies interface {
	TopPlayers(ctx context.Context, limit int) []model.LeaderboardEntry
	GameLeaderboard(ctx context.Context, game model.GameID, limit int) []model.ScoreRecord
}

// LeaderboardHandler handles leaderboard requests.
type LeaderboardHandler struct {
	deps     LeaderboardDependencies
	maxLimit int
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps LeaderboardDependencies, maxLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetTopPlayers handles GET /leaderboard?limit=N requests.
func (h *LeaderboardHandler) HandleGetTopPlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_top_players"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n, ok := h.limit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	entries := h.deps.TopPlayers(r.Context(), n)
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandleGetGameLeaderboard handles GET /leaderboard/{game}?limit=N requests.
func (h *LeaderboardHandler) HandleGetGameLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_game_leaderboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	game := model.GameID(strings.TrimPrefix(r.URL.Path, "/leaderboard/"))
	if !game.Valid() {
		writeError(w, http.StatusNotFound, "unknown_game", NewKind(op, ErrUnknownGame))
		return
	}
	n, ok := h.limit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	records := h.deps.GameLeaderboard(r.Context(), game, n)
	if records == nil {
		records = []model.ScoreRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// limit parses and bounds the limit query parameter.
func (h *LeaderboardHandler) limit(r *http.Request) (int, bool) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(limitStr)
	if err != nil || n < 1 || n > h.maxLimit {
		return 0, false
	}
	return n, true
}
