package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/fiesta/internal/app"
	"github.com/okian/fiesta/internal/domain/model"
)

// ScoresDependencies defines the interface for score writes.
type ScoresDependencies interface {
	SaveScore(ctx context.Context, draft service.ScoreDraft) model.ScoreRecord
	ClearLeaderboard(ctx context.Context)
}

// ScoresHandler handles score submission and the destructive reset.
type ScoresHandler struct {
	deps ScoresDependencies
}

// NewScoresHandler creates a new scores handler.
func NewScoresHandler(deps ScoresDependencies) *ScoresHandler {
	return &ScoresHandler{deps: deps}
}

// HandleScores dispatches POST /scores and DELETE /scores requests.
func (h *ScoresHandler) HandleScores(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleSave(w, r)
	case http.MethodDelete:
		h.handleClear(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *ScoresHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	const op = "api.save_score"
	var draft ScoreDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if err := validateDraft(draft); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}
	record := h.deps.SaveScore(r.Context(), draft)
	writeJSON(w, http.StatusCreated, record)
}

func (h *ScoresHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	h.deps.ClearLeaderboard(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func validateDraft(draft ScoreDraft) error {
	switch {
	case model.NormalizePlayerName(draft.PlayerName) == "":
		return errors.New("missing playerName")
	case !draft.Game.Valid():
		return ErrUnknownGame
	case draft.Score < 0:
		return errors.New("score must be non-negative")
	}
	return nil
}
