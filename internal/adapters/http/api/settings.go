package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/fiesta/internal/domain/model"
	"github.com/okian/fiesta/internal/gate"
)

// SettingsDependencies defines the interface for the configuration gate.
type SettingsDependencies interface {
	LoadSettings(ctx context.Context) model.UserSettings
	SaveSettings(ctx context.Context, settings model.UserSettings) gate.Snapshot
	Settings(ctx context.Context) gate.Snapshot
}

// SettingsHandler handles the configuration dialog's reads and writes.
type SettingsHandler struct {
	deps SettingsDependencies
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(deps SettingsDependencies) *SettingsHandler {
	return &SettingsHandler{deps: deps}
}

type settingsResponse struct {
	Configured    bool                  `json:"configured"`
	Games         map[model.GameID]bool `json:"games"`
	DurationDays  int                   `json:"durationDays"`
	DurationHours int                   `json:"durationHours"`
	ShowBanner    bool                  `json:"showBanner"`
	// Destination is set when exactly one game is enabled: the hub routes
	// straight into it instead of showing a one-item list.
	Destination model.GameID `json:"destination,omitempty"`
}

// HandleSettings dispatches GET /settings and PUT /settings requests.
func (h *SettingsHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPut:
		h.handleSave(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *SettingsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toResponse(h.deps.Settings(r.Context())))
}

func (h *SettingsHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	const op = "api.save_settings"
	var settings model.UserSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	writeJSON(w, http.StatusOK, toResponse(h.deps.SaveSettings(r.Context(), settings)))
}

func toResponse(snap gate.Snapshot) settingsResponse {
	resp := settingsResponse{
		Configured:    snap.Configured,
		Games:         snap.Games,
		DurationDays:  snap.DurationDays,
		DurationHours: snap.DurationHours,
		ShowBanner:    snap.ShowBanner,
	}
	if dest, ok := snap.Destination(); ok {
		resp.Destination = dest
	}
	return resp
}
