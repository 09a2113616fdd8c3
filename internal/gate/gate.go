// Package gate holds the first-run/expiring settings gate: the one place
// that decides whether the hub is configured, which games are enabled,
// and when the operator's choice lapses.
package gate

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/okian/fiesta/internal/adapters/storage"
	"github.com/okian/fiesta/internal/domain/model"
	"github.com/okian/fiesta/pkg/logger"
	"github.com/okian/fiesta/pkg/metrics"
)

// settingsKey is the storage key for the whole settings blob. The legacy
// separate "appConfigured" flag is folded into the blob.
const settingsKey = "userSettings"

// Defaults applied when no duration was ever chosen.
const (
	defaultDurationDays  = 1
	defaultDurationHours = 0
)

// Snapshot is the resolved view every consumer works from: expiry logic
// lives here and nowhere else.
type Snapshot struct {
	// Configured is false when settings are absent, expired, or the
	// configuration step was never finished; the hub must then run the
	// configuration dialog before showing the games list.
	Configured bool

	// Games is the active enabled-set: all games default to enabled,
	// persisted flags win per key.
	Games map[model.GameID]bool

	DurationDays  int
	DurationHours int
	ShowBanner    bool
	ExpiresAt     *time.Time
}

// EnabledGames returns the enabled game ids in catalog order.
func (s Snapshot) EnabledGames() []model.GameID {
	out := make([]model.GameID, 0, len(s.Games))
	for _, id := range model.AllGames() {
		if s.Games[id] {
			out = append(out, id)
		}
	}
	return out
}

// Destination returns the game to route straight into when exactly one
// game is enabled, skipping the one-item hub list.
func (s Snapshot) Destination() (model.GameID, bool) {
	enabled := s.EnabledGames()
	if len(enabled) == 1 {
		return enabled[0], true
	}
	return "", false
}

// Gate is the process-wide settings state. Components subscribe for
// changes instead of re-reading storage ad hoc.
type Gate struct {
	mu    sync.Mutex
	store storage.Store
	clock func() time.Time
	log   logger.Logger
	subs  []func(Snapshot)
}

// Option applies a configuration option to the Gate.
type Option func(*Gate)

// WithLogger sets a custom logger for the gate.
func WithLogger(l logger.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.log = l
		}
	}
}

// WithClock overrides the time source used for expiry checks.
func WithClock(clock func() time.Time) Option {
	return func(g *Gate) {
		if clock != nil {
			g.clock = clock
		}
	}
}

// New creates a gate over the given store.
func New(store storage.Store, opts ...Option) *Gate {
	g := &Gate{
		store: store,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logger.Get()
	}
	return g
}

// Load returns the raw persisted settings. Absent or malformed data
// yields the zero value, which Snapshot treats as unconfigured.
func (g *Gate) Load(ctx context.Context) model.UserSettings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadLocked(ctx)
}

func (g *Gate) loadLocked(ctx context.Context) model.UserSettings {
	var settings model.UserSettings
	data, ok := g.store.Read(settingsKey)
	if !ok {
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		g.log.Warn(ctx, "discarding malformed settings", logger.Error(err))
		return model.UserSettings{}
	}
	return settings
}

// Snapshot resolves the persisted settings into the active view per the
// gate algorithm: absent, expired, or unfinished configuration reports
// unconfigured with every game enabled; otherwise the persisted games
// map is merged over the all-enabled defaults.
func (g *Gate) Snapshot(ctx context.Context) Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resolveLocked(g.loadLocked(ctx))
}

func (g *Gate) resolveLocked(settings model.UserSettings) Snapshot {
	snap := Snapshot{
		Games:         make(map[model.GameID]bool, len(model.AllGames())),
		DurationDays:  defaultDurationDays,
		DurationHours: defaultDurationHours,
	}
	for _, id := range model.AllGames() {
		snap.Games[id] = true
	}

	expired := false
	if settings.ExpiresAt != nil {
		if t, err := time.Parse(time.RFC3339, *settings.ExpiresAt); err == nil {
			snap.ExpiresAt = &t
			expired = t.Before(g.clock())
		}
	}
	if !settings.AppConfigured || expired {
		return snap
	}

	snap.Configured = true
	for id, enabled := range settings.Games {
		snap.Games[id] = enabled
	}
	snap.DurationDays = settings.DurationDays
	snap.DurationHours = settings.DurationHours
	snap.ShowBanner = settings.ShowBanner
	return snap
}

// Save computes the expiry from the chosen duration, marks the
// configuration step finished, and overwrites the whole settings blob.
// Merging happened in memory; the store never merges. Subscribers are
// notified with the resolved snapshot, which is also returned.
func (g *Gate) Save(ctx context.Context, settings model.UserSettings) Snapshot {
	g.mu.Lock()

	now := g.clock()
	expiresAt := now.
		AddDate(0, 0, settings.DurationDays).
		Add(time.Duration(settings.DurationHours) * time.Hour).
		Format(time.RFC3339)
	settings.ExpiresAt = &expiresAt
	settings.AppConfigured = true
	if settings.Games == nil {
		settings.Games = make(map[model.GameID]bool)
	}

	data, err := json.Marshal(settings)
	if err != nil {
		g.log.Error(ctx, "marshal settings failed", logger.Error(err))
	} else {
		g.store.Write(settingsKey, data)
	}
	metrics.RecordSettingsSaved()

	snap := g.resolveLocked(settings)
	subs := make([]func(Snapshot), len(g.subs))
	copy(subs, g.subs)
	g.mu.Unlock()

	g.log.Info(ctx, "settings saved",
		logger.Int("enabledGames", len(snap.EnabledGames())),
		logger.String("expiresAt", expiresAt),
	)
	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

// Subscribe registers fn for settings changes. The callback runs on the
// saving goroutine after the write completes.
func (g *Gate) Subscribe(fn func(Snapshot)) {
	if fn == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs = append(g.subs, fn)
}
