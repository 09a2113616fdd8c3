// Package service provides the core hub service that implements the
// dependencies required by the HTTP API and the game presentation layer.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/fiesta/internal/adapters/repository"
	"github.com/okian/fiesta/internal/adapters/storage"
	"github.com/okian/fiesta/internal/branding"
	"github.com/okian/fiesta/internal/domain/model"
	"github.com/okian/fiesta/internal/domain/ranking"
	"github.com/okian/fiesta/internal/domain/session"
	"github.com/okian/fiesta/internal/gate"
	"github.com/okian/fiesta/pkg/logger"
)

// ScoreDraft is a record as the presentation layer submits it: everything
// but the id and timestamp, which are assigned at save time.
type ScoreDraft struct {
	PlayerName string       `json:"playerName"`
	Game       model.GameID `json:"game"`
	Score      int          `json:"score"`
	Details    string       `json:"details"`
	Difficulty string       `json:"difficulty,omitempty"`
}

// Service wires the storage, repository, ranking, gate, and branding
// components behind the collaborator surface the presentation layer uses.
type Service struct {
	mu sync.Mutex

	store     storage.Store
	repo      *repository.Leaderboard
	gate      *gate.Gate
	brand     branding.Branding
	namespace string
	clock     clockFunc

	started bool
	log     logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		namespace: "fiesta",
		brand:     branding.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	if s.store == nil {
		s.store = storage.NewMemStore()
		s.log.Warn(ctx, "no store configured, history will not survive restarts")
	}

	s.repo = repository.New(s.store, s.namespace, repository.WithLogger(s.log))

	gateOpts := []gate.Option{gate.WithLogger(s.log)}
	if s.clock != nil {
		gateOpts = append(gateOpts, gate.WithClock(s.clock))
	}
	s.gate = gate.New(s.store, gateOpts...)

	s.started = true
	s.log.Info(ctx, "hub service started",
		logger.String("namespace", s.namespace),
		logger.String("company", s.brand.CompanyName),
	)
	return nil
}

func (s *Service) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now()
}

// Branding returns the immutable white-label configuration.
func (s *Service) Branding() branding.Branding {
	return s.brand
}

// GenerateSessionID returns an opaque unique string for session-identity
// checks in the presentation layer.
func (s *Service) GenerateSessionID() string {
	return uuid.NewString()
}

// NewSession creates a session controller for the given game, already
// wired to the leaderboard repository.
func (s *Service) NewSession(game model.GameID) *session.Controller {
	opts := []session.Option{session.WithLogger(s.log)}
	if s.clock != nil {
		opts = append(opts, session.WithClock(s.clock))
	}
	return session.New(session.RulesFor(game), s.repo, opts...)
}

// SaveScore assigns an id and timestamp to the draft and appends it.
// The stored record is returned for display.
func (s *Service) SaveScore(ctx context.Context, draft ScoreDraft) model.ScoreRecord {
	now := s.now()
	record := model.ScoreRecord{
		ID:         model.NewRecordID(now),
		PlayerName: model.NormalizePlayerName(draft.PlayerName),
		Game:       draft.Game,
		Score:      draft.Score,
		Details:    draft.Details,
		Timestamp:  now.UnixMilli(),
		Difficulty: draft.Difficulty,
	}
	s.repo.Append(ctx, record)
	return record
}

// TopPlayers returns the per-player aggregate ranking, best first.
func (s *Service) TopPlayers(ctx context.Context, limit int) []model.LeaderboardEntry {
	return ranking.TopPlayers(s.repo.AllRecords(ctx), limit)
}

// GameLeaderboard returns the top records for one game.
func (s *Service) GameLeaderboard(ctx context.Context, game model.GameID, limit int) []model.ScoreRecord {
	return ranking.GameLeaderboard(s.repo.AllRecords(ctx), game, limit)
}

// ClearLeaderboard destroys all recorded scores. Presentation gates this
// behind an explicit confirmation.
func (s *Service) ClearLeaderboard(ctx context.Context) {
	s.repo.Clear(ctx)
}

// LoadSettings returns the raw persisted operator settings.
func (s *Service) LoadSettings(ctx context.Context) model.UserSettings {
	return s.gate.Load(ctx)
}

// SaveSettings persists the operator settings and returns the resolved
// snapshot, including the direct-routing destination when exactly one
// game remains enabled.
func (s *Service) SaveSettings(ctx context.Context, settings model.UserSettings) gate.Snapshot {
	return s.gate.Save(ctx, settings)
}

// Settings returns the resolved settings snapshot.
func (s *Service) Settings(ctx context.Context) gate.Snapshot {
	return s.gate.Snapshot(ctx)
}

// SubscribeSettings registers a callback for settings changes.
func (s *Service) SubscribeSettings(fn func(gate.Snapshot)) {
	s.gate.Subscribe(fn)
}

// EnabledGames returns the catalog filtered down to the enabled set.
func (s *Service) EnabledGames(ctx context.Context) []branding.GameInfo {
	snap := s.gate.Snapshot(ctx)
	catalog := branding.Catalog()
	out := make([]branding.GameInfo, 0, len(catalog))
	for _, info := range catalog {
		if snap.Games[info.ID] {
			out = append(out, info)
		}
	}
	return out
}
