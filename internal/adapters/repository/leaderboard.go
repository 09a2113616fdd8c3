// Package repository owns the persisted flat list of score records.
package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/okian/fiesta/internal/adapters/storage"
	"github.com/okian/fiesta/internal/domain/model"
	"github.com/okian/fiesta/pkg/logger"
	"github.com/okian/fiesta/pkg/metrics"
)

// leaderboardKeySuffix completes the namespaced storage key, e.g.
// "acme_leaderboard".
const leaderboardKeySuffix = "_leaderboard"

// Leaderboard is the typed wrapper over the blob store for the score list.
//
// Append is a read-modify-write over the whole blob with no transaction
// isolation: two installations sharing a data directory can race and the
// last writer wins. That is the accepted contract for a single-operator
// local leaderboard, not a bug to paper over here.
type Leaderboard struct {
	mu    sync.Mutex
	store storage.Store
	key   string
	log   logger.Logger
}

// Option applies a configuration option to the Leaderboard.
type Option func(*Leaderboard)

// WithLogger sets a custom logger for the repository.
func WithLogger(l logger.Logger) Option {
	return func(r *Leaderboard) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a repository over store, namespacing the storage key with
// the branded namespace (the white-label deployment name).
func New(store storage.Store, namespace string, opts ...Option) *Leaderboard {
	r := &Leaderboard{
		store: store,
		key:   namespace + leaderboardKeySuffix,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.Get()
	}
	return r
}

// Append persists record at the end of the score list.
func (r *Leaderboard) Append(ctx context.Context, record model.ScoreRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.load(ctx)
	records = append(records, record)
	data, err := json.Marshal(records)
	if err != nil {
		// Records are plain data; this cannot happen with valid input.
		r.log.Error(ctx, "marshal score list failed", logger.Error(err))
		return
	}
	r.store.Write(r.key, data)
	metrics.RecordScoreSaved(string(record.Game))
	r.log.Debug(ctx, "score appended",
		logger.String("game", string(record.Game)),
		logger.String("player", record.PlayerName),
		logger.Int("score", record.Score),
	)
}

// AllRecords returns the persisted list verbatim, in insertion order.
// Absent or malformed data degrades to an empty list, never an error.
func (r *Leaderboard) AllRecords(ctx context.Context) []model.ScoreRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Clear empties the persisted list.
func (r *Leaderboard) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.Clear(r.key)
	metrics.RecordLeaderboardCleared()
	r.log.Info(ctx, "leaderboard cleared")
}

// load reads and decodes the score list. Callers hold r.mu.
func (r *Leaderboard) load(ctx context.Context) []model.ScoreRecord {
	data, ok := r.store.Read(r.key)
	if !ok {
		return nil
	}
	var records []model.ScoreRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Truncated or foreign JSON is treated as no data.
		r.log.Warn(ctx, "discarding malformed score list", logger.Error(err))
		return nil
	}
	return records
}
