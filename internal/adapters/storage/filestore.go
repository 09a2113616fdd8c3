package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/okian/fiesta/pkg/logger"
	"github.com/okian/fiesta/pkg/metrics"
)

// FileStore keeps one JSON file per key under a data directory. It is the
// process-local stand-in for browser local storage: shared by every
// component of the same installation, last-writer-wins on the whole blob.
type FileStore struct {
	dir string
	log logger.Logger
}

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithLogger sets a custom logger for the store.
func WithLogger(l logger.Logger) Option {
	return func(s *FileStore) {
		if l != nil {
			s.log = l
		}
	}
}

// NewFileStore creates a store rooted at dir. The directory is created on
// first use; if that fails the store degrades to an empty, write-less one.
func NewFileStore(dir string, opts ...Option) *FileStore {
	s := &FileStore{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	return s
}

// Read implements Store.
func (s *FileStore) Read(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Write implements Store. Failures are logged at debug and counted, never
// returned: the hub stays usable without persistence.
func (s *FileStore) Write(key string, value []byte) {
	ctx := context.Background()
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		metrics.RecordStorageWriteFailure()
		s.log.Debug(ctx, "storage unavailable, dropping write", logger.String("key", key), logger.Error(err))
		return
	}
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		metrics.RecordStorageWriteFailure()
		s.log.Debug(ctx, "storage write failed", logger.String("key", key), logger.Error(err))
	}
}

// Clear implements Store.
func (s *FileStore) Clear(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.Debug(context.Background(), "storage clear failed", logger.String("key", key), logger.Error(err))
	}
}

// path maps a key to its backing file. Keys are sanitized so a namespaced
// key can never escape the data directory.
func (s *FileStore) path(key string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(s.dir, name+".json")
}
