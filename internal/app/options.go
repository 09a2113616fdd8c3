package service

import (
	"time"

	"github.com/okian/fiesta/internal/adapters/storage"
	"github.com/okian/fiesta/internal/branding"
	"github.com/okian/fiesta/pkg/logger"
)

type clockFunc func() time.Time

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStore sets the blob store backing the repository and the gate.
func WithStore(store storage.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithNamespace sets the white-label namespace for storage keys.
func WithNamespace(namespace string) Option {
	return func(s *Service) {
		if namespace != "" {
			s.namespace = namespace
		}
	}
}

// WithBranding sets the white-label configuration.
func WithBranding(b branding.Branding) Option {
	return func(s *Service) {
		s.brand = b
	}
}

// WithClock overrides the time source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}
