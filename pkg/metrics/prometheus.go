// Package metrics provides Prometheus metrics for the party-game hub.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the hub.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Leaderboard metrics
	scoresSaved        *prometheus.CounterVec
	leaderboardClears  prometheus.Counter
	storageWriteErrors prometheus.Counter

	// Session metrics
	sessionsStarted   *prometheus.CounterVec
	sessionsCompleted *prometheus.CounterVec
	sessionsReset     *prometheus.CounterVec
	staleCallbacks    *prometheus.CounterVec

	// Settings metrics
	settingsSaves prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager on a custom registry, keeping default Go
// collector noise out of the scrape.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fiesta",
		subsystem:        "hub",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.scoresSaved = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scores_saved_total",
		Help:      "Total number of score records appended to the leaderboard",
	}, []string{"game"})

	m.leaderboardClears = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_clears_total",
		Help:      "Total number of destructive leaderboard resets",
	})

	m.storageWriteErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "storage_write_failures_total",
		Help:      "Total number of silently dropped storage writes",
	})

	m.sessionsStarted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_started_total",
		Help:      "Total number of game sessions entering the running state",
	}, []string{"game"})

	m.sessionsCompleted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_completed_total",
		Help:      "Total number of game sessions reaching a final score",
	}, []string{"game"})

	m.sessionsReset = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_reset_total",
		Help:      "Total number of abandoned game sessions",
	}, []string{"game"})

	m.staleCallbacks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stale_callbacks_total",
		Help:      "Total number of deferred callbacks ignored after a reset",
	}, []string{"game"})

	m.settingsSaves = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "settings_saves_total",
		Help:      "Total number of configuration gate saves",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// Handler returns the scrape handler for the manager's registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Package-level helpers against the global manager.

// RecordScoreSaved counts an appended score record.
func RecordScoreSaved(game string) { globalManager.scoresSaved.WithLabelValues(game).Inc() }

// RecordLeaderboardCleared counts a destructive leaderboard reset.
func RecordLeaderboardCleared() { globalManager.leaderboardClears.Inc() }

// RecordStorageWriteFailure counts a silently dropped storage write.
func RecordStorageWriteFailure() { globalManager.storageWriteErrors.Inc() }

// RecordSessionStarted counts a session entering Running.
func RecordSessionStarted(game string) { globalManager.sessionsStarted.WithLabelValues(game).Inc() }

// RecordSessionCompleted counts a session reaching a final score.
func RecordSessionCompleted(game string) {
	globalManager.sessionsCompleted.WithLabelValues(game).Inc()
}

// RecordSessionReset counts an abandoned session.
func RecordSessionReset(game string) { globalManager.sessionsReset.WithLabelValues(game).Inc() }

// RecordStaleCallback counts a deferred callback ignored after a reset.
func RecordStaleCallback(game string) { globalManager.staleCallbacks.WithLabelValues(game).Inc() }

// RecordSettingsSaved counts a configuration gate save.
func RecordSettingsSaved() { globalManager.settingsSaves.Inc() }

// RecordHTTPRequest counts one handled HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one request's duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// Handler returns the global scrape handler.
func Handler() http.Handler { return globalManager.Handler() }
