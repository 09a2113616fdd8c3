package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(prometheus.NewRegistry()),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the package-level recorders", t, func() {
		Convey("When recording leaderboard metrics", func() {
			So(func() {
				RecordScoreSaved("memory")
				RecordScoreSaved("trivia")
				RecordLeaderboardCleared()
				RecordStorageWriteFailure()
			}, ShouldNotPanic)
		})

		Convey("When recording session metrics", func() {
			So(func() {
				RecordSessionStarted("tetris")
				RecordSessionCompleted("tetris")
				RecordSessionReset("tetris")
				RecordStaleCallback("tetris")
			}, ShouldNotPanic)
		})

		Convey("When recording settings and HTTP metrics", func() {
			So(func() {
				RecordSettingsSaved()
				RecordHTTPRequest("/leaderboard", "GET", "200")
				RecordHTTPRequestDuration("/leaderboard", "GET", "200", 5.0)
			}, ShouldNotPanic)
		})

		Convey("When using edge-case label values", func() {
			So(func() {
				RecordScoreSaved("")
				RecordHTTPRequest("", "", "500")
				RecordHTTPRequestDuration("/leaderboard?limit=10", "GET", "200", 0.0)
			}, ShouldNotPanic)
		})
	})
}

func TestHandler(t *testing.T) {
	Convey("Given a manager with recorded metrics", t, func() {
		manager := NewManager(WithRegistry(prometheus.NewRegistry()))
		manager.scoresSaved.WithLabelValues("memory").Inc()

		Convey("When scraping the handler", func() {
			rec := httptest.NewRecorder()
			manager.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

			Convey("Then the exposition includes the counter", func() {
				So(rec.Code, ShouldEqual, 200)
				So(rec.Body.String(), ShouldContainSubstring, "scores_saved_total")
			})
		})
	})
}
