package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/okian/fiesta/internal/adapters/storage"
	service "github.com/okian/fiesta/internal/app"
	"github.com/okian/fiesta/internal/branding"
	"github.com/okian/fiesta/internal/domain/model"
	"github.com/okian/fiesta/internal/domain/session"
	"github.com/okian/fiesta/internal/gate"
	"github.com/okian/fiesta/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func startService(ctx context.Context, opts ...service.Option) *service.Service {
	svc := service.New(opts...)
	if err := svc.Start(ctx); err != nil {
		panic(err)
	}
	return svc
}

func TestService_SaveScore(t *testing.T) {
	Convey("Given a started service with a pinned clock", t, func() {
		ctx := context.Background()
		now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
		svc := startService(ctx,
			service.WithStore(storage.NewMemStore()),
			service.WithClock(func() time.Time { return now }),
		)

		Convey("When a draft is saved", func() {
			record := svc.SaveScore(ctx, service.ScoreDraft{
				PlayerName: "  Ana  ",
				Game:       model.GameMemory,
				Score:      960,
				Details:    "14 movimientos",
			})

			Convey("Then the service fills id and timestamp and normalizes the name", func() {
				So(record.ID, ShouldNotBeEmpty)
				So(record.Timestamp, ShouldEqual, now.UnixMilli())
				So(record.PlayerName, ShouldEqual, "Ana")
			})

			Convey("And the ranking includes the new record", func() {
				entries := svc.TopPlayers(ctx, 10)
				So(entries, ShouldHaveLength, 1)
				So(entries[0].TotalScore, ShouldEqual, 960)
			})

			Convey("And the per-game board includes it too", func() {
				board := svc.GameLeaderboard(ctx, model.GameMemory, 10)
				So(board, ShouldHaveLength, 1)
				So(svc.GameLeaderboard(ctx, model.GameTetris, 10), ShouldBeEmpty)
			})

			Convey("And clearing wipes the history", func() {
				svc.ClearLeaderboard(ctx)
				So(svc.TopPlayers(ctx, 10), ShouldBeEmpty)
			})
		})
	})
}

func TestService_Settings(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startService(ctx, service.WithStore(storage.NewMemStore()))

		Convey("Then the default settings enable the whole catalog", func() {
			So(svc.EnabledGames(ctx), ShouldHaveLength, len(model.AllGames()))
			So(svc.Settings(ctx).Configured, ShouldBeFalse)
		})

		Convey("When the operator narrows the enabled set", func() {
			games := make(map[model.GameID]bool, len(model.AllGames()))
			for _, id := range model.AllGames() {
				games[id] = false
			}
			games[model.GameTrivia] = true

			var notified []gate.Snapshot
			svc.SubscribeSettings(func(s gate.Snapshot) { notified = append(notified, s) })
			snap := svc.SaveSettings(ctx, model.UserSettings{Games: games, DurationDays: 1})

			Convey("Then the catalog view narrows to match", func() {
				infos := svc.EnabledGames(ctx)
				So(infos, ShouldHaveLength, 1)
				So(infos[0].ID, ShouldEqual, model.GameTrivia)
			})

			Convey("And a single enabled game yields a routing destination", func() {
				dest, ok := snap.Destination()
				So(ok, ShouldBeTrue)
				So(dest, ShouldEqual, model.GameTrivia)
			})

			Convey("And subscribers heard about the change", func() {
				So(notified, ShouldHaveLength, 1)
			})

			Convey("And the raw blob is readable back", func() {
				So(svc.LoadSettings(ctx).AppConfigured, ShouldBeTrue)
			})
		})
	})
}

func TestService_Sessions(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startService(ctx, service.WithStore(storage.NewMemStore()))

		Convey("Then session ids are unique and opaque", func() {
			So(svc.GenerateSessionID(), ShouldNotEqual, svc.GenerateSessionID())
		})

		Convey("And a session saved through the controller lands on the board", func() {
			ctl := svc.NewSession(model.GameSimon)
			ctl.Start(ctx)
			ctl.Update(func(c *session.Counters) { c.Sequences = 4 })
			ctl.Win(ctx)

			record, err := ctl.SubmitName(ctx, "Beto")
			So(err, ShouldBeNil)
			So(record.Score, ShouldEqual, 200)
			So(svc.TopPlayers(ctx, 5)[0].PlayerName, ShouldEqual, "Beto")
		})
	})
}

func TestService_Defaults(t *testing.T) {
	Convey("Given a service started without an explicit store", t, func() {
		ctx := context.Background()
		svc := startService(ctx)

		Convey("Then it runs against an in-memory store", func() {
			svc.SaveScore(ctx, service.ScoreDraft{PlayerName: "Ana", Game: model.GameTrivia, Score: 100})
			So(svc.TopPlayers(ctx, 1), ShouldHaveLength, 1)
		})

		Convey("And the generic branding is in place", func() {
			So(svc.Branding().CompanyName, ShouldEqual, branding.Default().CompanyName)
		})
	})
}
