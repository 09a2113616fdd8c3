package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/fiesta/internal/adapters/repository"
	"github.com/okian/fiesta/internal/adapters/storage"
	"github.com/okian/fiesta/internal/domain/model"
	"github.com/okian/fiesta/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestLeaderboard_Append(t *testing.T) {
	Convey("Given an empty repository", t, func() {
		ctx := context.Background()
		store := storage.NewMemStore()
		repo := repository.New(store, "acme")

		Convey("Then reading yields an empty list, not an error", func() {
			So(repo.AllRecords(ctx), ShouldBeEmpty)
		})

		Convey("When records are appended", func() {
			first := model.ScoreRecord{ID: "a", PlayerName: "Ana", Game: model.GameTrivia, Score: 300, Timestamp: 1}
			second := model.ScoreRecord{ID: "b", PlayerName: "Beto", Game: model.GameMemory, Score: 900, Timestamp: 2}
			repo.Append(ctx, first)
			repo.Append(ctx, second)

			Convey("Then all records come back in insertion order", func() {
				records := repo.AllRecords(ctx)
				So(records, ShouldHaveLength, 2)
				So(records[0], ShouldResemble, first)
				So(records[1], ShouldResemble, second)
			})

			Convey("And the blob lives under the namespaced key", func() {
				_, ok := store.Read("acme_leaderboard")
				So(ok, ShouldBeTrue)
			})

			Convey("And clearing empties the list", func() {
				repo.Clear(ctx)
				So(repo.AllRecords(ctx), ShouldBeEmpty)
			})
		})
	})
}

func TestLeaderboard_CorruptData(t *testing.T) {
	Convey("Given a store holding foreign bytes under the score key", t, func() {
		ctx := context.Background()
		store := storage.NewMemStore()
		store.Write("acme_leaderboard", []byte(`{"not":"a list"`))
		repo := repository.New(store, "acme")

		Convey("Then reading degrades to an empty list", func() {
			So(repo.AllRecords(ctx), ShouldBeEmpty)
		})

		Convey("And appending starts a fresh list over the corrupt blob", func() {
			repo.Append(ctx, model.ScoreRecord{ID: "a", PlayerName: "Ana", Game: model.GameSimon, Score: 150})
			records := repo.AllRecords(ctx)
			So(records, ShouldHaveLength, 1)
			So(records[0].PlayerName, ShouldEqual, "Ana")
		})
	})
}

func TestLeaderboard_RoundTrip(t *testing.T) {
	Convey("Given a record with every field set", t, func() {
		ctx := context.Background()
		repo := repository.New(storage.NewMemStore(), "acme")
		record := model.ScoreRecord{
			ID:         "z1",
			PlayerName: "Carla",
			Game:       model.GameWord,
			Score:      42,
			Details:    "Animales, 5 palabras",
			Timestamp:  1700000000000,
			Difficulty: "fácil",
		}

		Convey("Then write-then-read reproduces the same logical value", func() {
			repo.Append(ctx, record)
			So(repo.AllRecords(ctx)[0], ShouldResemble, record)
		})
	})
}
