package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/fiesta/internal/adapters/storage"
	"github.com/okian/fiesta/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestFileStore(t *testing.T) {
	Convey("Given a file store in a fresh directory", t, func() {
		dir := t.TempDir()
		store := storage.NewFileStore(filepath.Join(dir, "data"))

		Convey("Then reading an unknown key reports absence", func() {
			_, ok := store.Read("userSettings")
			So(ok, ShouldBeFalse)
		})

		Convey("When a value is written", func() {
			store.Write("userSettings", []byte(`{"showBanner":true}`))

			Convey("Then reading it back round-trips the bytes", func() {
				data, ok := store.Read("userSettings")
				So(ok, ShouldBeTrue)
				So(string(data), ShouldEqual, `{"showBanner":true}`)
			})

			Convey("And clearing removes it", func() {
				store.Clear("userSettings")
				_, ok := store.Read("userSettings")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the key carries path-hostile characters", func() {
			store.Write("../escape", []byte("x"))

			Convey("Then the file stays inside the data directory", func() {
				entries, err := os.ReadDir(filepath.Join(dir, "data"))
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given a store whose directory cannot be created", t, func() {
		blocker := filepath.Join(t.TempDir(), "occupied")
		So(os.WriteFile(blocker, []byte("file, not dir"), 0o644), ShouldBeNil)
		store := storage.NewFileStore(filepath.Join(blocker, "nested"))

		Convey("Then writes are silent no-ops and reads report absence", func() {
			store.Write("key", []byte("value"))
			_, ok := store.Read("key")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestMemStore(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		store := storage.NewMemStore()

		Convey("Then it round-trips and clears like the file store", func() {
			store.Write("k", []byte("v"))
			data, ok := store.Read("k")
			So(ok, ShouldBeTrue)
			So(string(data), ShouldEqual, "v")

			store.Clear("k")
			_, ok = store.Read("k")
			So(ok, ShouldBeFalse)
		})

		Convey("And readers see a copy, not the backing slice", func() {
			store.Write("k", []byte("abc"))
			data, _ := store.Read("k")
			data[0] = 'x'
			fresh, _ := store.Read("k")
			So(string(fresh), ShouldEqual, "abc")
		})
	})
}
