package scoring_test

import (
	"testing"

	"github.com/okian/fiesta/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemory(t *testing.T) {
	Convey("Given the memory-matching formula", t, func() {
		Convey("Then a perfect run earns the full base", func() {
			So(scoring.Memory(0), ShouldEqual, 1000)
		})

		Convey("And the free-move allowance is not penalized", func() {
			So(scoring.Memory(12), ShouldEqual, 1000)
		})

		Convey("And each extra move costs 20 points", func() {
			So(scoring.Memory(13), ShouldEqual, 980)
			So(scoring.Memory(20), ShouldEqual, 840)
		})

		Convey("And the floor holds for very long games", func() {
			// 60 moves: 48 over the allowance, 960 penalty, floored.
			So(scoring.Memory(60), ShouldEqual, 100)
			So(scoring.Memory(500), ShouldEqual, 100)
		})
	})
}

func TestTrivia(t *testing.T) {
	Convey("Given the trivia formula", t, func() {
		Convey("Then every correct answer is worth 100", func() {
			So(scoring.Trivia(0), ShouldEqual, 0)
			So(scoring.Trivia(7), ShouldEqual, 700)
		})

		Convey("And a negative count degrades to zero", func() {
			So(scoring.Trivia(-1), ShouldEqual, 0)
		})
	})
}

func TestWordRound(t *testing.T) {
	Convey("Given the word-game round formula", t, func() {
		Convey("Then a clean solve earns the full round pot", func() {
			So(scoring.WordRound(0, true), ShouldEqual, 10)
		})

		Convey("And each wrong guess eats one point", func() {
			So(scoring.WordRound(4, true), ShouldEqual, 6)
		})

		Convey("And a lost round earns nothing", func() {
			So(scoring.WordRound(2, false), ShouldEqual, 0)
		})

		Convey("And the result never goes negative", func() {
			So(scoring.WordRound(15, true), ShouldEqual, 0)
		})
	})
}

func TestSimon(t *testing.T) {
	Convey("Given the Simon-says formula", t, func() {
		So(scoring.Simon(0), ShouldEqual, 0)
		So(scoring.Simon(9), ShouldEqual, 450)
	})
}

func TestTetris(t *testing.T) {
	Convey("Given the tetris drop formula", t, func() {
		Convey("Then locking a piece pays the drop bonus", func() {
			So(scoring.TetrisDrop(0, 1), ShouldEqual, 10)
		})

		Convey("And cleared lines scale with the level", func() {
			So(scoring.TetrisDrop(2, 1), ShouldEqual, 210)
			So(scoring.TetrisDrop(2, 3), ShouldEqual, 610)
		})
	})

	Convey("Given the level curve", t, func() {
		So(scoring.TetrisLevel(0), ShouldEqual, 1)
		So(scoring.TetrisLevel(9), ShouldEqual, 1)
		So(scoring.TetrisLevel(10), ShouldEqual, 2)
		So(scoring.TetrisLevel(35), ShouldEqual, 4)
	})
}

func TestPacman(t *testing.T) {
	Convey("Given the pacman finalizer", t, func() {
		Convey("Then a lost game keeps the accumulated points", func() {
			So(scoring.Pacman(730, false), ShouldEqual, 730)
		})

		Convey("And clearing the maze adds the completion bonus", func() {
			So(scoring.Pacman(730, true), ShouldEqual, 1730)
		})
	})
}

func TestReaction(t *testing.T) {
	Convey("Given the reaction-time formula", t, func() {
		Convey("Then faster best attempts earn more", func() {
			So(scoring.Reaction(180), ShouldEqual, 820)
			So(scoring.Reaction(450), ShouldEqual, 550)
		})

		Convey("And slow sessions are floored, not negative", func() {
			So(scoring.Reaction(1500), ShouldEqual, 100)
		})

		Convey("And a session without attempts earns the floor", func() {
			So(scoring.Reaction(0), ShouldEqual, 100)
		})
	})
}

func TestGiftWheel(t *testing.T) {
	Convey("Given the gift-wheel formula", t, func() {
		Convey("Then the score is the sum of spun prizes", func() {
			So(scoring.GiftWheel([]int{100, 250, 50}), ShouldEqual, 400)
		})

		Convey("And an empty session scores zero", func() {
			So(scoring.GiftWheel(nil), ShouldEqual, 0)
		})
	})
}
