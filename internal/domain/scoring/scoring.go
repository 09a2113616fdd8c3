// Package scoring holds the per-game score formulas. Each formula is a
// deterministic, pure function of one session's own counters and never
// yields a negative value.
package scoring

// Memory-matching constants: a base pot, a free-move allowance, a penalty
// per extra move, and a floor the score never drops below.
const (
	memoryBaseScore   = 1000
	memoryFreeMoves   = 12
	memoryMovePenalty = 20
	memoryFloor       = 100
)

// Memory scores a finished matching session from its move count.
func Memory(moves int) int {
	penalty := (moves - memoryFreeMoves) * memoryMovePenalty
	if penalty < 0 {
		penalty = 0
	}
	score := memoryBaseScore - penalty
	if score < memoryFloor {
		return memoryFloor
	}
	return score
}

// pointsPerCorrectAnswer is the trivia reward per correct answer.
const pointsPerCorrectAnswer = 100

// Trivia scores a quiz session from its correct-answer count.
func Trivia(correct int) int {
	if correct < 0 {
		return 0
	}
	return correct * pointsPerCorrectAnswer
}

// wordRoundMax is the per-round pot for the word game; each wrong guess
// eats one point of it.
const wordRoundMax = 10

// WordRound returns the points earned by solving one word with the given
// number of wrong guesses. A lost round earns nothing.
func WordRound(wrongGuesses int, solved bool) int {
	if !solved {
		return 0
	}
	points := wordRoundMax - wrongGuesses
	if points < 0 {
		return 0
	}
	return points
}

// pointsPerSequence is the Simon-says reward per completed sequence.
const pointsPerSequence = 50

// Simon scores a session from the number of sequences echoed back.
func Simon(sequences int) int {
	if sequences < 0 {
		return 0
	}
	return sequences * pointsPerSequence
}

// Tetris drop/line constants.
const (
	tetrisDropBonus     = 10
	tetrisPointsPerLine = 100
	tetrisLinesPerLevel = 10
)

// TetrisDrop returns the points earned by locking a piece that cleared
// linesCleared rows at the given level.
func TetrisDrop(linesCleared, level int) int {
	if linesCleared < 0 {
		linesCleared = 0
	}
	if level < 1 {
		level = 1
	}
	return linesCleared*tetrisPointsPerLine*level + tetrisDropBonus
}

// TetrisLevel derives the current level from total cleared lines.
func TetrisLevel(lines int) int {
	if lines < 0 {
		lines = 0
	}
	return lines/tetrisLinesPerLevel + 1
}

// pacmanCompletionBonus rewards clearing the whole maze.
const pacmanCompletionBonus = 1000

// Pacman finalizes a maze session: the accumulated pellet/ghost points
// plus a completion bonus when every pellet was eaten.
func Pacman(accumulated int, cleared bool) int {
	if accumulated < 0 {
		accumulated = 0
	}
	if cleared {
		return accumulated + pacmanCompletionBonus
	}
	return accumulated
}

// Reaction-time constants: faster best attempts earn more, floored so any
// finished session records something.
const (
	reactionBase  = 1000
	reactionFloor = 100
)

// Reaction scores a session from its best attempt in milliseconds.
func Reaction(bestMillis int) int {
	if bestMillis <= 0 {
		return reactionFloor
	}
	score := reactionBase - bestMillis
	if score < reactionFloor {
		return reactionFloor
	}
	return score
}

// GiftWheel scores a prize-wheel session: the sum of spun prize points.
func GiftWheel(prizePoints []int) int {
	total := 0
	for _, p := range prizePoints {
		if p > 0 {
			total += p
		}
	}
	return total
}
