package session

import (
	"fmt"

	"github.com/okian/fiesta/internal/domain/model"
	"github.com/okian/fiesta/internal/domain/scoring"
)

// wordsPerGame is how many words one word-game session runs through.
const wordsPerGame = 5

// RulesFor returns the machine parameterization for the given game.
// Unknown ids fall back to a zero-scoring single-round machine so a
// misrouted session degrades instead of panicking.
func RulesFor(game model.GameID) Rules {
	switch game {
	case model.GameMemory:
		return memoryRules()
	case model.GameTrivia:
		return triviaRules()
	case model.GameWord:
		return wordRules()
	case model.GameSimon:
		return simonRules()
	case model.GameTetris:
		return tetrisRules()
	case model.GamePacman:
		return pacmanRules()
	case model.GameReaction:
		return reactionRules()
	case model.GameGiftWheel:
		return giftWheelRules()
	default:
		return Rules{
			Game:    game,
			Score:   func(Counters) int { return 0 },
			Details: func(Counters) string { return "" },
		}
	}
}

func memoryRules() Rules {
	return Rules{
		Game:    model.GameMemory,
		Score:   func(c Counters) int { return scoring.Memory(c.Moves) },
		Details: func(c Counters) string { return fmt.Sprintf("%d movimientos", c.Moves) },
	}
}

func triviaRules() Rules {
	return Rules{
		Game:  model.GameTrivia,
		Score: func(c Counters) int { return scoring.Trivia(c.CorrectAnswers) },
		Details: func(c Counters) string {
			return fmt.Sprintf("%d/%d correctas", c.CorrectAnswers, c.Questions)
		},
	}
}

func wordRules() Rules {
	return Rules{
		Game:           model.GameWord,
		NeedsSelection: true,
		Rounds:         wordsPerGame,
		// Word points accrue per solved round via scoring.WordRound; the
		// session score is whatever accumulated.
		Score: func(c Counters) int { return c.Points },
		Details: func(c Counters) string {
			return fmt.Sprintf("%s, %d palabras", c.Mode, wordsPerGame)
		},
	}
}

func simonRules() Rules {
	return Rules{
		Game:  model.GameSimon,
		Score: func(c Counters) int { return scoring.Simon(c.Sequences) },
		Details: func(c Counters) string {
			return fmt.Sprintf("%d secuencias completadas", c.Sequences)
		},
	}
}

func tetrisRules() Rules {
	return Rules{
		Game:  model.GameTetris,
		Score: func(c Counters) int { return c.Points },
		Details: func(c Counters) string {
			return fmt.Sprintf("%d líneas, nivel %d", c.Lines, c.Level)
		},
	}
}

func pacmanRules() Rules {
	return Rules{
		Game:  model.GamePacman,
		Score: func(c Counters) int { return scoring.Pacman(c.Points, c.BoardCleared) },
		Details: func(c Counters) string {
			if c.BoardCleared {
				return "Juego completado"
			}
			return fmt.Sprintf("%d vidas restantes", c.Lives)
		},
	}
}

func reactionRules() Rules {
	return Rules{
		Game:  model.GameReaction,
		Score: func(c Counters) int { return scoring.Reaction(c.BestMillis) },
		Details: func(c Counters) string {
			return fmt.Sprintf("mejor tiempo %d ms, %d intentos", c.BestMillis, c.Attempts)
		},
	}
}

func giftWheelRules() Rules {
	return Rules{
		Game:  model.GameGiftWheel,
		Score: func(c Counters) int { return c.Points },
		Details: func(c Counters) string {
			return fmt.Sprintf("%d premios ganados", c.PrizesWon)
		},
	}
}
