// Package model contains the domain types shared across the hub:
// score records, derived leaderboard entries, and operator settings.
package model

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// GameID identifies one of the hub's mini-games. The set is closed; ids
// double as storage and routing keys, so they must stay stable.
type GameID string

// The full catalog of game identifiers.
const (
	GameTrivia    GameID = "trivia"
	GameMemory    GameID = "memory"
	GameWord      GameID = "word-game"
	GameReaction  GameID = "reaction-time"
	GameSimon     GameID = "simon-says"
	GamePacman    GameID = "pacman"
	GameTetris    GameID = "tetris"
	GameGiftWheel GameID = "gift-wheel"
)

// AllGames returns the closed set of game identifiers in catalog order.
func AllGames() []GameID {
	return []GameID{
		GameTrivia,
		GameMemory,
		GameWord,
		GameReaction,
		GameSimon,
		GamePacman,
		GameTetris,
		GameGiftWheel,
	}
}

// Valid reports whether id is one of the known games.
func (g GameID) Valid() bool {
	for _, id := range AllGames() {
		if g == id {
			return true
		}
	}
	return false
}

// ScoreRecord is one completed play of one game by one named player.
// Records are immutable once created; the repository only appends.
type ScoreRecord struct {
	ID         string `json:"id"`
	PlayerName string `json:"playerName"`
	Game       GameID `json:"game"`
	Score      int    `json:"score"`
	Details    string `json:"details"`
	Timestamp  int64  `json:"timestamp"` // milliseconds since epoch
	Difficulty string `json:"difficulty,omitempty"`
}

// LeaderboardEntry is the derived per-player aggregate. It is never
// persisted; the ranking engine recomputes it from records on demand.
type LeaderboardEntry struct {
	PlayerName  string                 `json:"playerName"`
	TotalScore  int                    `json:"totalScore"`
	GamesPlayed int                    `json:"gamesPlayed"`
	BestScores  map[GameID]ScoreRecord `json:"bestScores"`
	LastPlayed  int64                  `json:"lastPlayed"`
}

// UserSettings is the operator-chosen configuration with expiry.
// ExpiresAt is an RFC3339 instant; nil means no expiry was recorded.
type UserSettings struct {
	Games         map[GameID]bool `json:"games"`
	ExpiresAt     *string         `json:"expiresAt,omitempty"`
	DurationDays  int             `json:"durationDays"`
	DurationHours int             `json:"durationHours"`
	ShowBanner    bool            `json:"showBanner"`
	AppConfigured bool            `json:"appConfigured"`
}

// MaxPlayerNameLen bounds the free-text player name.
const MaxPlayerNameLen = 20

// NormalizePlayerName trims and length-bounds a raw player name. The
// bound counts characters, not bytes, so accented names keep their full
// length and the cut never lands mid-rune. An empty result means the
// name is not acceptable for saving.
func NormalizePlayerName(raw string) string {
	name := strings.TrimSpace(raw)
	if runes := []rune(name); len(runes) > MaxPlayerNameLen {
		name = string(runes[:MaxPlayerNameLen])
	}
	return name
}

// NewRecordID builds an opaque record id from the current instant plus a
// random base36 suffix, collision-resistant without coordination.
func NewRecordID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 36)
	suffix := strconv.FormatInt(rand.Int63(), 36) //nolint:gosec // ids are not secrets
	return ms + suffix
}
