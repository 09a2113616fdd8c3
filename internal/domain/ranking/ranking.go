// Package ranking derives read-only leaderboard views from the raw score
// list. Everything here is pure and stateless: data volumes are a single
// installation's play history, so views are recomputed on every call.
package ranking

import (
	"sort"

	"github.com/okian/fiesta/internal/domain/model"
)

// TopPlayers groups records by player name, folds each group into a
// LeaderboardEntry, and returns up to limit entries sorted by total score
// descending. Ties keep first-seen group order; aggregation is by exact
// string match on the name, so casing variants rank separately.
func TopPlayers(records []model.ScoreRecord, limit int) []model.LeaderboardEntry {
	if limit <= 0 {
		return nil
	}

	byName := make(map[string]*model.LeaderboardEntry)
	order := make([]string, 0)

	for _, rec := range records {
		entry, ok := byName[rec.PlayerName]
		if !ok {
			entry = &model.LeaderboardEntry{
				PlayerName: rec.PlayerName,
				BestScores: make(map[model.GameID]model.ScoreRecord),
			}
			byName[rec.PlayerName] = entry
			order = append(order, rec.PlayerName)
		}
		entry.TotalScore += rec.Score
		entry.GamesPlayed++
		if rec.Timestamp > entry.LastPlayed {
			entry.LastPlayed = rec.Timestamp
		}
		// Strictly greater keeps the earliest record on an exact tie.
		if best, seen := entry.BestScores[rec.Game]; !seen || rec.Score > best.Score {
			entry.BestScores[rec.Game] = rec
		}
	}

	entries := make([]model.LeaderboardEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, *byName[name])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// GameLeaderboard returns up to limit records for one game, sorted by
// score descending. Players are not deduplicated: the same player may
// occupy several ranks.
func GameLeaderboard(records []model.ScoreRecord, game model.GameID, limit int) []model.ScoreRecord {
	if limit <= 0 {
		return nil
	}

	filtered := make([]model.ScoreRecord, 0)
	for _, rec := range records {
		if rec.Game == game {
			filtered = append(filtered, rec)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
