package quiz

import (
	"time"

	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

// EmptyStats is the fallback rollup for a user with no history, and
// the substitute when a persisted snapshot can't be decoded.
func EmptyStats(now time.Time) entity.UserStats {
	categoryStats := make(map[entity.Category]entity.CategoryStats, entity.QuestionsPerDay)
	for _, category := range entity.CategoryOrder {
		categoryStats[category] = entity.CategoryStats{}
	}
	return entity.UserStats{
		CategoryStats: categoryStats,
		LastUpdated:   now,
	}
}

// Aggregate recomputes the full stats rollup from the attempt history.
// prev carries the previously persisted snapshot; only its overall
// longest streak is consulted, as a monotonic floor that survives
// history pruning.
func Aggregate(attempts []entity.Attempt, today string, prev *entity.UserStats, now time.Time) entity.UserStats {
	stats := EmptyStats(now)
	stats.TotalQuizzesCompleted = len(attempts)
	stats.TotalQuestionsAnswered = len(attempts) * entity.QuestionsPerDay

	for _, category := range entity.CategoryOrder {
		correct := 0
		for _, a := range attempts {
			if a.Breakdown[category] {
				correct++
			}
		}
		stats.TotalCorrect += correct
		qualifies := CategoryCorrect(category)
		stats.CategoryStats[category] = entity.CategoryStats{
			Total:         len(attempts),
			Correct:       correct,
			CurrentStreak: CurrentStreak(attempts, today, qualifies),
			LongestStreak: LongestStreak(attempts, qualifies),
		}
	}

	stats.CurrentStreak = CurrentStreak(attempts, today, ScorePositive)
	stats.LongestStreak = LongestStreak(attempts, ScorePositive)
	if prev != nil && prev.LongestStreak > stats.LongestStreak {
		stats.LongestStreak = prev.LongestStreak
	}
	return stats
}
