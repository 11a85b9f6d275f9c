package quiz

import (
	"sort"

	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

// Qualifier decides whether an attempt keeps a streak alive.
type Qualifier func(entity.Attempt) bool

// ScorePositive is the overall-streak condition: at least one correct
// answer that day.
func ScorePositive(a entity.Attempt) bool {
	return a.Score > 0
}

// CategoryCorrect is the per-category condition: that category's
// question was answered correctly.
func CategoryCorrect(category entity.Category) Qualifier {
	return func(a entity.Attempt) bool {
		return a.Breakdown[category]
	}
}

// CurrentStreak walks backward day by day from today and counts
// consecutive qualifying days. If today itself has no qualifying
// attempt the streak is 0: yesterday's run doesn't count until today
// is also in.
func CurrentStreak(attempts []entity.Attempt, today string, qualifies Qualifier) int {
	byDate := make(map[string]entity.Attempt, len(attempts))
	for _, a := range attempts {
		byDate[a.Date] = a
	}
	streak := 0
	for date := today; ; date = PrevDay(date) {
		attempt, ok := byDate[date]
		if !ok || !qualifies(attempt) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak scans the history oldest-first and returns the longest
// run of qualifying attempts on consecutive calendar days. A
// non-qualifying attempt is a hard break even when flanked by
// qualifying days; a gap of missed days also breaks the run.
func LongestStreak(attempts []entity.Attempt, qualifies Qualifier) int {
	ordered := make([]entity.Attempt, len(attempts))
	copy(ordered, attempts)
	// YYYY-MM-DD sorts chronologically as plain strings.
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	longest, run := 0, 0
	prevDate := ""
	for _, a := range ordered {
		if !qualifies(a) {
			if run > longest {
				longest = run
			}
			run = 0
			prevDate = a.Date
			continue
		}
		if prevDate == "" || !AreConsecutive(prevDate, a.Date) {
			if run > longest {
				longest = run
			}
			run = 1
		} else {
			run++
		}
		prevDate = a.Date
	}
	if run > longest {
		longest = run
	}
	return longest
}
