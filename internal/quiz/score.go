package quiz

import (
	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

// CheckAnswer reports whether the selected option is the correct one.
func CheckAnswer(q entity.Question, selectedIndex int) bool {
	return q.CorrectIndex == selectedIndex
}

// Score counts correct answers.
func Score(answers []entity.Answer) int {
	score := 0
	for _, a := range answers {
		if a.IsCorrect {
			score++
		}
	}
	return score
}

// CategoryBreakdown maps each of the day's questions to whether its
// answer was correct. A question with no recorded answer counts as
// incorrect, not unanswered. All five categories are always present.
func CategoryBreakdown(answers []entity.Answer, questions []entity.Question) entity.Breakdown {
	breakdown := make(entity.Breakdown, entity.QuestionsPerDay)
	for _, category := range entity.CategoryOrder {
		breakdown[category] = false
	}
	for i, q := range questions {
		if i < len(answers) {
			breakdown[q.Category] = answers[i].IsCorrect
		}
	}
	return breakdown
}
