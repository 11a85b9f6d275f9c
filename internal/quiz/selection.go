package quiz

import (
	errorvalues "github.com/aaronparryphoto/til-demo/internal/error_values"
	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

// PickForCategory deterministically picks one question for the given
// date from a single category's pool. The category index offsets the
// date seed so each category draws a different question on the same
// day. The pool's order matters: selection is stable only while the
// pool is unchanged.
func PickForCategory(date string, categoryIndex int, pool []entity.Question) (entity.Question, error) {
	if len(pool) == 0 {
		return entity.Question{}, &errorvalues.EmptyCategoryPoolError{
			Category: entity.CategoryOrder[categoryIndex],
		}
	}
	seed, err := DateSeed(date)
	if err != nil {
		return entity.Question{}, err
	}
	idx := IndexInto(len(pool), seed+categoryIndex)
	return pool[idx], nil
}

// SelectDaily picks the day's five questions from a mixed pool, one
// per category in the fixed category order. Pure: same date and same
// pool contents always produce the same five questions in the same
// order.
func SelectDaily(date string, pool []entity.Question) ([]entity.Question, error) {
	selected := make([]entity.Question, 0, entity.QuestionsPerDay)
	for i, category := range entity.CategoryOrder {
		var filtered []entity.Question
		for _, q := range pool {
			if q.Category == category {
				filtered = append(filtered, q)
			}
		}
		q, err := PickForCategory(date, i, filtered)
		if err != nil {
			return nil, err
		}
		selected = append(selected, q)
	}
	return selected, nil
}
