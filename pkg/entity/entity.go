package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// Category is one of the five fixed trivia subjects. The order in
// CategoryOrder drives seeding offsets, breakdown layout and the share
// grid, so it must never be reshuffled.
type Category string

const (
	CategoryHistory    Category = "History"
	CategoryScience    Category = "Science"
	CategoryGeography  Category = "Geography"
	CategoryPopCulture Category = "Pop Culture"
	CategoryPolitics   Category = "Politics"
)

var CategoryOrder = [5]Category{
	CategoryHistory,
	CategoryScience,
	CategoryGeography,
	CategoryPopCulture,
	CategoryPolitics,
}

// QuestionsPerDay is fixed: one question per category.
const QuestionsPerDay = len(CategoryOrder)

type Question struct {
	ID           string   `json:"id"`
	Category     Category `json:"category"`
	Text         string   `json:"question_text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_answer_index"`
	Explanation  string   `json:"explanation,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
}

type Answer struct {
	QuestionID    string `json:"question_id"`
	SelectedIndex int    `json:"selected_answer_index"`
	IsCorrect     bool   `json:"is_correct"`
}

// Breakdown holds per-category correctness for a single attempt. All
// five categories are always present as keys.
type Breakdown map[Category]bool

// Attempt is one user's completed quiz for one calendar date
// (YYYY-MM-DD). Immutable once stored.
type Attempt struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Date        string    `json:"date"`
	Answers     []Answer  `json:"answers"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
	Breakdown   Breakdown `json:"category_breakdown"`
}

type CategoryStats struct {
	Total         int `json:"total"`
	Correct       int `json:"correct"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

// UserStats is a derived rollup over the full attempt history. It is
// recomputable at any time and never the source of truth.
type UserStats struct {
	TotalQuizzesCompleted  int                        `json:"total_quizzes_completed"`
	TotalQuestionsAnswered int                        `json:"total_questions_answered"`
	TotalCorrect           int                        `json:"total_correct"`
	CurrentStreak          int                        `json:"current_streak"`
	LongestStreak          int                        `json:"longest_streak"`
	CategoryStats          map[Category]CategoryStats `json:"category_stats"`
	LastUpdated            time.Time                  `json:"last_updated"`
}
