package errorvalues

import (
	"errors"
	"fmt"

	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrAttemptExists    = errors.New("attempt for this date already exists")
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrFutureDate       = errors.New("date is in the future")
	ErrAnswerMismatch   = errors.New("answers don't match the day's questions")
)

// EmptyCategoryPoolError signals a content-configuration defect: no
// active questions exist for a category, so daily selection cannot
// proceed. Not retriable.
type EmptyCategoryPoolError struct {
	Category entity.Category
}

func (e *EmptyCategoryPoolError) Error() string {
	return fmt.Sprintf("no questions found for category: %s", e.Category)
}
