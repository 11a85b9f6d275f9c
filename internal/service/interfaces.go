package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type SubmitAnswer struct {
	QuestionID    string `validate:"required"`
	SelectedIndex int    `validate:"min=0,max=3"`
}

// SubmitAttemptRequest carries up to five answers in question order.
// Fewer than five is allowed: a skipped question scores as incorrect.
type SubmitAttemptRequest struct {
	Date    string         `validate:"required,datetime=2006-01-02"`
	Answers []SubmitAnswer `validate:"required,min=1,max=5,dive"`
}

type UpdateProfileRequest struct {
	Name string `validate:"required,alphanum_underscore,min=3,max=100"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	// Renames the account. Returns ErrUserExists if the name is taken
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type QuizServiceI interface {
	// Returns the day's five questions, one per category in category order
	GetDailyQuiz(ctx context.Context, date string) ([]entity.Question, error)
	// Evaluates answers server-side and stores the attempt. Returns
	// ErrAttemptExists if the user already played that date
	SubmitAttempt(ctx context.Context, userID uuid.UUID, req *SubmitAttemptRequest) (*entity.Attempt, error)
	// Fetches a stored attempt for a date
	GetAttempt(ctx context.Context, userID uuid.UUID, date string) (*entity.Attempt, error)
	// Reports whether the user already has an attempt for today
	HasCompletedToday(ctx context.Context, userID uuid.UUID) (bool, error)
	// Renders the shareable result text for a stored attempt
	ShareText(ctx context.Context, userID uuid.UUID, date string) (string, error)
}

type StatsServiceI interface {
	// Recomputes the stats rollup from the full attempt history and
	// refreshes the persisted snapshot
	GetUserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error)
}
