package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/aaronparryphoto/til-demo/internal/error_values"
	"github.com/aaronparryphoto/til-demo/internal/repository"
	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

var answersQuery = regexp.QuoteMeta(`SELECT ua.quiz_attempt_id, ua.question_id, ua.selected_answer_index, ua.is_correct, q.category FROM user_answers ua JOIN quiz_attempts qa ON qa.id = ua.quiz_attempt_id JOIN questions q ON q.id = ua.question_id WHERE qa.user_id = $1 ORDER BY ua.id;`)

func TestAttemptExists(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewAttemptsRepoWithConn(conn)
	userID := uuid.New()
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM quiz_attempts WHERE user_id = $1 AND quiz_date = $2);`)
	t.Run("exists", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, "2024-01-15").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		exists, err := repo.Exists(ctx, userID, "2024-01-15")
		assert.NoError(t, err)
		assert.True(t, exists)
	})
	t.Run("does not exist", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, "2024-01-16").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		exists, err := repo.Exists(ctx, userID, "2024-01-16")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, "2024-01-15").
			WillReturnError(errors.New("db error"))
		_, err := repo.Exists(ctx, userID, "2024-01-15")
		assert.Error(t, err)
	})
}

func TestCreateAttempt(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewAttemptsRepoWithConn(conn)
	attemptID := uuid.New()
	attempt := entity.Attempt{
		UserID:      uuid.New(),
		Date:        "2024-01-15",
		Score:       2,
		CompletedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Answers: []entity.Answer{
			{QuestionID: "hist_001", SelectedIndex: 1, IsCorrect: true},
			{QuestionID: "sci_002", SelectedIndex: 0, IsCorrect: false},
		},
	}
	insertAttempt := regexp.QuoteMeta(`INSERT INTO quiz_attempts (user_id, quiz_date, score, completed_at) VALUES ($1, $2, $3, $4) RETURNING id;`)
	insertAnswer := regexp.QuoteMeta(`INSERT INTO user_answers (quiz_attempt_id, question_id, selected_answer_index, is_correct) VALUES ($1, $2, $3, $4);`)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(insertAttempt).
			WithArgs(attempt.UserID, attempt.Date, attempt.Score, attempt.CompletedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(attemptID))
		for _, answer := range attempt.Answers {
			conn.ExpectExec(insertAnswer).
				WithArgs(attemptID, answer.QuestionID, answer.SelectedIndex, answer.IsCorrect).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		conn.ExpectCommit()
		id, err := repo.Create(ctx, &attempt)
		assert.NoError(t, err)
		assert.Equal(t, attemptID, id)
	})
	t.Run("duplicate date", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(insertAttempt).
			WithArgs(attempt.UserID, attempt.Date, attempt.Score, attempt.CompletedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		conn.ExpectRollback()
		_, err := repo.Create(ctx, &attempt)
		assert.ErrorIs(t, err, errorvalues.ErrAttemptExists)
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(insertAttempt).
			WithArgs(attempt.UserID, attempt.Date, attempt.Score, attempt.CompletedAt).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		conn.ExpectRollback()
		_, err := repo.Create(ctx, &attempt)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("unknown question", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(insertAttempt).
			WithArgs(attempt.UserID, attempt.Date, attempt.Score, attempt.CompletedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(attemptID))
		conn.ExpectExec(insertAnswer).
			WithArgs(attemptID, attempt.Answers[0].QuestionID, attempt.Answers[0].SelectedIndex, attempt.Answers[0].IsCorrect).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		conn.ExpectRollback()
		_, err := repo.Create(ctx, &attempt)
		assert.ErrorIs(t, err, errorvalues.ErrQuestionNotFound)
	})
	t.Run("nil attempt", func(t *testing.T) {
		_, err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
}

func TestGetAttemptByUserAndDate(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewAttemptsRepoWithConn(conn)
	userID := uuid.New()
	attemptID := uuid.New()
	completedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, user_id, quiz_date, score, completed_at FROM quiz_attempts WHERE user_id = $1 AND quiz_date = $2;`)
	t.Run("found with answers", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, "2024-01-15").
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "quiz_date", "score", "completed_at"}).
				AddRow(attemptID, userID, "2024-01-15", 2, completedAt))
		conn.ExpectQuery(answersQuery).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"quiz_attempt_id", "question_id", "selected_answer_index", "is_correct", "category"}).
				AddRow(attemptID, "hist_001", 1, true, entity.CategoryHistory).
				AddRow(attemptID, "sci_002", 0, false, entity.CategoryScience).
				AddRow(attemptID, "geo_003", 2, true, entity.CategoryGeography))
		result, err := repo.GetByUserAndDate(ctx, userID, "2024-01-15")
		assert.NoError(t, err)
		assert.Equal(t, attemptID, result.ID)
		assert.Equal(t, 2, result.Score)
		assert.Len(t, result.Answers, 3)
		// Unanswered categories read as incorrect
		assert.Equal(t, entity.Breakdown{
			entity.CategoryHistory:    true,
			entity.CategoryScience:    false,
			entity.CategoryGeography:  true,
			entity.CategoryPopCulture: false,
			entity.CategoryPolitics:   false,
		}, result.Breakdown)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, "2024-01-16").
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByUserAndDate(ctx, userID, "2024-01-16")
		assert.ErrorIs(t, err, errorvalues.ErrAttemptNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID, "2024-01-15").
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndDate(ctx, userID, "2024-01-15")
		assert.Error(t, err)
	})
}

func TestListAttemptsByUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewAttemptsRepoWithConn(conn)
	userID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()
	completedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, user_id, quiz_date, score, completed_at FROM quiz_attempts WHERE user_id = $1 ORDER BY quiz_date;`)
	t.Run("answers routed to their attempts", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "quiz_date", "score", "completed_at"}).
				AddRow(firstID, userID, "2024-01-14", 1, completedAt).
				AddRow(secondID, userID, "2024-01-15", 1, completedAt))
		conn.ExpectQuery(answersQuery).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"quiz_attempt_id", "question_id", "selected_answer_index", "is_correct", "category"}).
				AddRow(firstID, "hist_001", 1, true, entity.CategoryHistory).
				AddRow(secondID, "sci_002", 3, true, entity.CategoryScience))
		result, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.True(t, result[0].Breakdown[entity.CategoryHistory])
		assert.False(t, result[0].Breakdown[entity.CategoryScience])
		assert.True(t, result[1].Breakdown[entity.CategoryScience])
		assert.False(t, result[1].Breakdown[entity.CategoryHistory])
	})
	t.Run("empty history", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "quiz_date", "score", "completed_at"}))
		conn.ExpectQuery(answersQuery).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"quiz_attempt_id", "question_id", "selected_answer_index", "is_correct", "category"}))
		result, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, userID)
		assert.Error(t, err)
	})
}
