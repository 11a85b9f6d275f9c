package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/aaronparryphoto/til-demo/internal/error_values"
	"github.com/aaronparryphoto/til-demo/pkg/cleanup"
	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

type AttemptsRepository struct {
	conn PgConnection
}

func NewAttemptsRepo(cfg DBConfig) *AttemptsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for attemptsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for attemptsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AttemptsRepository{
		conn: pool,
	}
}

func NewAttemptsRepoWithConn(conn PgConnection) *AttemptsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for attemptsRepo: " + err.Error())
	}
	return &AttemptsRepository{
		conn: conn,
	}
}

func (ar *AttemptsRepository) Exists(ctx context.Context, userID uuid.UUID, date string) (bool, error) {
	var exists bool
	row := ar.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM quiz_attempts WHERE user_id = $1 AND quiz_date = $2);`,
		userID,
		date,
	)
	err := row.Scan(&exists)
	if err != nil {
		return false, errors.New("inspecting if attempt exists error: " + err.Error())
	}
	return exists, nil
}

// Create writes the attempt row and its answer rows as one
// transaction. The unique (user_id, quiz_date) constraint is the
// authority on "one attempt per day"; a second insert for the same
// date comes back as ErrAttemptExists.
func (ar *AttemptsRepository) Create(ctx context.Context, attempt *entity.Attempt) (uuid.UUID, error) {
	if attempt == nil {
		return uuid.UUID{}, errors.New("attempt is nil")
	}
	tx, err := ar.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("opening attempt transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var id uuid.UUID
	row := tx.QueryRow(
		ctx,
		`INSERT INTO quiz_attempts (user_id, quiz_date, score, completed_at) VALUES ($1, $2, $3, $4) RETURNING id;`,
		attempt.UserID,
		attempt.Date,
		attempt.Score,
		attempt.CompletedAt,
	)
	if err = row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrAttemptExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating attempt error: " + err.Error())
	}
	for _, answer := range attempt.Answers {
		_, err = tx.Exec(
			ctx,
			`INSERT INTO user_answers (quiz_attempt_id, question_id, selected_answer_index, is_correct) VALUES ($1, $2, $3, $4);`,
			id,
			answer.QuestionID,
			answer.SelectedIndex,
			answer.IsCorrect,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return uuid.UUID{}, errorvalues.ErrQuestionNotFound
			}
			return uuid.UUID{}, errors.New("creating answer error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing attempt error: " + err.Error())
	}
	return id, nil
}

func (ar *AttemptsRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*entity.Attempt, error) {
	attempt := entity.Attempt{}
	row := ar.conn.QueryRow(
		ctx,
		`SELECT id, user_id, quiz_date, score, completed_at FROM quiz_attempts WHERE user_id = $1 AND quiz_date = $2;`,
		userID,
		date,
	)
	err := row.Scan(&attempt.ID, &attempt.UserID, &attempt.Date, &attempt.Score, &attempt.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAttemptNotFound
		}
		return nil, errors.New("getting attempt error: " + err.Error())
	}
	if err = ar.fillAnswers(ctx, map[uuid.UUID]*entity.Attempt{attempt.ID: &attempt}, userID); err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (ar *AttemptsRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Attempt, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, user_id, quiz_date, score, completed_at FROM quiz_attempts WHERE user_id = $1 ORDER BY quiz_date;`,
		userID,
	)
	if err != nil {
		return nil, errors.New("listing attempts error: " + err.Error())
	}
	result := make([]entity.Attempt, 0, 8)
	for rows.Next() {
		attempt := entity.Attempt{}
		err = rows.Scan(&attempt.ID, &attempt.UserID, &attempt.Date, &attempt.Score, &attempt.CompletedAt)
		if err != nil {
			rows.Close()
			return nil, errors.New("attempt row parsing error: " + err.Error())
		}
		result = append(result, attempt)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, errors.New("unexpected attempt rows error: " + rows.Err().Error())
	}

	byID := make(map[uuid.UUID]*entity.Attempt, len(result))
	for i := range result {
		byID[result[i].ID] = &result[i]
	}
	if err = ar.fillAnswers(ctx, byID, userID); err != nil {
		return nil, err
	}
	return result, nil
}

// fillAnswers loads answers for the given attempts and rebuilds each
// category breakdown by joining questions for the category. Every
// breakdown starts with all five categories false, so a missing answer
// reads as incorrect.
func (ar *AttemptsRepository) fillAnswers(ctx context.Context, attempts map[uuid.UUID]*entity.Attempt, userID uuid.UUID) error {
	for _, attempt := range attempts {
		attempt.Breakdown = make(entity.Breakdown, entity.QuestionsPerDay)
		for _, category := range entity.CategoryOrder {
			attempt.Breakdown[category] = false
		}
	}
	rows, err := ar.conn.Query(
		ctx,
		`SELECT ua.quiz_attempt_id, ua.question_id, ua.selected_answer_index, ua.is_correct, q.category FROM user_answers ua JOIN quiz_attempts qa ON qa.id = ua.quiz_attempt_id JOIN questions q ON q.id = ua.question_id WHERE qa.user_id = $1 ORDER BY ua.id;`,
		userID,
	)
	if err != nil {
		return errors.New("listing answers error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var attemptID uuid.UUID
		var answer entity.Answer
		var category entity.Category
		err = rows.Scan(&attemptID, &answer.QuestionID, &answer.SelectedIndex, &answer.IsCorrect, &category)
		if err != nil {
			return errors.New("answer row parsing error: " + err.Error())
		}
		attempt, ok := attempts[attemptID]
		if !ok {
			continue
		}
		attempt.Answers = append(attempt.Answers, answer)
		attempt.Breakdown[category] = answer.IsCorrect
	}
	if rows.Err() != nil {
		return errors.New("unexpected answer rows error: " + rows.Err().Error())
	}
	return nil
}
