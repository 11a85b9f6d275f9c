package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaronparryphoto/til-demo/pkg/cleanup"
	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

type QuestionsRepository struct {
	conn PgConnection
}

func NewQuestionsRepo(cfg DBConfig) *QuestionsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for questionsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for questionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &QuestionsRepository{
		conn: pool,
	}
}

func NewQuestionsRepoWithConn(conn PgConnection) *QuestionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for questionsRepo: " + err.Error())
	}
	return &QuestionsRepository{
		conn: conn,
	}
}

// GetActiveByCategory keeps a stable ORDER BY id: the daily selector
// indexes into the returned slice, so row order must not depend on
// query plan.
func (qr *QuestionsRepository) GetActiveByCategory(ctx context.Context, category entity.Category) ([]entity.Question, error) {
	rows, err := qr.conn.Query(
		ctx,
		`SELECT id, category, question_text, options, correct_answer_index, COALESCE(explanation, ''), COALESCE(difficulty, '') FROM questions WHERE category = $1 AND is_active = TRUE ORDER BY id;`,
		category,
	)
	if err != nil {
		return nil, errors.New("getting questions by category error: " + err.Error())
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (qr *QuestionsRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Question, error) {
	rows, err := qr.conn.Query(
		ctx,
		`SELECT id, category, question_text, options, correct_answer_index, COALESCE(explanation, ''), COALESCE(difficulty, '') FROM questions WHERE id = ANY($1) ORDER BY id;`,
		ids,
	)
	if err != nil {
		return nil, errors.New("getting questions by ids error: " + err.Error())
	}
	defer rows.Close()
	return scanQuestions(rows)
}

type questionRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanQuestions(rows questionRows) ([]entity.Question, error) {
	result := make([]entity.Question, 0, 8)
	for rows.Next() {
		q := entity.Question{}
		var options []byte
		err := rows.Scan(&q.ID, &q.Category, &q.Text, &options, &q.CorrectIndex, &q.Explanation, &q.Difficulty)
		if err != nil {
			return nil, errors.New("question row parsing error: " + err.Error())
		}
		// options live as a jsonb array of 4 strings
		if err = sonic.Unmarshal(options, &q.Options); err != nil {
			return nil, errors.New("question options parsing error: " + err.Error())
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected question rows error: " + err.Error())
	}
	return result, nil
}
