package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type QuestionsRepositoryI interface {
	// Lists active questions of one category in stable (id) order.
	// The order is load-bearing: daily selection indexes into it
	GetActiveByCategory(ctx context.Context, category entity.Category) ([]entity.Question, error)
	// Fetches questions by their ids, for answer evaluation
	GetByIDs(ctx context.Context, ids []string) ([]entity.Question, error)
}

type AttemptsRepositoryI interface {
	// Inspects if the user already has an attempt for the date
	Exists(ctx context.Context, userID uuid.UUID, date string) (bool, error)
	// Stores an attempt and its answers in one transaction. Returns
	// ErrAttemptExists if the (user, date) pair is already taken
	Create(ctx context.Context, attempt *entity.Attempt) (uuid.UUID, error)
	// Fetches one attempt with answers and category breakdown
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*entity.Attempt, error)
	// Lists the user's full attempt history, oldest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Attempt, error)
}

type StatsSnapshotRepositoryI interface {
	// Reads the persisted stats snapshot. Returns nil (no error) when
	// there is no snapshot or it can't be decoded
	Get(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error)
	// Writes the snapshot, replacing any previous one
	Upsert(ctx context.Context, userID uuid.UUID, stats *entity.UserStats) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
