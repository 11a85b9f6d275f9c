package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaronparryphoto/til-demo/pkg/cleanup"
	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

// StatsSnapshotRepository stores the derived per-user stats rollup as
// a jsonb blob. The snapshot is never authoritative: its only durable
// contribution is the monotonic longest-streak floor, everything else
// is recomputed from the attempts log on read.
type StatsSnapshotRepository struct {
	conn PgConnection
}

func NewStatsSnapshotRepo(cfg DBConfig) *StatsSnapshotRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for statsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StatsSnapshotRepository{
		conn: pool,
	}
}

func NewStatsSnapshotRepoWithConn(conn PgConnection) *StatsSnapshotRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	return &StatsSnapshotRepository{
		conn: conn,
	}
}

// Get returns nil without an error when the snapshot is absent or
// malformed: a broken snapshot must never fail the stats path, the
// caller just recomputes from scratch.
func (sr *StatsSnapshotRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	var raw []byte
	row := sr.conn.QueryRow(ctx, `SELECT stats FROM user_stats WHERE user_id = $1;`, userID)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting stats snapshot error: " + err.Error())
	}
	var stats entity.UserStats
	if err := sonic.Unmarshal(raw, &stats); err != nil {
		log.Printf("malformed stats snapshot for user %s, falling back to recompute: %v", userID, err)
		return nil, nil
	}
	return &stats, nil
}

func (sr *StatsSnapshotRepository) Upsert(ctx context.Context, userID uuid.UUID, stats *entity.UserStats) error {
	if stats == nil {
		return errors.New("stats is nil")
	}
	raw, err := sonic.Marshal(stats)
	if err != nil {
		return errors.New("encoding stats snapshot error: " + err.Error())
	}
	_, err = sr.conn.Exec(
		ctx,
		`INSERT INTO user_stats (user_id, stats, updated_at) VALUES ($1, $2, $3) ON CONFLICT (user_id) DO UPDATE SET stats = EXCLUDED.stats, updated_at = EXCLUDED.updated_at;`,
		userID,
		raw,
		stats.LastUpdated,
	)
	if err != nil {
		return errors.New("upserting stats snapshot error: " + err.Error())
	}
	return nil
}
