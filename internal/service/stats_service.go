package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/aaronparryphoto/til-demo/internal/quiz"
	"github.com/aaronparryphoto/til-demo/internal/repository"
	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

type StatsService struct {
	attemptsRepo repository.AttemptsRepositoryI
	statsRepo    repository.StatsSnapshotRepositoryI
}

func NewStatsService(attemptsRepo repository.AttemptsRepositoryI, statsRepo repository.StatsSnapshotRepositoryI) *StatsService {
	if attemptsRepo == nil || statsRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	return &StatsService{
		attemptsRepo: attemptsRepo,
		statsRepo:    statsRepo,
	}
}

// GetUserStats recomputes the rollup from the full attempt history on
// every read; the attempts log is the single source of truth. The
// stored snapshot only contributes the monotonic longest-streak floor
// and is rewritten afterwards.
func (ss *StatsService) GetUserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	history, err := ss.attemptsRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	prev, err := ss.statsRepo.Get(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	stats := quiz.Aggregate(history, quiz.Today(), prev, time.Now().UTC())
	if err = ss.statsRepo.Upsert(ctx, userID, &stats); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &stats, nil
}
