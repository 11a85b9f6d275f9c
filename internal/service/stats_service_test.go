package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronparryphoto/til-demo/internal/repository/mocks"
	"github.com/aaronparryphoto/til-demo/internal/service"
	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

func breakdownAll(correct bool) entity.Breakdown {
	breakdown := make(entity.Breakdown, entity.QuestionsPerDay)
	for _, category := range entity.CategoryOrder {
		breakdown[category] = correct
	}
	return breakdown
}

func TestGetUserStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("aggregates history and refreshes snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		attemptsRepo := mocks.NewMockAttemptsRepositoryI(ctrl)
		statsRepo := mocks.NewMockStatsSnapshotRepositoryI(ctrl)
		serv := service.NewStatsService(attemptsRepo, statsRepo)
		history := []entity.Attempt{
			{UserID: userID, Date: "2024-01-14", Score: 5, Breakdown: breakdownAll(true)},
			{UserID: userID, Date: "2024-01-15", Score: 5, Breakdown: breakdownAll(true)},
		}
		attemptsRepo.EXPECT().ListByUser(gomock.Any(), userID).Return(history, nil)
		statsRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)
		statsRepo.EXPECT().Upsert(gomock.Any(), userID, gomock.Any()).Return(nil)

		stats, err := serv.GetUserStats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalQuizzesCompleted)
		assert.Equal(t, 10, stats.TotalQuestionsAnswered)
		assert.Equal(t, 10, stats.TotalCorrect)
		assert.Equal(t, 2, stats.LongestStreak)
		// Dates are in the past, so no streak is active right now
		assert.Equal(t, 0, stats.CurrentStreak)
	})

	t.Run("snapshot keeps longest streak monotonic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		attemptsRepo := mocks.NewMockAttemptsRepositoryI(ctrl)
		statsRepo := mocks.NewMockStatsSnapshotRepositoryI(ctrl)
		serv := service.NewStatsService(attemptsRepo, statsRepo)
		attemptsRepo.EXPECT().ListByUser(gomock.Any(), userID).Return([]entity.Attempt{
			{UserID: userID, Date: "2024-01-15", Score: 3, Breakdown: breakdownAll(false)},
		}, nil)
		statsRepo.EXPECT().Get(gomock.Any(), userID).Return(&entity.UserStats{LongestStreak: 7}, nil)
		statsRepo.EXPECT().Upsert(gomock.Any(), userID, gomock.Any()).Return(nil)

		stats, err := serv.GetUserStats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 7, stats.LongestStreak)
	})

	t.Run("empty history with absent snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		attemptsRepo := mocks.NewMockAttemptsRepositoryI(ctrl)
		statsRepo := mocks.NewMockStatsSnapshotRepositoryI(ctrl)
		serv := service.NewStatsService(attemptsRepo, statsRepo)
		attemptsRepo.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, nil)
		statsRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, nil)
		statsRepo.EXPECT().Upsert(gomock.Any(), userID, gomock.Any()).Return(nil)

		stats, err := serv.GetUserStats(ctx, userID)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalQuizzesCompleted)
		assert.Zero(t, stats.CurrentStreak)
		assert.Zero(t, stats.LongestStreak)
		assert.Len(t, stats.CategoryStats, 5)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		attemptsRepo := mocks.NewMockAttemptsRepositoryI(ctrl)
		statsRepo := mocks.NewMockStatsSnapshotRepositoryI(ctrl)
		serv := service.NewStatsService(attemptsRepo, statsRepo)
		attemptsRepo.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, errors.New("db down"))

		_, err := serv.GetUserStats(ctx, userID)
		assert.EqualError(t, err, "repository error: db down")
	})
}
