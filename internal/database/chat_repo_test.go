package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newChatRepo(db.conn)

	err := repo.Create(ctx, &entity.Chat{ChatID: -100123, Title: "backend"})
	require.NoError(t, err, "Failed to create chat")

	found, err := repo.GetByID(ctx, -100123)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "backend", found.Title)
	assert.Empty(t, found.DailyTime)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestChatRepository_CreateKeepsDailyTime(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newChatRepo(db.conn)

	require.NoError(t, repo.Create(ctx, &entity.Chat{ChatID: 1, Title: "old"}))
	require.NoError(t, repo.SetDailyTime(ctx, 1, "10:00"))
	require.NoError(t, repo.Create(ctx, &entity.Chat{ChatID: 1, Title: "new"}))

	found, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "new", found.Title)
	assert.Equal(t, "10:00", found.DailyTime)
}

func TestChatRepository_GetByID_NotFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	found, err := newChatRepo(db.conn).GetByID(context.Background(), 42)
	require.NoError(t, err, "Unexpected error when chat not found")
	assert.Nil(t, found, "Expected nil when chat not found")
}

func TestChatRepository_SetDailyTime(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newChatRepo(db.conn)

	err := repo.SetDailyTime(ctx, 7, "09:30")
	assert.True(t, errors.Is(err, entity.ErrNotFound), "unknown chat should not be updated")

	require.NoError(t, repo.Create(ctx, &entity.Chat{ChatID: 7}))
	require.NoError(t, repo.SetDailyTime(ctx, 7, "09:30"))

	found, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "09:30", found.DailyTime)

	require.NoError(t, repo.SetDailyTime(ctx, 7, ""))
	found, err = repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, found.DailyTime)
}

func TestChatRepository_ListSchedules(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newChatRepo(db.conn)

	for _, id := range []int64{3, 1, 2} {
		require.NoError(t, repo.Create(ctx, &entity.Chat{ChatID: id}))
	}
	require.NoError(t, repo.SetDailyTime(ctx, 3, "11:00"))
	require.NoError(t, repo.SetDailyTime(ctx, 1, "10:00"))

	schedules, err := repo.ListSchedules(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.ChatSchedule{
		{ChatID: 1, DailyTime: "10:00"},
		{ChatID: 3, DailyTime: "11:00"},
	}, schedules)
}
