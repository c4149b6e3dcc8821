package database

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_UpsertReplacesSameDay(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	participants := newParticipantRepo(db.conn)
	repo := newReportRepo(db.conn)

	require.NoError(t, participants.Create(ctx, &entity.Participant{ChatID: 1, UserID: 10, Username: "alice", Active: true}))

	first := &entity.Report{ChatID: 1, UserID: 10, Date: "2024-06-11", MessageID: 5, Text: "first"}
	require.NoError(t, repo.Upsert(ctx, first))
	assert.False(t, first.CreatedAt.IsZero())

	second := &entity.Report{ChatID: 1, UserID: 10, Date: "2024-06-11", MessageID: 6, Text: "second", CreatedAt: time.Now()}
	require.NoError(t, repo.Upsert(ctx, second))

	reports, err := repo.ListByDate(ctx, 1, "2024-06-11")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "second", reports[0].Text)
	assert.Equal(t, "alice", reports[0].Username)
}

func TestReportRepository_ReportersOn(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newReportRepo(db.conn)

	require.NoError(t, repo.Upsert(ctx, &entity.Report{ChatID: 1, UserID: 10, Date: "2024-06-11"}))
	require.NoError(t, repo.Upsert(ctx, &entity.Report{ChatID: 1, UserID: 20, Date: "2024-06-10"}))
	require.NoError(t, repo.Upsert(ctx, &entity.Report{ChatID: 2, UserID: 30, Date: "2024-06-11"}))

	reporters, err := repo.ReportersOn(ctx, 1, "2024-06-11")
	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{10: {}}, reporters)

	empty, err := repo.ReportersOn(ctx, 3, "2024-06-11")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReportRepository_ListByDateWithoutParticipantRow(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newReportRepo(db.conn)

	require.NoError(t, repo.Upsert(ctx, &entity.Report{ChatID: 1, UserID: 10, Date: "2024-06-11", Text: "done"}))

	reports, err := repo.ListByDate(ctx, 1, "2024-06-11")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, int64(10), reports[0].UserID)
	assert.Empty(t, reports[0].Username)
}
