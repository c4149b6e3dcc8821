package database

import (
	"context"
	"testing"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	dm := NewInstance(db)

	t.Run("Should commit on success", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Chat().Create(ctx, &entity.Chat{ChatID: 1}); err != nil {
				return err
			}
			return tx.Participant().Create(ctx, &entity.Participant{ChatID: 1, UserID: 10, Active: true})
		})
		require.NoError(t, err)

		found, err := dm.Participant().GetByChatAndUserID(ctx, 1, 10)
		require.NoError(t, err)
		assert.NotNil(t, found)
	})

	t.Run("Should roll back on error", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Chat().Create(ctx, &entity.Chat{ChatID: 2}); err != nil {
				return err
			}
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		found, err := dm.Chat().GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Should reuse the transaction when nested", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			return tx.WithTransaction(ctx, func(inner contract.DataManager) error {
				return inner.Chat().Create(ctx, &entity.Chat{ChatID: 3})
			})
		})
		require.NoError(t, err)

		found, err := dm.Chat().GetByID(ctx, 3)
		require.NoError(t, err)
		assert.NotNil(t, found)
	})
}

func TestParticipantStore(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	dm := NewInstance(db)
	store := NewParticipantStore(dm)

	require.NoError(t, dm.Participant().Create(ctx, &entity.Participant{ChatID: 1, UserID: 20, Username: "bob", Active: true}))
	require.NoError(t, dm.Participant().Create(ctx, &entity.Participant{ChatID: 1, UserID: 10, Active: true}))
	require.NoError(t, dm.Participant().Create(ctx, &entity.Participant{ChatID: 1, UserID: 30, Active: false}))
	require.NoError(t, dm.Report().Upsert(ctx, &entity.Report{ChatID: 1, UserID: 20, Date: "2024-06-11"}))

	refs, err := store.ActiveParticipants(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []entity.ParticipantRef{
		{UserID: 10},
		{UserID: 20, DisplayName: "bob"},
	}, refs)

	reporters, err := store.ReportersOn(ctx, 1, "2024-06-11")
	require.NoError(t, err)
	assert.Contains(t, reporters, int64(20))
}
