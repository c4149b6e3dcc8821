package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bsm/redislock"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLocker_Lock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 11, 10, 0, 5, 0, time.UTC))
	first := NewRedisLocker(client, clock, time.Minute)
	second := NewRedisLocker(client, clock, time.Minute)

	lock, err := first.Lock(ctx, "prompt:1")
	require.NoError(t, err)
	require.NoError(t, lock.Unlock(ctx))

	// same occurrence stays locked after unlock
	_, err = second.Lock(ctx, "prompt:1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, redislock.ErrNotObtained))

	// other jobs are independent
	_, err = second.Lock(ctx, "prompt:2")
	require.NoError(t, err)

	// next day's occurrence gets a new key
	clock.Advance(24 * time.Hour)
	_, err = second.Lock(ctx, "prompt:1")
	require.NoError(t, err)
}

func TestRedisLocker_UnlockHoldsKeyForAnotherTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	fired := time.Date(2024, 6, 11, 10, 0, 5, 0, time.UTC)
	locker := NewRedisLocker(client, clockwork.NewFakeClockAt(fired), time.Minute)
	key := fmt.Sprintf("%sfollowup:1:2024-06-11:%d", lockPrefix, fired.Truncate(time.Minute).Unix())

	lock, err := locker.Lock(ctx, "followup:1:2024-06-11")
	require.NoError(t, err)

	// a long reminder pass
	mr.FastForward(50 * time.Second)
	require.NoError(t, lock.Unlock(ctx))
	assert.Equal(t, time.Minute, mr.TTL(key))

	// once the key is gone unlock has nothing to do
	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(key))
	require.NoError(t, lock.Unlock(ctx))
}
