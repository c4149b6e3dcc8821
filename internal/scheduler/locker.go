package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
)

const lockPrefix = "standup-bot:job:"

// RedisLocker lets only one replica run a given job occurrence.
type RedisLocker struct {
	client *redislock.Client
	clock  clockwork.Clock
	ttl    time.Duration
}

func NewRedisLocker(client redislock.RedisClient, clock clockwork.Clock, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(client),
		clock:  clock,
		ttl:    ttl,
	}
}

var _ gocron.Locker = (*RedisLocker)(nil)

// Lock keys on the job name and the minute it fires in, so replicas whose
// clocks differ by a few seconds still compete for the same key.
func (l *RedisLocker) Lock(ctx context.Context, key string) (gocron.Lock, error) {
	lockKey := fmt.Sprintf("%s%s:%d", lockPrefix, key, l.clock.Now().Truncate(time.Minute).Unix())

	lock, err := l.client.Obtain(ctx, lockKey, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("job %s is held by another replica: %w", key, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to obtain lock for %s: %w", key, err)
	}

	return &redisLock{lock: lock, ttl: l.ttl}, nil
}

type redisLock struct {
	lock *redislock.Lock
	ttl  time.Duration
}

// Unlock keeps the key for another full TTL counted from the end of the run,
// so a late replica cannot rerun the same occurrence.
func (l *redisLock) Unlock(ctx context.Context) error {
	err := l.lock.Refresh(ctx, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		// already expired, nothing left to hold
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to extend lock %s: %w", l.lock.Key(), err)
	}
	return nil
}
