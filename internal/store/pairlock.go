package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	pairLockTTL      = 5 * time.Second
	pairLockRetry    = 25 * time.Millisecond
	pairLockAttempts = 40
)

// PairLock serializes follow toggles on a (follower, followee) pair across
// concurrent requests and instances. The key orders the two ids so both
// directions of the pair contend on the same lease.
type PairLock struct {
	rdb *redis.Client
}

func NewPairLock(rdb *redis.Client) *PairLock {
	return &PairLock{rdb: rdb}
}

// Acquire takes the lease for the pair, retrying briefly under contention.
// The returned token must be passed to Release.
func (l *PairLock) Acquire(ctx context.Context, idA, idB string) (string, error) {
	key := pairKey(idA, idB)
	token := uuid.New().String()

	for i := 0; i < pairLockAttempts; i++ {
		ok, err := l.rdb.SetNX(ctx, key, token, pairLockTTL).Result()
		if err != nil {
			return "", err
		}
		if ok {
			return token, nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(pairLockRetry):
		}
	}
	return "", context.DeadlineExceeded
}

// releaseScript deletes the key only if this holder still owns it, so a
// lease lost to TTL expiry never clobbers the next holder's lock.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Release frees the lease if this holder still owns it.
func (l *PairLock) Release(ctx context.Context, idA, idB, token string) error {
	return releaseScript.Run(ctx, l.rdb, []string{pairKey(idA, idB)}, token).Err()
}

func pairKey(idA, idB string) string {
	if idB < idA {
		idA, idB = idB, idA
	}
	return "followlock:" + idA + ":" + idB
}
