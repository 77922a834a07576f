package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/andrewshostak/esports-notifier/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "esports-notifier:poll-lock:"

const releaseTimeout = 5 * time.Second

// releaseScript deletes the key only while it still holds our token, so an expired lock
// taken over by another replica is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client *redis.Client
	logger Logger
	config config.Redis
}

func NewRedisClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisLocker(client *redis.Client, logger Logger, config config.Redis) *RedisLocker {
	return &RedisLocker{client: client, logger: logger, config: config}
}

// Lock retries SET NX every RetryDelay until it wins or ctx is done. The key expires after
// LockTTL so a crashed holder cannot block the team forever.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(l.retryDelay())
	defer ticker.Stop()

	for {
		acquired, err := l.client.SetNX(ctx, redisKey, token, l.config.LockTTL).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("failed to acquire lock for %s: %w", key, err)
		}

		if acquired {
			return func() { l.release(redisKey, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to acquire lock for %s: %w", key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) release(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	deleted, err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Int()
	if err != nil {
		l.logger.Error().Err(err).Str("key", redisKey).Msg("failed to release lock")
		return
	}

	if deleted == 0 {
		l.logger.Debug().Str("key", redisKey).Msg("lock expired before release")
	}
}

func (l *RedisLocker) retryDelay() time.Duration {
	if l.config.RetryDelay <= 0 {
		return 100 * time.Millisecond
	}

	return l.config.RetryDelay
}
