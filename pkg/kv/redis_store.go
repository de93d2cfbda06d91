package kv

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrInvalidRedisURL indicates the redis connection string could not be parsed.
	ErrInvalidRedisURL = errors.New("kv.invalid_redis_url")

	// ErrRedisNotReady indicates redis did not accept a connection within the
	// configured retry budget.
	ErrRedisNotReady = errors.New("kv.redis_not_ready")
)

// RedisConfig holds connection settings for the redis-backed store.
type RedisConfig struct {
	ConnectionURL  string        `env:"SHOPKIT_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	KeyPrefix      string        `env:"SHOPKIT_REDIS_KEY_PREFIX" envDefault:"shopkit:"`
	RetryAttempts  int           `env:"SHOPKIT_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"SHOPKIT_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"SHOPKIT_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// DefaultRedisConfig returns the default redis store configuration.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		ConnectionURL:  "redis://localhost:6379/0",
		KeyPrefix:      "shopkit:",
		RetryAttempts:  3,
		RetryInterval:  5 * time.Second,
		ConnectTimeout: 30 * time.Second,
	}
}

// RedisStore implements Store on top of a redis server. Values are stored
// without expiry; the managers own the lifecycle of their keys.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore wraps an existing redis client. Use ConnectRedis to obtain
// one with retry semantics.
func NewRedisStore(client redis.UniversalClient, keyPrefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: keyPrefix,
	}
}

// ConnectRedis establishes a redis connection using cfg, retrying
// cfg.RetryAttempts times with cfg.RetryInterval between attempts, and
// returns a store bound to it.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return NewRedisStore(client, cfg.KeyPrefix), nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// Get retrieves the value stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

// Set stores value under key.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Remove deletes the value stored under key.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Close closes the underlying redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Healthcheck returns a probe function suitable for liveness checks.
func (s *RedisStore) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		if err := s.client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrRedisNotReady, err)
		}
		return nil
	}
}
