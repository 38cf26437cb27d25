package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BerryBytes/hrctl/internal/retry"
	"github.com/redis/go-redis/v9"
)

const DefaultRedisKey = "hrctl:session"

type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	MaxAttempts int
}

// NewRedisClient connects to redis and pings it, retrying with backoff until
// MaxAttempts is used up.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	err := retry.Do(ctx, func(ctx context.Context) error {
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return client.Ping(pctx).Err()
	}, retry.Policy{
		Attempts: opts.MaxAttempts,
		Backoff:  retry.ExpoJitter{Base: 250 * time.Millisecond, Max: 5 * time.Second, Jitter: 0.2},
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}

// RedisStore keeps the pair as a JSON value under one key, so several hosts
// can share a session.
type RedisStore struct {
	Client RedisClient
	Key    string
	TTL    time.Duration
}

func NewRedisStore(client RedisClient, key string, ttl time.Duration) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{Client: client, Key: key, TTL: ttl}
}

func (r *RedisStore) Load(ctx context.Context) (Credentials, error) {
	raw, err := r.Client.Get(ctx, r.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read %s from redis: %w", r.Key, err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to decode credentials from redis: %w", err)
	}
	return creds, nil
}

func (r *RedisStore) Save(ctx context.Context, creds Credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := r.Client.Set(ctx, r.Key, raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", r.Key, err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.Client.Del(ctx, r.Key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", r.Key, err)
	}
	return nil
}
