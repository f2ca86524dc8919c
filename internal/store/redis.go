package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"orbosis/pkg/types"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "orbosis:"

// Redis backend, for deployments where several edge instances should
// observe the same member records.
type Redis struct {
	client *redis.Client
	mu     sync.Mutex
}

func NewRedis(ctx context.Context, addr, password string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) Get(ctx context.Context, key string) (*types.Profile, error) {
	raw, err := r.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}

	return decodeProfile(raw), nil
}

func (r *Redis) Set(ctx context.Context, key string, profile *types.Profile) error {
	raw, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	return r.SetValue(ctx, key, raw)
}

func (r *Redis) Merge(ctx context.Context, key string, patch *types.Profile) (*types.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	merged := mergeProfiles(existing, patch)
	if err := r.Set(ctx, key, merged); err != nil {
		return nil, err
	}

	return merged, nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (r *Redis) GetValue(ctx context.Context, key string) (string, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("fetch entry: %w", err)
	}

	return raw, nil
}

func (r *Redis) SetValue(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}
	return nil
}
