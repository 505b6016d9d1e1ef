package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

// RedisSnapshotter stores the serialized collection under a single
// string key.
type RedisSnapshotter struct {
	client *redis.Client
	key    string
	log    *logger.Logger
}

func NewRedisSnapshotter(ctx context.Context, addr, password string, db int, key string, log *logger.Logger) (*RedisSnapshotter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisSnapshotter{client: client, key: key, log: log}, nil
}

func (r *RedisSnapshotter) Load(ctx context.Context) ([]model.Booking, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.Booking{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot key %s: %w", r.key, err)
	}

	return decodeSnapshot(data, r.log), nil
}

func (r *RedisSnapshotter) Save(ctx context.Context, bookings []model.Booking) error {
	data, err := encodeSnapshot(bookings)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot key %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisSnapshotter) Close() error {
	return r.client.Close()
}
