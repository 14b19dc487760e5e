package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSnapshotStore keeps each snapshot record as one JSON value.
type RedisSnapshotStore struct {
	client *redis.Client
}

func NewRedisSnapshotStore(client *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client}
}

func (s *RedisSnapshotStore) key(record string) string {
	return fmt.Sprintf("snapshot:%s", record)
}

func (s *RedisSnapshotStore) Read(ctx context.Context, record string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(record)).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisSnapshotStore) Write(ctx context.Context, record string, data []byte) error {
	return s.client.Set(ctx, s.key(record), data, 0).Err()
}
