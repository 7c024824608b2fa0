package repository

import (
	"context"
	"errors"
	"fmt"

	"golang-stock-ideas/pkg/common"

	"github.com/redis/go-redis/v9"
)

// NewRedisBlobStore creates a BlobStore that keeps each table in one redis hash.
func NewRedisBlobStore(rdb redis.UniversalClient) BlobStore {
	return &redisBlobStore{redis: rdb, prefix: common.RedisKeyPrefixOffline}
}

type redisBlobStore struct {
	redis  redis.UniversalClient
	prefix string
}

func (s *redisBlobStore) hashKey(table string) string {
	return s.prefix + table
}

func (s *redisBlobStore) Get(ctx context.Context, table, key string) ([]byte, error) {
	data, err := s.redis.HGet(ctx, s.hashKey(table), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s from redis: %w", table, key, err)
	}
	return data, nil
}

func (s *redisBlobStore) Put(ctx context.Context, table, key string, data []byte) error {
	if err := s.redis.HSet(ctx, s.hashKey(table), key, data).Err(); err != nil {
		return fmt.Errorf("failed to put %s/%s to redis: %w", table, key, err)
	}
	return nil
}

func (s *redisBlobStore) Delete(ctx context.Context, table, key string) error {
	if err := s.redis.HDel(ctx, s.hashKey(table), key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s/%s from redis: %w", table, key, err)
	}
	return nil
}

func (s *redisBlobStore) List(ctx context.Context, table string) (map[string][]byte, error) {
	values, err := s.redis.HGetAll(ctx, s.hashKey(table)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s from redis: %w", table, err)
	}
	out := make(map[string][]byte, len(values))
	for k, v := range values {
		out[k] = []byte(v)
	}
	return out, nil
}
