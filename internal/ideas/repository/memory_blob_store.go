package repository

import (
	"context"
	"strings"

	"github.com/patrickmn/go-cache"
)

// NewMemoryBlobStore creates a process-local BlobStore backed by go-cache. Entries never expire.
func NewMemoryBlobStore() BlobStore {
	return &memoryBlobStore{cache: cache.New(cache.NoExpiration, 0)}
}

type memoryBlobStore struct {
	cache *cache.Cache
}

func memoryKey(table, key string) string {
	return table + ":" + key
}

func (s *memoryBlobStore) Get(_ context.Context, table, key string) ([]byte, error) {
	v, found := s.cache.Get(memoryKey(table, key))
	if !found {
		return nil, ErrBlobNotFound
	}
	data := v.([]byte)
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *memoryBlobStore) Put(_ context.Context, table, key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	s.cache.Set(memoryKey(table, key), stored, cache.NoExpiration)
	return nil
}

func (s *memoryBlobStore) Delete(_ context.Context, table, key string) error {
	s.cache.Delete(memoryKey(table, key))
	return nil
}

func (s *memoryBlobStore) List(_ context.Context, table string) (map[string][]byte, error) {
	prefix := table + ":"
	out := make(map[string][]byte)
	for k, item := range s.cache.Items() {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		data := item.Object.([]byte)
		cp := make([]byte, len(data))
		copy(cp, data)
		out[strings.TrimPrefix(k, prefix)] = cp
	}
	return out, nil
}
