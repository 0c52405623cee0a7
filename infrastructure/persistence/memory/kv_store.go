package memory

import (
	"context"
	"sync"

	"layerit/domain/session"
)

// KVStore 进程内键值存储，重启后状态丢失
type KVStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewKVStore() *KVStore {
	return &KVStore{entries: make(map[string]string)}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

var _ session.Store = (*KVStore)(nil)
