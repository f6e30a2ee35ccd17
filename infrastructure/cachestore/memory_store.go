package cachestore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kinesia-app/kinesia/domains/cache"
)

// MemoryStore is an in-memory cache.Store with the same lazy-expiry
// semantics as the durable backends. Used as fallback and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]cache.Record
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]cache.Record),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	if rec.Expired(s.now()) {
		delete(s.entries, key)
		return nil, false, nil
	}
	return rec.Data, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	created := now
	if prev, ok := s.entries[key]; ok {
		created = prev.CreatedAt
	}
	s.entries[key] = cache.Record{
		Key:       key,
		Data:      payload,
		ExpiresAt: now.Add(ttl),
		CreatedAt: created,
		UpdatedAt: now,
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	return nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]cache.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	records := make([]cache.Record, 0, len(s.entries))
	for key, rec := range s.entries {
		if rec.Expired(now) {
			delete(s.entries, key)
			continue
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })
	return records, nil
}
