package cachestore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	valkeylib "github.com/valkey-io/valkey-go"

	"github.com/kinesia-app/kinesia/domains/cache"
	"github.com/kinesia-app/kinesia/infrastructure/valkey"
)

// ValkeyStore implements cache.Store on Valkey. Expiry is enforced natively
// via EX, but records still carry their ExpiresAt so ListAll and the sync
// coordinator see the same metadata as with the durable backend.
type ValkeyStore struct {
	client *valkey.Client
	prefix string
}

func NewValkeyStore(client *valkey.Client) *ValkeyStore {
	return &ValkeyStore{
		client: client,
		prefix: client.Key("cache") + ":",
	}
}

func (s *ValkeyStore) fullKey(key string) string {
	return s.prefix + key
}

func (s *ValkeyStore) inner() valkeylib.Client {
	return s.client.Inner()
}

func (s *ValkeyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cmd := s.inner().B().Get().Key(s.fullKey(key)).Build()

	data, err := s.inner().Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkeylib.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cache record: %w", err)
	}

	var rec cache.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cache record: %w", err)
	}
	// Valkey evicts on its own clock; double-check ours so semantics match
	// the durable store.
	if rec.Expired(time.Now()) {
		s.inner().Do(ctx, s.inner().B().Del().Key(s.fullKey(key)).Build())
		return nil, false, nil
	}
	return rec.Data, true, nil
}

func (s *ValkeyStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	now := time.Now()
	rec := cache.Record{
		Key:       key,
		Data:      payload,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	data, err := json.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("failed to marshal cache record: %w", err)
	}

	cmd := s.inner().B().Set().
		Key(s.fullKey(key)).
		Value(string(data)).
		Ex(ttl).
		Build()

	if err := s.inner().Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to save cache record: %w", err)
	}
	return nil
}

func (s *ValkeyStore) Delete(ctx context.Context, key string) error {
	cmd := s.inner().B().Del().Key(s.fullKey(key)).Build()
	if err := s.inner().Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to delete cache record: %w", err)
	}
	return nil
}

func (s *ValkeyStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	keys, err := s.scan(ctx, s.prefix+prefix+"*")
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	cmd := s.inner().B().Del().Key(keys...).Build()
	if err := s.inner().Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to delete cache records by prefix: %w", err)
	}
	return nil
}

// ListAll returns all live records. Uses SCAN + MGET for production safety.
func (s *ValkeyStore) ListAll(ctx context.Context) ([]cache.Record, error) {
	keys, err := s.scan(ctx, s.prefix+"*")
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []cache.Record{}, nil
	}

	cmd := s.inner().B().Mget().Key(keys...).Build()
	values, err := s.inner().Do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to mget cache records: %w", err)
	}

	records := make([]cache.Record, 0, len(values))
	for _, val := range values {
		if val == "" {
			continue // Key expired between SCAN and MGET
		}
		var rec cache.Record
		if err := json.Unmarshal([]byte(val), &rec); err != nil {
			logrus.Warnf("[ValkeyStore] failed to unmarshal entry: %v", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *ValkeyStore) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64

	for {
		cmd := s.inner().B().Scan().Cursor(cursor).Match(pattern).Count(100).Build()
		result, err := s.inner().Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, fmt.Errorf("failed to scan cache records: %w", err)
		}

		keys = append(keys, result.Elements...)
		cursor = result.Cursor
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}
