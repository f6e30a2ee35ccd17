package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Record is one cached payload plus its expiry metadata.
// A record is valid only while now < ExpiresAt; an expired record found on
// read is treated as absent and purged.
type Record struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	ExpiresAt time.Time       `json:"expires_at"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Expired reports whether the record is past its expiry at the given instant.
func (r Record) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Store is the durable key-value store backing the read-through layer.
// There is no background eviction sweep; expiry is checked at read time only
// (lazy expiry), so Get never returns stale data.
type Store interface {
	// Get returns the payload for key. ok=false if absent or expired.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	// Set upserts the payload under key with expiresAt = now + ttl.
	// Last-writer-wins, no merge.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix removes every key starting with prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error
	// ListAll returns every live record. Operator inspection only,
	// not part of the hot path.
	ListAll(ctx context.Context) ([]Record, error)
}

// Stats summarizes the cache contents for the operator UI.
type Stats struct {
	Entries   int    `json:"entries"`
	TotalSize int64  `json:"total_size"`
	HumanSize string `json:"human_size"`
}

type ICacheUsecase interface {
	GetStats(ctx context.Context) (Stats, error)
	ListEntries(ctx context.Context) ([]Record, error)
	DeleteKey(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	ClearOwner(ctx context.Context, ownerID string) error
}
