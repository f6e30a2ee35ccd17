package cachestore

import (
	"context"
	"time"

	"github.com/kinesia-app/kinesia/domains/cache"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// --- Persistence Model ---

type cacheRecordModel struct {
	Key       string    `gorm:"primaryKey"`
	Data      []byte    `gorm:"type:blob"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (cacheRecordModel) TableName() string {
	return "cache_records"
}

// GormStore is the durable cache.Store backed by the relational database.
// Every operation is a round trip; no in-process mirror is kept.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) InitSchema(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&cacheRecordModel{})
}

// Get returns the payload for key. An expired record is deleted on read and
// reported absent, so stale data is never returned.
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var m cacheRecordModel
	err := s.db.WithContext(ctx).First(&m, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	if !s.now().Before(m.ExpiresAt) {
		// Lazy expiry: purge and report absent.
		s.db.WithContext(ctx).Delete(&cacheRecordModel{}, "key = ?", key)
		return nil, false, nil
	}

	return m.Data, true, nil
}

// Set upserts the payload under key. Last-writer-wins, no merge.
func (s *GormStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	now := s.now()
	m := cacheRecordModel{
		Key:       key,
		Data:      payload,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at", "updated_at"}),
	}).Create(&m).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&cacheRecordModel{}, "key = ?", key).Error
}

func (s *GormStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	return s.db.WithContext(ctx).
		Where("key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Delete(&cacheRecordModel{}).Error
}

// ListAll returns every live record. Expired rows found along the way are
// purged, so inspection doubles as an opportunistic sweep.
func (s *GormStore) ListAll(ctx context.Context) ([]cache.Record, error) {
	var models []cacheRecordModel
	if err := s.db.WithContext(ctx).Order("key").Find(&models).Error; err != nil {
		return nil, err
	}

	now := s.now()
	records := make([]cache.Record, 0, len(models))
	var expired []string
	for _, m := range models {
		if !now.Before(m.ExpiresAt) {
			expired = append(expired, m.Key)
			continue
		}
		records = append(records, cache.Record{
			Key:       m.Key,
			Data:      m.Data,
			ExpiresAt: m.ExpiresAt,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}
	if len(expired) > 0 {
		s.db.WithContext(ctx).Delete(&cacheRecordModel{}, "key IN ?", expired)
	}
	return records, nil
}

// escapeLike escapes LIKE wildcards so prefixes containing % or _ match
// literally.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
