package cachestore

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	store := NewGormStore(db)
	if err := store.InitSchema(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

func TestGormStoreExpiredRecordPurgedOnRead(t *testing.T) {
	ctx := context.Background()
	store := newTestGormStore(t)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	if err := store.Set(ctx, "local:all-reference-data", []byte(`{"modes":[]}`), 12*time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "local:all-reference-data"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(12 * time.Hour)
	if _, ok, _ := store.Get(ctx, "local:all-reference-data"); ok {
		t.Fatal("expected miss at expiry")
	}

	var count int64
	store.db.Model(&cacheRecordModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("expired row should be deleted, found %d", count)
	}
}

func TestGormStoreUpsertLastWriterWins(t *testing.T) {
	ctx := context.Background()
	store := newTestGormStore(t)

	if err := store.Set(ctx, "local:todays-appointments", []byte(`[]`), 5*time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "local:todays-appointments", []byte(`[{"id":"a"}]`), 5*time.Minute); err != nil {
		t.Fatalf("second set: %v", err)
	}

	data, ok, err := store.Get(ctx, "local:todays-appointments")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(data) != `[{"id":"a"}]` {
		t.Fatalf("last writer should win, got %q", data)
	}
}

func TestGormStoreDeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	store := newTestGormStore(t)

	for _, key := range []string{"local:page:abc", "local:page:xyz", "local:clients:list"} {
		if err := store.Set(ctx, key, []byte(`{}`), time.Hour); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	if err := store.DeleteByPrefix(ctx, "local:page:"); err != nil {
		t.Fatalf("delete by prefix: %v", err)
	}

	records, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].Key != "local:clients:list" {
		t.Fatalf("expected only clients:list to survive, got %+v", records)
	}
}

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"local:page:": "local:page:",
		"a%b":         `a\%b`,
		"a_b":         `a\_b`,
		`a\b`:         `a\\b`,
		"plain":       "plain",
	}
	for in, want := range cases {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
