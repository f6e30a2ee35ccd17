package cachestore

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreLazyExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	if err := store.Set(ctx, "local:clients:list", []byte(`["a"]`), 5*time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Within the TTL the payload is served.
	data, ok, err := store.Get(ctx, "local:clients:list")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(data) != `["a"]` {
		t.Fatalf("unexpected payload %q", data)
	}

	// One nanosecond before expiry is still a hit, at expiry it is gone.
	now = now.Add(5*time.Minute - time.Nanosecond)
	if _, ok, _ = store.Get(ctx, "local:clients:list"); !ok {
		t.Fatal("expected hit just before expiry")
	}
	now = now.Add(time.Nanosecond)
	if _, ok, _ = store.Get(ctx, "local:clients:list"); ok {
		t.Fatal("expected miss at expiry")
	}

	// The expired record was purged, not just hidden.
	records, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected purge, found %d records", len(records))
	}
}

func TestMemoryStoreSetIsUpsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	if err := store.Set(ctx, "local:appointments:all", []byte(`[1]`), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	now = now.Add(time.Minute)
	if err := store.Set(ctx, "local:appointments:all", []byte(`[1,2]`), time.Hour); err != nil {
		t.Fatalf("second set: %v", err)
	}

	records, _ := store.ListAll(ctx)
	if len(records) != 1 {
		t.Fatalf("expected single record, got %d", len(records))
	}
	rec := records[0]
	if string(rec.Data) != `[1,2]` {
		t.Fatalf("last writer should win, got %q", rec.Data)
	}
	if !rec.CreatedAt.Equal(now.Add(-time.Minute)) {
		t.Fatalf("CreatedAt should survive upsert, got %v", rec.CreatedAt)
	}
	if !rec.UpdatedAt.Equal(now) {
		t.Fatalf("UpdatedAt should advance, got %v", rec.UpdatedAt)
	}
}

func TestMemoryStoreDeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, key := range []string{"local:page:abc", "local:page:xyz", "local:clients:list", "other:page:abc"} {
		if err := store.Set(ctx, key, []byte(`{}`), time.Hour); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	if err := store.DeleteByPrefix(ctx, "local:page:"); err != nil {
		t.Fatalf("delete by prefix: %v", err)
	}

	records, _ := store.ListAll(ctx)
	if len(records) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(records))
	}
	for _, rec := range records {
		if rec.Key != "local:clients:list" && rec.Key != "other:page:abc" {
			t.Fatalf("unexpected survivor %s", rec.Key)
		}
	}
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Delete(ctx, "local:missing"); err != nil {
		t.Fatalf("deleting an absent key should not error: %v", err)
	}
}
