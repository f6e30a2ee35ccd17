package notionbridge

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kinesia-app/kinesia/infrastructure/cachestore"
)

const referencePayload = `{
	"modes":     [{"id": "m1", "name": "Emotional Stress Release"}],
	"muscles":   [{"id": "mu1", "name": "Supraspinatus", "meridian": "Central"}],
	"chakras":   [{"id": "c1", "name": "Root"}],
	"channels":  [{"id": "ch1", "name": "Lung", "element": "Metal"}],
	"acupoints": [{"id": "a1", "name": "LU-1", "channel_id": "ch1"}]
}`

func TestRefetchAllSwapsSnapshotAtomically(t *testing.T) {
	ctx := context.Background()
	store := cachestore.NewMemoryStore()
	remote := &fakeRemote{configured: true, result: json.RawMessage(referencePayload)}

	provider := NewReferenceProvider(store, remote, "local")
	provider.RefetchAll(ctx)

	set := provider.Snapshot()
	if set.Empty() {
		t.Fatalf("expected populated snapshot, err=%q", provider.Err())
	}
	if len(set.Modes) != 1 || len(set.Muscles) != 1 || len(set.Chakras) != 1 ||
		len(set.Channels) != 1 || len(set.Acupoints) != 1 {
		t.Fatalf("all five collections must arrive together, got %+v", set)
	}
	if set.FetchedAt.IsZero() {
		t.Fatal("FetchedAt should be stamped")
	}
	if provider.Err() != "" {
		t.Fatalf("unexpected error %q", provider.Err())
	}

	// Second refetch is served from the cache.
	provider.RefetchAll(ctx)
	if !provider.IsCached() {
		t.Fatal("second refetch should be a cache hit")
	}
	if remote.invokes != 1 {
		t.Fatalf("expected a single remote fetch, got %d", remote.invokes)
	}
}

func TestRefetchAllNeedsConfigClearsError(t *testing.T) {
	ctx := context.Background()
	store := cachestore.NewMemoryStore()
	remote := &fakeRemote{configured: true, invokeErr: errForTest("edge down")}

	provider := NewReferenceProvider(store, remote, "local")
	provider.RefetchAll(ctx)
	if provider.Err() == "" {
		t.Fatal("expected error after failed fetch")
	}

	// Workspace got unconfigured: the flag replaces the stale error.
	remote.configured = false
	provider.RefetchAll(ctx)
	if !provider.NeedsConfig() {
		t.Fatal("expected NeedsConfig")
	}
	if provider.Err() != "" {
		t.Fatalf("needs-config must clear prior errors, got %q", provider.Err())
	}
}

func TestDisposedProviderIgnoresRefetch(t *testing.T) {
	ctx := context.Background()
	store := cachestore.NewMemoryStore()
	remote := &fakeRemote{configured: true, result: json.RawMessage(referencePayload)}

	provider := NewReferenceProvider(store, remote, "local")
	provider.Dispose()
	provider.RefetchAll(ctx)

	if !provider.Snapshot().Empty() {
		t.Fatal("disposed provider must not load data")
	}
	if remote.invokes != 0 {
		t.Fatalf("disposed provider must not call the remote, got %d", remote.invokes)
	}
}

type errForTest string

func (e errForTest) Error() string { return string(e) }
