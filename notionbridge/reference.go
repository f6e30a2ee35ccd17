package notionbridge

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kinesia-app/kinesia/domains/cache"
	"github.com/kinesia-app/kinesia/domains/reference"
	"github.com/kinesia-app/kinesia/infrastructure/notion"
)

// ReferenceProvider owns the process-wide reference snapshot for one
// authenticated session. All five collections come from one cache entry
// under one key, so they are always replaced together: a consumer can never
// observe a half-updated set. Constructed once per session; call Dispose on
// logout.
type ReferenceProvider struct {
	exec    *Executor
	ownerID string

	mu          sync.RWMutex
	snapshot    reference.DataSet
	errMsg      string
	needsConfig bool
	isCached    bool
	loading     bool
	disposed    bool
}

func NewReferenceProvider(store cache.Store, remote notion.Remote, ownerID string) *ReferenceProvider {
	exec := NewExecutor(store, remote, Options{
		Operation:      notion.OpGetAllReferenceData,
		RequiresConfig: true,
		CacheKey:       KeyAllReferenceData,
		TTL:            TTLReferenceSnapshot,
		OwnerID:        ownerID,
	})
	return &ReferenceProvider{exec: exec, ownerID: ownerID}
}

// RefetchAll rebuilds the whole snapshot from the cache or the remote.
// The five collections are swapped in as one unit.
func (p *ReferenceProvider) RefetchAll(ctx context.Context) {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	p.loading = true
	p.mu.Unlock()

	state := p.exec.Execute(ctx, map[string]string{"owner_id": p.ownerID})

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	p.needsConfig = state.NeedsConfig

	if state.NeedsConfig {
		// Not-configured is not an error state; it clears any prior error.
		p.errMsg = ""
		return
	}
	if state.Err != nil {
		p.errMsg = "failed to load reference data: " + state.Err.Error()
		return
	}
	if state.Data == nil {
		return
	}

	var set reference.DataSet
	if err := json.Unmarshal(state.Data, &set); err != nil {
		p.errMsg = "failed to decode reference data: " + err.Error()
		logrus.Errorf("[Reference] decode failed for owner %s: %v", p.ownerID, err)
		return
	}
	if set.FetchedAt.IsZero() {
		set.FetchedAt = time.Now()
	}

	p.snapshot = set
	p.errMsg = ""
	p.isCached = state.IsCached
}

// Snapshot returns the last successful snapshot; empty while loading or
// before the first fetch.
func (p *ReferenceProvider) Snapshot() reference.DataSet {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

func (p *ReferenceProvider) Err() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.errMsg
}

func (p *ReferenceProvider) NeedsConfig() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.needsConfig
}

func (p *ReferenceProvider) IsCached() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isCached
}

func (p *ReferenceProvider) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Dispose tears the provider down on logout. Further refetches are no-ops
// and the snapshot is dropped.
func (p *ReferenceProvider) Dispose() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disposed = true
	p.snapshot = reference.DataSet{}
}
