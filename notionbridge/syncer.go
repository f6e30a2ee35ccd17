package notionbridge

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kinesia-app/kinesia/domains/cache"
	domainSync "github.com/kinesia-app/kinesia/domains/sync"
	"github.com/kinesia-app/kinesia/infrastructure/notion"
)

// Syncer coordinates full reference resyncs and the invalidation cascade
// that follows them. One remote bulk operation covers all reference
// databases; it is idempotent, so redundant invocations are harmless.
// Retry/backoff for transient remote failures lives in the notion client,
// not here: a failed sync stays in the error state until the user triggers
// HandleSync again.
type Syncer struct {
	store   cache.Store
	remote  notion.Remote
	ownerID string

	mu       sync.RWMutex
	status   domainSync.Status
	onChange func(domainSync.Status)

	// inFlight guards against overlapping syncs; a concurrent trigger is
	// dropped, not queued.
	inFlight atomic.Bool
}

func NewSyncer(store cache.Store, remote notion.Remote, ownerID string) *Syncer {
	return &Syncer{
		store:   store,
		remote:  remote,
		ownerID: ownerID,
		status:  domainSync.Status{State: domainSync.StateIdle},
	}
}

// SetOnChange replaces the status hook on the long-lived handle.
func (s *Syncer) SetOnChange(fn func(domainSync.Status)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Syncer) Status() domainSync.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Syncer) setStatus(st domainSync.Status) {
	s.mu.Lock()
	s.status = st
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}

// Start runs the mount-time check: probe the cache store directly for the
// fixed reference keys and resync if any one is missing. When all are
// present the coordinator reports success with the most recent UpdatedAt
// among them.
func (s *Syncer) Start(ctx context.Context) domainSync.Status {
	if !s.inFlight.CompareAndSwap(false, true) {
		return s.Status()
	}
	defer s.inFlight.Store(false)

	s.setStatus(domainSync.Status{State: domainSync.StateChecking})

	records, err := s.store.ListAll(ctx)
	if err != nil {
		// Store failures fail open: behave as if the keys were missing.
		logrus.Warnf("[Sync] cache probe failed, forcing resync: %v", err)
		return s.resync(ctx)
	}

	byKey := make(map[string]cache.Record, len(records))
	for _, rec := range records {
		byKey[rec.Key] = rec
	}

	var latest time.Time
	for _, resourceKey := range ReferenceKeys {
		rec, ok := byKey[Key(s.ownerID, resourceKey)]
		if !ok {
			logrus.Infof("[Sync] reference key %s missing, starting resync", resourceKey)
			return s.resync(ctx)
		}
		if rec.UpdatedAt.After(latest) {
			latest = rec.UpdatedAt
		}
	}

	st := domainSync.Status{State: domainSync.StateSuccess, LastSyncedAt: &latest}
	s.setStatus(st)
	return st
}

// HandleSync is the manual trigger. It bypasses the checking step and
// always resyncs; a trigger while a sync is already in flight is dropped.
func (s *Syncer) HandleSync(ctx context.Context) domainSync.Status {
	if !s.inFlight.CompareAndSwap(false, true) {
		logrus.Debug("[Sync] manual trigger dropped, sync already in flight")
		return s.Status()
	}
	defer s.inFlight.Store(false)

	return s.resync(ctx)
}

func (s *Syncer) resync(ctx context.Context) domainSync.Status {
	s.setStatus(domainSync.Status{State: domainSync.StateSyncing})

	result, err := s.remote.Invoke(ctx, notion.OpSyncReferenceData, map[string]string{"owner_id": s.ownerID})
	if err != nil {
		logrus.Errorf("[Sync] resync failed: %v", err)
		st := domainSync.Status{State: domainSync.StateError, Error: err.Error()}
		s.setStatus(st)
		return st
	}

	s.storeReferenceData(ctx, result)
	s.invalidateDependents(ctx)

	now := time.Now()
	st := domainSync.Status{State: domainSync.StateSuccess, LastSyncedAt: &now}
	s.setStatus(st)
	return st
}

// syncResult is the body returned by the bulk resync: the refreshed
// collections, keyed the way the combined snapshot is.
type syncResult struct {
	Modes     json.RawMessage `json:"modes"`
	Muscles   json.RawMessage `json:"muscles"`
	Chakras   json.RawMessage `json:"chakras"`
	Channels  json.RawMessage `json:"channels"`
	Acupoints json.RawMessage `json:"acupoints"`
}

// storeReferenceData writes the combined snapshot and the per-category
// entries back into the cache in one pass, so the next mount-time check
// finds every reference key present. A category the bulk result does not
// carry is fetched on its own. Writes are best effort like every other
// cache population; a key that stays missing just means the next Start
// resyncs again.
func (s *Syncer) storeReferenceData(ctx context.Context, result json.RawMessage) {
	var parsed syncResult
	if err := json.Unmarshal(result, &parsed); err != nil {
		logrus.Warnf("[Sync] resync result is not decodable, caches not repopulated: %v", err)
		return
	}

	if err := s.store.Set(ctx, Key(s.ownerID, KeyAllReferenceData), result, TTLReferenceSnapshot); err != nil {
		logrus.Warnf("[Sync] failed to cache %s: %v", KeyAllReferenceData, err)
	}

	categories := []struct {
		key       string
		data      json.RawMessage
		operation string
	}{
		{KeyAllModes, parsed.Modes, notion.OpGetModes},
		{KeyAllMuscles, parsed.Muscles, notion.OpGetMuscles},
		{KeyAllChakras, parsed.Chakras, notion.OpGetChakras},
		{KeyAllChannels, parsed.Channels, notion.OpGetChannels},
		{KeyAllAcupoints, parsed.Acupoints, notion.OpGetAcupoints},
	}
	for _, cat := range categories {
		data := cat.data
		if data == nil {
			fetched, err := s.remote.Invoke(ctx, cat.operation, map[string]string{"owner_id": s.ownerID})
			if err != nil {
				logrus.Warnf("[Sync] failed to fetch %s after resync: %v", cat.key, err)
				continue
			}
			data = fetched
		}
		if err := s.store.Set(ctx, Key(s.ownerID, cat.key), data, TTLReferenceCollection); err != nil {
			logrus.Warnf("[Sync] failed to cache %s: %v", cat.key, err)
		}
	}
}

// invalidateDependents deletes the caches that embed denormalized
// reference-data fields. Sequential best-effort deletes, not a transaction:
// a failure mid-cascade leaves the remaining keys to their TTLs.
func (s *Syncer) invalidateDependents(ctx context.Context) {
	for _, resourceKey := range DependentKeys {
		key := Key(s.ownerID, resourceKey)
		if err := s.store.Delete(ctx, key); err != nil {
			logrus.Warnf("[Sync] failed to invalidate %s: %v", key, err)
		}
	}
	if err := s.store.DeleteByPrefix(ctx, PagePrefix(s.ownerID)); err != nil {
		logrus.Warnf("[Sync] failed to invalidate page caches: %v", err)
	}
}
