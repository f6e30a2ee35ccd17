package sync

import (
	"context"
	"time"
)

// State is the sync coordinator's lifecycle state for one run.
type State string

const (
	StateIdle     State = "idle"
	StateChecking State = "checking"
	StateSyncing  State = "syncing"
	StateSuccess  State = "success"
	StateError    State = "error"
)

// Status is the externally observable coordinator state.
type Status struct {
	State        State      `json:"state"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	Error        string     `json:"error,omitempty"`
}

type ISyncUsecase interface {
	// Start runs the mount-time check: probe the reference cache keys and
	// resync if any are missing.
	Start(ctx context.Context) Status
	// HandleSync is the manual trigger; it bypasses checking and always
	// resyncs. A trigger while a sync is in flight is dropped.
	HandleSync(ctx context.Context) Status
	Status() Status
}
