package notionbridge

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/kinesia-app/kinesia/config"
	"github.com/kinesia-app/kinesia/domains/cache"
	"github.com/kinesia-app/kinesia/infrastructure/notion"
	pkgError "github.com/kinesia-app/kinesia/pkg/error"
)

// ProfileCompletionPath is where callers are redirected when the remote
// reports an incomplete practitioner profile.
const ProfileCompletionPath = "/profile/complete"

// flight coalesces concurrent remote fetches for the same cache key across
// every executor in the process: all callers await one in-flight fetch.
var flight singleflight.Group

// State is the observable outcome of one Execute call, re-derived on every
// call. NeedsConfig is sticky on the executor until the next successful
// config probe.
type State struct {
	Data        json.RawMessage
	Err         error
	NeedsConfig bool
	IsCached    bool
	// Redirect holds a navigation target instead of a plain error surface
	// for the recognized profile classifications.
	Redirect string
}

// Options describe one named remote operation and its caching policy.
// A zero CacheKey means the operation is never cached.
type Options struct {
	Operation      string
	RequiresAuth   bool
	RequiresConfig bool
	CacheKey       string
	TTL            time.Duration
	// OwnerID is used when no session is present (single-tenant call sites).
	OwnerID string
}

// Callbacks live on the executor handle and may be replaced in place at any
// time; Execute calls through whatever is current.
type Callbacks struct {
	OnSuccess func(data json.RawMessage)
	OnError   func(err error)
}

// Executor wraps a single named edge operation with auth gating, a
// configuration probe, a cache lookup, the remote invocation on miss, and
// best-effort cache population on success.
type Executor struct {
	store  cache.Store
	remote notion.Remote
	opts   Options

	mu          sync.Mutex
	callbacks   Callbacks
	needsConfig bool
}

func NewExecutor(store cache.Store, remote notion.Remote, opts Options) *Executor {
	return &Executor{store: store, remote: remote, opts: opts}
}

// SetCallbacks replaces the callbacks on the long-lived handle.
func (e *Executor) SetCallbacks(cb Callbacks) {
	e.mu.Lock()
	e.callbacks = cb
	e.mu.Unlock()
}

func (e *Executor) currentCallbacks() Callbacks {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.callbacks
}

func (e *Executor) setNeedsConfig(v bool) {
	e.mu.Lock()
	e.needsConfig = v
	e.mu.Unlock()
}

// NeedsConfig reports the sticky configuration flag.
func (e *Executor) NeedsConfig() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.needsConfig
}

func (e *Executor) ownerID(ctx context.Context) string {
	if s := SessionFrom(ctx); s != nil && s.OwnerID != "" {
		return s.OwnerID
	}
	if e.opts.OwnerID != "" {
		return e.opts.OwnerID
	}
	return config.DefaultOwnerID
}

// Execute runs the operation. Steps run strictly in order, each
// short-circuiting on failure: auth check, config check, cache read,
// remote call, cache write. The remote call is never made on a cache hit.
func (e *Executor) Execute(ctx context.Context, payload any) *State {
	state := &State{}
	cb := e.currentCallbacks()

	// 1. Auth gate. The cache is never touched for unauthenticated calls.
	if e.opts.RequiresAuth && SessionFrom(ctx) == nil {
		state.Err = pkgError.AuthError("authentication required")
		if cb.OnError != nil {
			cb.OnError(state.Err)
		}
		return state
	}

	owner := e.ownerID(ctx)

	// 2. Config gate. A failed probe or "not configured" result stops the
	// call before the cache lookup; it is a setup prompt, not an error.
	if e.opts.RequiresConfig {
		configured, err := e.remote.CheckConfig(ctx, owner)
		if err != nil || !configured {
			if err != nil {
				logrus.Warnf("[Executor] config probe for %s failed: %v", e.opts.Operation, err)
			}
			e.setNeedsConfig(true)
			state.NeedsConfig = true
			return state
		}
		e.setNeedsConfig(false)
	}
	state.NeedsConfig = e.NeedsConfig()

	// 3. Cache read. Store failures degrade to a miss (fail open).
	fullKey := ""
	if e.opts.CacheKey != "" {
		fullKey = Key(owner, e.opts.CacheKey)
		data, ok, err := e.store.Get(ctx, fullKey)
		if err != nil {
			logrus.Warnf("[Executor] cache read for %s failed, treating as miss: %v", fullKey, err)
		} else if ok {
			state.Data = data
			state.IsCached = true
			if cb.OnSuccess != nil {
				cb.OnSuccess(state.Data)
			}
			return state
		}
	}

	// 4. Remote call on miss. Concurrent misses for the same key share one
	// in-flight fetch; the shared result is what every caller sees.
	result, err := e.invokeRemote(ctx, fullKey, payload)
	if err != nil {
		e.classifyFailure(state, err)
		if state.Err != nil && cb.OnError != nil {
			cb.OnError(state.Err)
		}
		return state
	}

	state.Data = result
	state.IsCached = false
	if cb.OnSuccess != nil {
		cb.OnSuccess(state.Data)
	}
	return state
}

func (e *Executor) invokeRemote(ctx context.Context, fullKey string, payload any) (json.RawMessage, error) {
	fetch := func() (json.RawMessage, error) {
		result, err := e.remote.Invoke(ctx, e.opts.Operation, payload)
		if err != nil {
			return nil, err
		}
		if fullKey != "" {
			// Caching is best effort, never a correctness gate.
			if err := e.store.Set(ctx, fullKey, result, e.opts.TTL); err != nil {
				logrus.Warnf("[Executor] cache write for %s failed: %v", fullKey, err)
			}
		}
		return result, nil
	}

	if fullKey == "" {
		return fetch()
	}

	v, err, _ := flight.Do(fullKey, func() (any, error) {
		return fetch()
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// classifyFailure maps remote errors onto the executor state: config
// missing is not an error, incomplete profiles redirect instead of toast,
// everything else surfaces as Err.
func (e *Executor) classifyFailure(state *State, err error) {
	switch {
	case notion.IsConfigMissing(err):
		e.setNeedsConfig(true)
		state.NeedsConfig = true
		state.Err = nil
	case notion.IsProfileIncomplete(err):
		state.Err = err
		state.Redirect = ProfileCompletionPath
	default:
		state.Err = err
	}
}
