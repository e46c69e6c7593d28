// Package locks implements cooperative resource locks keyed by
// (scope, resourceType, resourceId) with session-scoped ownership,
// TTL expiry via heartbeats, and a background reaper.
package locks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hymnly133/prizm/pkg/bus"
)

// DefaultTTL applies when acquire is called with ttl <= 0.
const DefaultTTL = 5 * time.Minute

// Lock describes a held resource lock.
type Lock struct {
	Scope         string    `json:"scope"`
	ResourceType  string    `json:"resourceType"`
	ResourceID    string    `json:"resourceId"`
	SessionID     string    `json:"sessionId"`
	Reason        string    `json:"reason,omitempty"`
	AcquiredAt    time.Time `json:"acquiredAt"`
	LastHeartbeat time.Time `json:"-"`
	TTL           time.Duration `json:"-"`
}

// ExpiresAt returns the instant the lock lapses absent further heartbeats.
func (l *Lock) ExpiresAt() time.Time {
	return l.LastHeartbeat.Add(l.TTL)
}

func (l *Lock) expired(now time.Time) bool {
	return now.After(l.ExpiresAt())
}

// ErrLocked reports that a resource is held by another session. It carries
// the holder descriptor so the HTTP layer can build the 423 body.
type ErrLocked struct {
	Holder *Lock
}

func (e *ErrLocked) Error() string {
	return fmt.Sprintf("resource %s/%s locked by session %s",
		e.Holder.ResourceType, e.Holder.ResourceID, e.Holder.SessionID)
}

type lockKey struct {
	scope, resourceType, resourceID string
}

// Manager holds authoritative lock state in memory. A reaper goroutine
// sweeps expired entries; expired locks are also treated as absent on read.
type Manager struct {
	mu    sync.Mutex
	locks map[lockKey]*Lock
	bus   *bus.Bus
	now   func() time.Time

	stopReaper context.CancelFunc
	done       chan struct{}
}

// NewManager creates a lock manager and subscribes it to session deletion
// so a deleted session's locks are swept.
func NewManager(b *bus.Bus) *Manager {
	m := &Manager{
		locks: make(map[lockKey]*Lock),
		bus:   b,
		now:   time.Now,
	}
	b.Subscribe(bus.EventSessionDeleted, func(ctx context.Context, payload any) error {
		p, ok := payload.(bus.SessionPayload)
		if !ok {
			return nil
		}
		m.ReleaseSessionLocks(ctx, p.Scope, p.SessionID)
		return nil
	}, "locks.sessionSweep")
	return m
}

// StartReaper launches the background sweep of expired locks.
func (m *Manager) StartReaper(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	m.stopReaper = cancel
	m.done = make(chan struct{})
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.reap(ctx)
			}
		}
	}()
}

// Stop halts the reaper if running.
func (m *Manager) Stop() {
	if m.stopReaper != nil {
		m.stopReaper()
		<-m.done
	}
}

// Acquire takes or refreshes a lock. Re-acquire by the owning session
// advances the heartbeat. A live lock held by another session returns
// *ErrLocked with the holder; an expired one is silently replaced.
func (m *Manager) Acquire(ctx context.Context, scope, resourceType, resourceID, sessionID, reason string, ttl time.Duration) (*Lock, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := m.now()
	key := lockKey{scope, resourceType, resourceID}

	m.mu.Lock()
	existing := m.locks[key]
	if existing != nil && !existing.expired(now) {
		if existing.SessionID == sessionID {
			existing.LastHeartbeat = now
			cp := *existing
			m.mu.Unlock()
			return &cp, nil
		}
		cp := *existing
		m.mu.Unlock()
		return nil, &ErrLocked{Holder: &cp}
	}
	lock := &Lock{
		Scope:         scope,
		ResourceType:  resourceType,
		ResourceID:    resourceID,
		SessionID:     sessionID,
		Reason:        reason,
		AcquiredAt:    now,
		LastHeartbeat: now,
		TTL:           ttl,
	}
	m.locks[key] = lock
	cp := *lock
	m.mu.Unlock()

	m.bus.Emit(ctx, bus.EventLockChanged, bus.LockChangedPayload{
		Scope: scope, ResourceType: resourceType, ResourceID: resourceID,
		SessionID: sessionID, Action: "locked",
	})
	return &cp, nil
}

// ForceAcquire takes the lock regardless of the current holder and emits a
// tool:executed audit record with action=force_override.
func (m *Manager) ForceAcquire(ctx context.Context, scope, resourceType, resourceID, sessionID, reason string, ttl time.Duration) (*Lock, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := m.now()
	key := lockKey{scope, resourceType, resourceID}

	m.mu.Lock()
	prev := m.locks[key]
	overridden := prev != nil && !prev.expired(now) && prev.SessionID != sessionID
	lock := &Lock{
		Scope:         scope,
		ResourceType:  resourceType,
		ResourceID:    resourceID,
		SessionID:     sessionID,
		Reason:        reason,
		AcquiredAt:    now,
		LastHeartbeat: now,
		TTL:           ttl,
	}
	m.locks[key] = lock
	cp := *lock
	m.mu.Unlock()

	if overridden {
		m.bus.Emit(ctx, bus.EventToolExecuted, bus.ToolExecutedPayload{
			Scope:     scope,
			SessionID: sessionID,
			ToolName:  "prizm_acquire_lock",
			Action:    "force_override",
			Result:    fmt.Sprintf("overrode lock on %s/%s held by %s", resourceType, resourceID, prev.SessionID),
		})
		slog.Warn("Lock force-overridden",
			"scope", scope, "resource", resourceType+"/"+resourceID,
			"previousHolder", prev.SessionID, "newHolder", sessionID)
	}
	m.bus.Emit(ctx, bus.EventLockChanged, bus.LockChangedPayload{
		Scope: scope, ResourceType: resourceType, ResourceID: resourceID,
		SessionID: sessionID, Action: "locked",
	})
	return &cp, nil
}

// Heartbeat refreshes lastHeartbeat if the session owns the lock. Any other
// case is a no-op.
func (m *Manager) Heartbeat(scope, resourceType, resourceID, sessionID string) {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	lock := m.locks[lockKey{scope, resourceType, resourceID}]
	if lock != nil && lock.SessionID == sessionID && !lock.expired(now) {
		lock.LastHeartbeat = now
	}
}

// Release drops the lock iff the session owns it. Idempotent.
func (m *Manager) Release(ctx context.Context, scope, resourceType, resourceID, sessionID string) {
	key := lockKey{scope, resourceType, resourceID}
	m.mu.Lock()
	lock := m.locks[key]
	if lock == nil || lock.SessionID != sessionID {
		m.mu.Unlock()
		return
	}
	delete(m.locks, key)
	m.mu.Unlock()

	m.bus.Emit(ctx, bus.EventLockChanged, bus.LockChangedPayload{
		Scope: scope, ResourceType: resourceType, ResourceID: resourceID,
		SessionID: sessionID, Action: "unlocked",
	})
}

// GetLock returns the current live holder, or nil. Expired locks are
// garbage-collected on the way out.
func (m *Manager) GetLock(scope, resourceType, resourceID string) *Lock {
	now := m.now()
	key := lockKey{scope, resourceType, resourceID}
	m.mu.Lock()
	defer m.mu.Unlock()
	lock := m.locks[key]
	if lock == nil {
		return nil
	}
	if lock.expired(now) {
		delete(m.locks, key)
		return nil
	}
	cp := *lock
	return &cp
}

// ListSessionLocks returns the live locks held by one session in a scope.
func (m *Manager) ListSessionLocks(scope, sessionID string) []*Lock {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Lock
	for key, lock := range m.locks {
		if lock.Scope != scope || lock.SessionID != sessionID {
			continue
		}
		if lock.expired(now) {
			delete(m.locks, key)
			continue
		}
		cp := *lock
		out = append(out, &cp)
	}
	return out
}

// ReleaseSessionLocks drops every lock a session holds in a scope,
// publishing one unlocked event per lock.
func (m *Manager) ReleaseSessionLocks(ctx context.Context, scope, sessionID string) {
	m.mu.Lock()
	var released []*Lock
	for key, lock := range m.locks {
		if lock.Scope == scope && lock.SessionID == sessionID {
			delete(m.locks, key)
			released = append(released, lock)
		}
	}
	m.mu.Unlock()

	for _, lock := range released {
		m.bus.Emit(ctx, bus.EventLockChanged, bus.LockChangedPayload{
			Scope: lock.Scope, ResourceType: lock.ResourceType, ResourceID: lock.ResourceID,
			SessionID: sessionID, Action: "unlocked",
		})
	}
}

// reap removes expired locks and publishes an unlocked event for each.
func (m *Manager) reap(ctx context.Context) {
	now := m.now()
	m.mu.Lock()
	var expired []*Lock
	for key, lock := range m.locks {
		if lock.expired(now) {
			delete(m.locks, key)
			expired = append(expired, lock)
		}
	}
	m.mu.Unlock()

	for _, lock := range expired {
		slog.Debug("Reaped expired lock",
			"scope", lock.Scope, "resource", lock.ResourceType+"/"+lock.ResourceID,
			"session", lock.SessionID)
		m.bus.Emit(ctx, bus.EventLockChanged, bus.LockChangedPayload{
			Scope: lock.Scope, ResourceType: lock.ResourceType, ResourceID: lock.ResourceID,
			SessionID: lock.SessionID, Action: "unlocked",
		})
	}
}
