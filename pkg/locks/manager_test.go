package locks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/bus"
)

func newTestManager(t *testing.T) (*Manager, *bus.Bus, *time.Time) {
	t.Helper()
	b := bus.New()
	m := NewManager(b)
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	clock := &now
	m.now = func() time.Time { return *clock }
	return m, b, clock
}

func collectLockEvents(b *bus.Bus) *[]bus.LockChangedPayload {
	var events []bus.LockChangedPayload
	b.Subscribe(bus.EventLockChanged, func(ctx context.Context, payload any) error {
		events = append(events, payload.(bus.LockChangedPayload))
		return nil
	}, "test")
	return &events
}

func TestAcquireAndConflict(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	lock, err := m.Acquire(ctx, "online", "document", "d1", "sess-a", "editing", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "sess-a", lock.SessionID)

	_, err = m.Acquire(ctx, "online", "document", "d1", "sess-b", "", time.Minute)
	var locked *ErrLocked
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, "sess-a", locked.Holder.SessionID)
	assert.Equal(t, "editing", locked.Holder.Reason)
}

func TestReacquireAdvancesHeartbeat(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	first, err := m.Acquire(ctx, "online", "document", "d1", "sess-a", "", time.Minute)
	require.NoError(t, err)

	*clock = clock.Add(30 * time.Second)
	second, err := m.Acquire(ctx, "online", "document", "d1", "sess-a", "", time.Minute)
	require.NoError(t, err)
	assert.True(t, second.ExpiresAt().After(first.ExpiresAt()))
}

func TestExpiredLockSilentlyReplaced(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "online", "document", "d1", "sess-a", "", time.Minute)
	require.NoError(t, err)

	*clock = clock.Add(2 * time.Minute)
	lock, err := m.Acquire(ctx, "online", "document", "d1", "sess-b", "", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "sess-b", lock.SessionID)
}

func TestHeartbeatOwnerOnly(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	lock, err := m.Acquire(ctx, "online", "todo", "t1", "sess-a", "", time.Minute)
	require.NoError(t, err)

	*clock = clock.Add(30 * time.Second)
	m.Heartbeat("online", "todo", "t1", "sess-b") // not the owner, no-op
	got := m.GetLock("online", "todo", "t1")
	require.NotNil(t, got)
	assert.Equal(t, lock.ExpiresAt(), got.ExpiresAt())

	m.Heartbeat("online", "todo", "t1", "sess-a")
	got = m.GetLock("online", "todo", "t1")
	assert.True(t, got.ExpiresAt().After(lock.ExpiresAt()))
}

func TestReleaseIdempotentAndOwnerChecked(t *testing.T) {
	m, b, _ := newTestManager(t)
	events := collectLockEvents(b)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "online", "document", "d1", "sess-a", "", time.Minute)
	require.NoError(t, err)

	m.Release(ctx, "online", "document", "d1", "sess-b") // wrong owner
	require.NotNil(t, m.GetLock("online", "document", "d1"))

	m.Release(ctx, "online", "document", "d1", "sess-a")
	assert.Nil(t, m.GetLock("online", "document", "d1"))
	m.Release(ctx, "online", "document", "d1", "sess-a") // idempotent

	// one locked + one unlocked
	require.Len(t, *events, 2)
	assert.Equal(t, "locked", (*events)[0].Action)
	assert.Equal(t, "unlocked", (*events)[1].Action)
}

func TestGetLockGCsExpired(t *testing.T) {
	m, _, clock := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "online", "document", "d1", "sess-a", "", time.Minute)
	require.NoError(t, err)

	*clock = clock.Add(2 * time.Minute)
	assert.Nil(t, m.GetLock("online", "document", "d1"))
	assert.Empty(t, m.ListSessionLocks("online", "sess-a"))
}

func TestSessionDeletedSweepsLocks(t *testing.T) {
	m, b, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "online", "document", "d1", "sess-del", "", time.Minute)
	require.NoError(t, err)
	_, err = m.Acquire(ctx, "online", "todo", "t1", "sess-del", "", time.Minute)
	require.NoError(t, err)

	events := collectLockEvents(b)
	b.Emit(ctx, bus.EventSessionDeleted, bus.SessionPayload{Scope: "online", SessionID: "sess-del"})

	assert.Empty(t, m.ListSessionLocks("online", "sess-del"))
	require.Len(t, *events, 2)
	for _, e := range *events {
		assert.Equal(t, "unlocked", e.Action)
		assert.Equal(t, "sess-del", e.SessionID)
	}
	_ = m
}

func TestForceAcquireAuditsOverride(t *testing.T) {
	m, b, _ := newTestManager(t)
	ctx := context.Background()

	var audits []bus.ToolExecutedPayload
	b.Subscribe(bus.EventToolExecuted, func(ctx context.Context, payload any) error {
		audits = append(audits, payload.(bus.ToolExecutedPayload))
		return nil
	}, "test")

	_, err := m.Acquire(ctx, "online", "document", "d1", "sess-a", "", time.Minute)
	require.NoError(t, err)

	lock, err := m.ForceAcquire(ctx, "online", "document", "d1", "sess-b", "takeover", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "sess-b", lock.SessionID)

	require.Len(t, audits, 1)
	assert.Equal(t, "force_override", audits[0].Action)
	assert.Equal(t, "sess-b", audits[0].SessionID)
}

func TestReapPublishesUnlocked(t *testing.T) {
	m, b, clock := newTestManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "online", "document", "d1", "sess-a", "", time.Minute)
	require.NoError(t, err)

	events := collectLockEvents(b)
	*clock = clock.Add(2 * time.Minute)
	m.reap(ctx)

	require.Len(t, *events, 1)
	assert.Equal(t, "unlocked", (*events)[0].Action)
}
