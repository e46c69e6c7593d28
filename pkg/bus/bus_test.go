package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitDeliversInSubscriptionOrder(t *testing.T) {
	b := New()
	var order []string

	b.Subscribe("doc:saved", func(ctx context.Context, payload any) error {
		order = append(order, "first")
		return nil
	}, "first")
	b.Subscribe("doc:saved", func(ctx context.Context, payload any) error {
		order = append(order, "second")
		return nil
	}, "second")

	b.Emit(context.Background(), "doc:saved", nil)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestHandlerErrorIsIsolated(t *testing.T) {
	b := New()
	called := false

	b.Subscribe("x", func(ctx context.Context, payload any) error {
		return errors.New("boom")
	}, "failing")
	b.Subscribe("x", func(ctx context.Context, payload any) error {
		called = true
		return nil
	}, "next")

	// Must not panic, and the second handler still runs.
	b.Emit(context.Background(), "x", nil)
	assert.True(t, called)
}

func TestHandlerPanicIsIsolated(t *testing.T) {
	b := New()
	called := false

	b.Subscribe("x", func(ctx context.Context, payload any) error {
		panic("handler bug")
	}, "panicking")
	b.Subscribe("x", func(ctx context.Context, payload any) error {
		called = true
		return nil
	}, "next")

	require.NotPanics(t, func() { b.Emit(context.Background(), "x", nil) })
	assert.True(t, called)
}

func TestSubscribeOnce(t *testing.T) {
	b := New()
	count := 0

	b.SubscribeOnce("x", func(ctx context.Context, payload any) error {
		count++
		return nil
	}, "once")

	b.Emit(context.Background(), "x", nil)
	b.Emit(context.Background(), "x", nil)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, b.SubscriberCount("x"))
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	count := 0

	unsub := b.Subscribe("x", func(ctx context.Context, payload any) error {
		count++
		return nil
	}, "sub")

	b.Emit(context.Background(), "x", nil)
	unsub()
	unsub() // idempotent
	b.Emit(context.Background(), "x", nil)
	assert.Equal(t, 1, count)
}

func TestReentrantEmit(t *testing.T) {
	b := New()
	var seen []string

	b.Subscribe("outer", func(ctx context.Context, payload any) error {
		seen = append(seen, "outer")
		b.Emit(ctx, "inner", nil)
		return nil
	}, "outer")
	b.Subscribe("inner", func(ctx context.Context, payload any) error {
		seen = append(seen, "inner")
		return nil
	}, "inner")

	b.Emit(context.Background(), "outer", nil)
	assert.Equal(t, []string{"outer", "inner"}, seen)
}

func TestClearAll(t *testing.T) {
	b := New()
	b.Subscribe("x", func(ctx context.Context, payload any) error { return nil }, "a")
	b.Subscribe("y", func(ctx context.Context, payload any) error { return nil }, "b")
	b.ClearAll()
	assert.Equal(t, 0, b.SubscriberCount("x"))
	assert.Equal(t, 0, b.SubscriberCount("y"))
}

func TestPayloadDelivered(t *testing.T) {
	b := New()
	var got any

	b.Subscribe(EventLockChanged, func(ctx context.Context, payload any) error {
		got = payload
		return nil
	}, "capture")

	want := LockChangedPayload{Scope: "online", ResourceType: "document", ResourceID: "d1", SessionID: "s1", Action: "locked"}
	b.Emit(context.Background(), EventLockChanged, want)
	require.IsType(t, LockChangedPayload{}, got)
	assert.Equal(t, want, got)
}
