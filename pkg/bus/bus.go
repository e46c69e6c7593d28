// Package bus provides the in-process domain event bus: typed fan-out of
// named events to zero or more handlers with per-handler failure isolation.
//
// Handlers for a single Emit run sequentially in subscription order and all
// finish (or fail) before Emit returns. The bus holds no durable state;
// durability belongs to the scope store and the audit subsystem. There is no
// backpressure: handlers must be fast or spawn their own goroutines.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Handler processes one event delivery. Errors and panics are isolated:
// logged with the handler label, never propagated to the emitter.
type Handler func(ctx context.Context, payload any) error

// Unsubscribe removes a subscription. Safe to call more than once.
type Unsubscribe func()

type subscription struct {
	id      string
	label   string
	once    bool
	handler Handler
}

// Bus is the domain event bus. The zero value is not usable; construct with New.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]*subscription
}

// New creates an empty event bus.
func New() *Bus {
	return &Bus{subs: make(map[string][]*subscription)}
}

// Subscribe registers a handler for an event name. The label identifies the
// handler in failure logs; when empty, a generated id is used.
func (b *Bus) Subscribe(name string, handler Handler, label string) Unsubscribe {
	sub := &subscription{id: uuid.New().String(), label: label, handler: handler}
	if sub.label == "" {
		sub.label = sub.id[:8]
	}
	b.mu.Lock()
	b.subs[name] = append(b.subs[name], sub)
	b.mu.Unlock()
	return func() { b.remove(name, sub.id) }
}

// SubscribeOnce registers a handler removed after its first delivery.
func (b *Bus) SubscribeOnce(name string, handler Handler, label string) Unsubscribe {
	sub := &subscription{id: uuid.New().String(), label: label, once: true, handler: handler}
	if sub.label == "" {
		sub.label = sub.id[:8]
	}
	b.mu.Lock()
	b.subs[name] = append(b.subs[name], sub)
	b.mu.Unlock()
	return func() { b.remove(name, sub.id) }
}

// Emit delivers payload to every handler subscribed to name, sequentially in
// subscription order. Handler errors and panics are logged and swallowed.
// Emit is reentrant: a handler may emit further events.
func (b *Bus) Emit(ctx context.Context, name string, payload any) {
	b.mu.RLock()
	subs := make([]*subscription, len(b.subs[name]))
	copy(subs, b.subs[name])
	b.mu.RUnlock()

	for _, sub := range subs {
		if sub.once {
			// Remove before delivery so a reentrant emit cannot double-fire.
			if !b.remove(name, sub.id) {
				continue
			}
		}
		b.deliver(ctx, name, sub, payload)
	}
}

// ClearAll drops every subscription. Used at shutdown.
func (b *Bus) ClearAll() {
	b.mu.Lock()
	b.subs = make(map[string][]*subscription)
	b.mu.Unlock()
}

// SubscriberCount returns the number of handlers for an event name.
func (b *Bus) SubscriberCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[name])
}

func (b *Bus) deliver(ctx context.Context, name string, sub *subscription, payload any) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event handler panicked",
				"event", name, "handler", sub.label, "panic", fmt.Sprint(r))
		}
	}()
	if err := sub.handler(ctx, payload); err != nil {
		slog.Warn("Event handler failed",
			"event", name, "handler", sub.label, "error", err)
	}
}

// remove deletes a subscription by id. Returns false if it was already gone.
func (b *Bus) remove(name, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[name]
	for i, s := range subs {
		if s.id == id {
			b.subs[name] = append(subs[:i:i], subs[i+1:]...)
			return true
		}
	}
	return false
}
