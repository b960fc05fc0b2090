// Package events provides a synchronous publish/subscribe bus for game
// events.
//
// A Bus routes published payloads to the handlers registered for a Kind.
// Delivery is synchronous and in registration order, so handlers observe a
// deterministic sequence no matter where a publish originates. Buses are
// created per game instance and handed to the components that need them;
// nothing in this package is global.
package events

import "sync"

// Kind names a category of event on a Bus.
type Kind string

// handler is one registered callback with its owning context.
type handler struct {
	owner  any
	fn     func(payload any)
	active bool
}

// Subscription is a handle to a single registered handler.
// Cancel removes the handler; cancelling twice is a no-op.
type Subscription struct {
	cancel func()
}

// Cancel removes the subscription from its bus. Safe to call on nil and
// safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Bus dispatches published events to per-kind handler lists.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind][]*handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]*handler)}
}

// Subscribe registers fn for events of the given kind. The owner keys the
// handler for bulk removal via Unsubscribe; pass a pointer to the
// component that owns the callback. Handlers for one kind run in the
// order they were subscribed.
func (b *Bus) Subscribe(owner any, kind Kind, fn func(payload any)) *Subscription {
	h := &handler{owner: owner, fn: fn, active: true}
	b.mu.Lock()
	b.handlers[kind] = append(b.handlers[kind], h)
	b.mu.Unlock()

	return &Subscription{cancel: func() {
		b.mu.Lock()
		h.active = false
		b.mu.Unlock()
	}}
}

// Unsubscribe removes every handler registered under the given owner,
// across all kinds. Owners are compared with ==, so use a stable pointer
// identity. Unknown owners are a no-op.
func (b *Bus) Unsubscribe(owner any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for kind, hs := range b.handlers {
		kept := hs[:0]
		for _, h := range hs {
			if h.owner == owner {
				h.active = false
				continue
			}
			kept = append(kept, h)
		}
		if len(kept) == 0 {
			delete(b.handlers, kind)
		} else {
			b.handlers[kind] = kept
		}
	}
}

// Publish delivers the payload to every handler of the given kind,
// synchronously and in registration order, before returning. Publishing
// a kind nobody subscribed to is a no-op.
//
// Handlers added during delivery do not receive the current event;
// handlers cancelled during delivery are skipped.
func (b *Bus) Publish(kind Kind, payload any) {
	b.mu.Lock()
	hs := b.handlers[kind]
	// Compact cancelled entries so hot kinds don't leak them.
	active := hs[:0]
	for _, h := range hs {
		if h.active {
			active = append(active, h)
		}
	}
	if len(active) == 0 {
		delete(b.handlers, kind)
	} else {
		b.handlers[kind] = active
	}
	notify := make([]*handler, len(active))
	copy(notify, active)
	b.mu.Unlock()

	for _, h := range notify {
		b.mu.RLock()
		ok := h.active
		b.mu.RUnlock()
		if ok {
			h.fn(payload)
		}
	}
}

// Len reports the number of live handlers for the given kind.
func (b *Bus) Len(kind Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, h := range b.handlers[kind] {
		if h.active {
			n++
		}
	}
	return n
}
