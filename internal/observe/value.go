// Package observe provides reactive value containers for game state.
//
// A Value wraps a piece of state and notifies subscribers synchronously
// whenever it is assigned. Display elements subscribe to the values they
// mirror, so simulation code updates state without pushing to the UI by
// hand. Subscribers are keyed by an owner so a whole component can tear
// down its subscriptions in one call.
package observe

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Number covers the numeric types Adjust can operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// subscriber is one registered callback with its owning context.
type subscriber[T any] struct {
	owner  any
	fn     func(T)
	active bool
}

// Subscription is a handle to a single registered callback.
// Cancel removes the callback; cancelling twice is a no-op.
type Subscription struct {
	cancel func()
}

// Cancel removes the subscription from its value. Safe to call on nil
// and safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Value wraps a value of type T and notifies subscribers when it is set.
//
// Notification is synchronous: Set invokes every subscriber, in
// subscription order, before it returns. Reads are safe from any
// goroutine; writes belong on the simulation goroutine.
type Value[T any] struct {
	mu   sync.RWMutex
	val  T
	subs []*subscriber[T]
}

// New creates a Value holding the given initial value.
// Creating a value does not notify anyone.
func New[T any](initial T) *Value[T] {
	return &Value[T]{val: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

// Set stores a new value and notifies all subscribers with it.
//
// Set always notifies, even when the new value equals the old one.
// Displays rely on this to refresh after a no-op assignment, and
// dedup belongs to the caller if it wants it.
//
// Subscribers added during notification do not receive the current
// value; subscribers cancelled during notification are skipped.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.val = val
	// Compact cancelled entries so long-lived values don't leak them.
	active := v.subs[:0]
	for _, s := range v.subs {
		if s.active {
			active = append(active, s)
		}
	}
	v.subs = active
	notify := make([]*subscriber[T], len(active))
	copy(notify, active)
	v.mu.Unlock()

	for _, s := range notify {
		v.mu.RLock()
		ok := s.active
		v.mu.RUnlock()
		if ok {
			s.fn(val)
		}
	}
}

// Update applies fn to the current value and sets the result.
// Convenience for read-modify-write on the simulation goroutine.
func (v *Value[T]) Update(fn func(T) T) {
	v.Set(fn(v.Get()))
}

// Subscribe registers fn to run on every Set. The owner keys the
// subscription for bulk removal via Unsubscribe; pass a pointer to the
// component that owns the callback. Callbacks for one value run in the
// order they were subscribed.
func (v *Value[T]) Subscribe(owner any, fn func(T)) *Subscription {
	s := &subscriber[T]{owner: owner, fn: fn, active: true}
	v.mu.Lock()
	v.subs = append(v.subs, s)
	v.mu.Unlock()

	return &Subscription{cancel: func() {
		v.mu.Lock()
		s.active = false
		v.mu.Unlock()
	}}
}

// Unsubscribe removes every subscription registered under the given
// owner. Owners are compared with ==, so use a stable pointer identity.
// Unknown owners are a no-op.
func (v *Value[T]) Unsubscribe(owner any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	kept := v.subs[:0]
	for _, s := range v.subs {
		if s.owner == owner {
			s.active = false
			continue
		}
		kept = append(kept, s)
	}
	v.subs = kept
}

// Clear removes all subscriptions. Used on teardown of the owning
// component.
func (v *Value[T]) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, s := range v.subs {
		s.active = false
	}
	v.subs = nil
}

// Len reports the number of live subscriptions.
func (v *Value[T]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	n := 0
	for _, s := range v.subs {
		if s.active {
			n++
		}
	}
	return n
}

// Adjust adds delta to a numeric value, notifying as Set does.
// Equivalent to v.Set(v.Get() + delta).
func Adjust[T Number](v *Value[T], delta T) {
	v.Set(v.Get() + delta)
}
