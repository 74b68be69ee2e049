// Package observable provides a value that notifies subscribers when it
// changes.
//
// Get() is safe to call from any goroutine. Set() has a single writer:
// whoever owns the Value. Subscribers run synchronously inside Set, in
// subscription order, after the new value is visible to Get.
//
//	lang := observable.New("Language")
//	unsubscribe := lang.Subscribe(func(v string) {
//	    label.SetText(v)
//	})
//	lang.Set("English") // label updated before Set returns
//	unsubscribe()
package observable

import "sync"

// Readable is the read-only view of a Value handed to presentation code.
type Readable[T comparable] interface {
	// Get returns the current value.
	Get() T
	// Subscribe registers fn to run on every change.
	Subscribe(fn func(T)) Unsubscribe
}

// Unsubscribe detaches a subscriber. Calling it more than once is a no-op.
type Unsubscribe func()

// Value wraps a value and notifies subscribers when it changes.
type Value[T comparable] struct {
	mu     sync.RWMutex
	value  T
	subs   []*subscriber[T]
	nextID uint64
}

type subscriber[T comparable] struct {
	id     uint64
	fn     func(T)
	active bool
}

var _ Readable[string] = (*Value[string])(nil)

// New creates a value holding initial.
func New[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores next and notifies subscribers if it differs from the
// current value. It reports whether a change happened.
func (v *Value[T]) Set(next T) bool {
	v.mu.Lock()
	if v.value == next {
		v.mu.Unlock()
		return false
	}
	v.value = next

	live := v.subs[:0:0]
	for _, s := range v.subs {
		if s.active {
			live = append(live, s)
		}
	}
	v.subs = live
	v.mu.Unlock()

	// Callbacks run outside the lock; they may call Get or Subscribe.
	for _, s := range live {
		if v.isActive(s) {
			s.fn(next)
		}
	}
	return true
}

func (v *Value[T]) isActive(s *subscriber[T]) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return s.active
}

// Subscribe registers fn to be called with every new value.
func (v *Value[T]) Subscribe(fn func(T)) Unsubscribe {
	v.mu.Lock()
	s := &subscriber[T]{id: v.nextID, fn: fn, active: true}
	v.nextID++
	v.subs = append(v.subs, s)
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		s.active = false
		v.mu.Unlock()
	}
}

// Subscribers returns the number of active subscribers.
func (v *Value[T]) Subscribers() int {
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
