package loader

import "sync"

// Store holds a value and notifies subscribers on every replacement.
//
// Notifications are delivered in the order updates were applied, outside the
// store lock. A subscriber may read the store or trigger further updates; those
// are queued behind the delivery in progress. Subscribers must not block.
type Store[T any] struct {
	mu         sync.Mutex
	value      T
	nextID     int
	subs       []subscriber[T]
	pending    []T
	delivering bool
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewStore returns a Store holding initial.
func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value unconditionally.
func (s *Store[T]) Set(v T) {
	s.Update(func(T) (T, bool) { return v, true })
}

// Update applies fn to the current value atomically. When fn reports a change
// the new value is stored and delivered to subscribers. It returns the value
// held after the call and whether it changed.
func (s *Store[T]) Update(fn func(cur T) (T, bool)) (T, bool) {
	s.mu.Lock()
	next, changed := fn(s.value)
	if !changed {
		cur := s.value
		s.mu.Unlock()
		return cur, false
	}
	s.value = next
	s.pending = append(s.pending, next)
	if s.delivering {
		s.mu.Unlock()
		return next, true
	}
	s.delivering = true
	for len(s.pending) > 0 {
		v := s.pending[0]
		s.pending = s.pending[1:]
		subs := make([]subscriber[T], len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()
		for _, sub := range subs {
			sub.fn(v)
		}
		s.mu.Lock()
	}
	s.delivering = false
	s.mu.Unlock()
	return next, true
}

// Subscribe registers fn for future changes. The returned func removes it and
// is safe to call more than once.
func (s *Store[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers reports the number of registered subscribers.
func (s *Store[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
