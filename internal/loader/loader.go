package loader

import (
	"context"
	"sync/atomic"
)

// State is the consumer-visible view of the requested key.
type State[H any] struct {
	// Key is the most recently requested key; empty before the first Request.
	Key string
	// Handle is set only once Key initialized successfully.
	Handle H
	// Loading is true while the initialization for Key is outstanding.
	Loading bool
	// Err is set only once the initialization for Key failed.
	Err error

	ready bool
	gen   uint64
}

// Ready reports whether Handle holds a successfully initialized module.
func (s State[H]) Ready() bool { return s.ready }

// Failed reports whether the initialization for Key failed.
func (s State[H]) Failed() bool { return !s.Loading && s.Err != nil }

// Loader exposes a single current key on top of a Table.
type Loader[H any] struct {
	table     *Table[H]
	store     *Store[State[H]]
	publisher EventPublisher
	stale     atomic.Uint64
}

// New constructs a Loader over table. A nil publisher drops events.
func New[H any](table *Table[H], pub EventPublisher) *Loader[H] {
	return &Loader[H]{
		table:     table,
		store:     NewStore(State[H]{}),
		publisher: publisherOrNoop(pub),
	}
}

// Table returns the memo table backing the loader.
func (l *Loader[H]) Table() *Table[H] { return l.table }

// Current returns the live state.
func (l *Loader[H]) Current() State[H] { return l.store.Get() }

// StaleCompletions reports how many completions were dropped because a newer
// request superseded them.
func (l *Loader[H]) StaleCompletions() uint64 { return l.stale.Load() }

// Subscribe registers fn for state changes. See Store for delivery rules.
func (l *Loader[H]) Subscribe(fn func(State[H])) (cancel func()) {
	return l.store.Subscribe(fn)
}

// Request makes key the current key. Requesting the current key again is a
// no-op. A new key resets the state to loading and awaits the shared
// initialization; if that initialization already finished, the state settles
// before Request returns.
func (l *Loader[H]) Request(key string) State[H] {
	var gen uint64
	st, changed := l.store.Update(func(cur State[H]) (State[H], bool) {
		if cur.gen != 0 && cur.Key == key {
			return cur, false
		}
		gen = cur.gen + 1
		return State[H]{Key: key, Loading: true, gen: gen}, true
	})
	if !changed {
		return st
	}
	l.publisher.Publish(Event{Name: EventRequest, Key: key, Fields: map[string]any{"generation": gen}})

	f := l.table.Initialize(key)
	if f.Settled() {
		l.settle(f, gen)
		return l.Current()
	}
	go func() {
		<-f.Done()
		l.settle(f, gen)
	}()
	return st
}

// settle applies the outcome of f if gen is still the live generation.
func (l *Loader[H]) settle(f *Future[H], gen uint64) {
	h, err := f.Wait(context.Background())
	_, applied := l.store.Update(func(cur State[H]) (State[H], bool) {
		if cur.gen != gen {
			return cur, false
		}
		if err != nil {
			return State[H]{Key: f.key, Err: err, gen: gen}, true
		}
		return State[H]{Key: f.key, Handle: h, ready: true, gen: gen}, true
	})
	if !applied {
		l.stale.Add(1)
		l.publisher.Publish(Event{Name: EventStaleCompletion, Key: f.key, Fields: map[string]any{"generation": gen}})
	}
}

// Wait blocks until the current state is no longer loading or ctx is done.
// It returns the latest state in both cases.
func (l *Loader[H]) Wait(ctx context.Context) (State[H], error) {
	ch := make(chan struct{}, 1)
	cancel := l.store.Subscribe(func(s State[H]) {
		if s.Loading {
			return
		}
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	defer cancel()
	for {
		if s := l.Current(); !s.Loading {
			return s, nil
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return l.Current(), ctx.Err()
		}
	}
}
