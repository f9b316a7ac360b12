package loader

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// InitFunc initializes the module for key. It runs at most once per key per
// Table, on a context that no single caller can cancel.
type InitFunc[H any] func(ctx context.Context, key string) (H, error)

// Future is the shared outcome of one initialization.
type Future[H any] struct {
	key     string
	done    chan struct{}
	handle  H
	err     error
	calls   int
	started time.Time
	dur     time.Duration
}

// Key returns the key this future initializes.
func (f *Future[H]) Key() string { return f.key }

// Done is closed once the initialization finished, successfully or not.
func (f *Future[H]) Done() <-chan struct{} { return f.done }

// Settled reports whether the initialization finished.
func (f *Future[H]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result returns the outcome without blocking, or ErrPending while the
// initialization is still running.
func (f *Future[H]) Result() (H, error) {
	if !f.Settled() {
		var zero H
		return zero, ErrPending
	}
	return f.handle, f.err
}

// Wait blocks until the initialization finished or ctx is done. Cancelling
// ctx stops the wait only; the initialization keeps running.
func (f *Future[H]) Wait(ctx context.Context) (H, error) {
	select {
	case <-f.done:
		return f.handle, f.err
	case <-ctx.Done():
		var zero H
		return zero, ctx.Err()
	}
}

// Entry is a read-only projection of a memo table entry.
type Entry[H any] struct {
	Key      string
	State    EntryState
	Loads    int
	Handle   H
	Err      error
	Duration time.Duration
}

// EntryState is the lifecycle state of one memo table entry.
type EntryState string

const (
	EntryLoading EntryState = "loading"
	EntryReady   EntryState = "ready"
	EntryFailed  EntryState = "failed"
)

// Table memoizes initializations by key. Entries are never removed.
type Table[H any] struct {
	mu        sync.Mutex
	init      InitFunc[H]
	entries   map[string]*Future[H]
	baseCtx   context.Context
	publisher EventPublisher
}

// NewTable constructs a Table around init. A nil publisher drops events.
func NewTable[H any](init InitFunc[H], pub EventPublisher) *Table[H] {
	return &Table[H]{
		init:      init,
		entries:   make(map[string]*Future[H]),
		baseCtx:   context.Background(),
		publisher: publisherOrNoop(pub),
	}
}

// Initialize returns the Future for key, starting the initialization if this
// is the first call for key. The entry is recorded before the work starts.
func (t *Table[H]) Initialize(key string) *Future[H] {
	t.mu.Lock()
	if f, ok := t.entries[key]; ok {
		t.mu.Unlock()
		return f
	}
	f := &Future[H]{key: key, done: make(chan struct{}), started: time.Now()}
	t.entries[key] = f
	t.mu.Unlock()

	go t.run(f)
	return f
}

// Loads reports how many times the init func ran for key.
func (t *Table[H]) Loads(key string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.entries[key]; ok {
		return f.calls
	}
	return 0
}

// Entries returns a snapshot of all entries sorted by key.
func (t *Table[H]) Entries() []Entry[H] {
	t.mu.Lock()
	futures := make([]*Future[H], 0, len(t.entries))
	for _, f := range t.entries {
		futures = append(futures, f)
	}
	calls := make(map[string]int, len(futures))
	for _, f := range futures {
		calls[f.key] = f.calls
	}
	t.mu.Unlock()

	out := make([]Entry[H], 0, len(futures))
	for _, f := range futures {
		e := Entry[H]{Key: f.key, State: EntryLoading, Loads: calls[f.key]}
		if f.Settled() {
			e.Handle, e.Err, e.Duration = f.handle, f.err, f.dur
			if f.err != nil {
				e.State = EntryFailed
			} else {
				e.State = EntryReady
			}
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (t *Table[H]) run(f *Future[H]) {
	t.mu.Lock()
	f.calls++
	t.mu.Unlock()
	t.publisher.Publish(Event{Name: EventLoadStart, Key: f.key, Fields: map[string]any{}})

	h, err := t.call(f.key)
	f.dur = time.Since(f.started)
	if err != nil {
		f.err = ErrLoadFailed(f.key, err)
		t.publisher.Publish(Event{Name: EventLoadFailed, Key: f.key, Fields: map[string]any{"error": err.Error(), "dur_ms": f.dur.Milliseconds()}})
	} else {
		f.handle = h
		t.publisher.Publish(Event{Name: EventLoadReady, Key: f.key, Fields: map[string]any{"dur_ms": f.dur.Milliseconds()}})
	}
	close(f.done)
}

// call invokes init, converting a panic into an error.
func (t *Table[H]) call(key string) (h H, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return t.init(t.baseCtx, key)
}
