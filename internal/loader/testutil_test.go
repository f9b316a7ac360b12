package loader

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// gatedInit is an InitFunc whose per-key calls block until released.
type gatedInit struct {
	mu      sync.Mutex
	gates   map[string]chan struct{}
	errs    map[string]error
	calls   map[string]int
	started chan string
}

func newGatedInit() *gatedInit {
	return &gatedInit{
		gates:   make(map[string]chan struct{}),
		errs:    make(map[string]error),
		calls:   make(map[string]int),
		started: make(chan string, 16),
	}
}

func (g *gatedInit) gate(key string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[key]
	if !ok {
		ch = make(chan struct{})
		g.gates[key] = ch
	}
	return ch
}

// release lets the init for key finish, failing with err when non-nil.
func (g *gatedInit) release(key string, err error) {
	g.mu.Lock()
	g.errs[key] = err
	g.mu.Unlock()
	close(g.gate(key))
}

func (g *gatedInit) count(key string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[key]
}

func (g *gatedInit) fn(ctx context.Context, key string) (string, error) {
	g.mu.Lock()
	g.calls[key]++
	g.mu.Unlock()
	g.started <- key
	<-g.gate(key)
	g.mu.Lock()
	err := g.errs[key]
	g.mu.Unlock()
	if err != nil {
		return "", err
	}
	return "handle-" + key, nil
}

var errBoom = errors.New("boom")

// testCtx returns a context with a short timeout, canceled on test cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(2 * time.Millisecond)
	}
}
