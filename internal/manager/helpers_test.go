package manager

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rregexd/internal/engine/enginetest"
	"rregexd/internal/playground"
	"rregexd/internal/registry"
	"rregexd/pkg/types"
)

var stubExports = []string{
	"alloc", "capture_names", "find_all", "memory", playground.OpMetadata, "replace_all", "syntax",
}

// fakeHandle answers every operation like the stub engine module. Only
// playground operations are counted and gated by block.
type fakeHandle struct {
	version string
	exports []string
	calls   atomic.Int32
	block   chan struct{}
}

func (h *fakeHandle) Version() string { return h.version }

func (h *fakeHandle) Exports() []string {
	if h.exports != nil {
		return h.exports
	}
	return stubExports
}

func (h *fakeHandle) HasExport(name string) bool { return slices.Contains(h.Exports(), name) }

func (h *fakeHandle) Call(ctx context.Context, name string, input []byte) ([]byte, error) {
	if name == playground.OpMetadata {
		return []byte(enginetest.StubMetadata), nil
	}
	h.calls.Add(1)
	if h.block != nil {
		select {
		case <-h.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	switch name {
	case playground.OpSyntax:
		return []byte(enginetest.StubSyntax), nil
	case playground.OpFindAll:
		return []byte(enginetest.StubFindAll), nil
	case playground.OpReplaceAll:
		return []byte(enginetest.StubReplaceAll), nil
	case playground.OpCaptureNames:
		return []byte(enginetest.StubCaptureNames), nil
	}
	return nil, errors.New("unexpected op " + name)
}

// gatedOpener opens fake handles, blocking each version until released.
type gatedOpener struct {
	mu    sync.Mutex
	gates map[string]chan error
	opens map[string]int
}

func newGatedOpener() *gatedOpener {
	return &gatedOpener{gates: map[string]chan error{}, opens: map[string]int{}}
}

func (g *gatedOpener) gate(key string) chan error {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch := g.gates[key]
	if ch == nil {
		ch = make(chan error, 1)
		g.gates[key] = ch
	}
	return ch
}

func (g *gatedOpener) release(key string, err error) { g.gate(key) <- err }

func (g *gatedOpener) count(key string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.opens[key]
}

func (g *gatedOpener) open(ctx context.Context, v types.Version) (Handle, error) {
	g.mu.Lock()
	g.opens[v.Key]++
	g.mu.Unlock()
	if err := <-g.gate(v.Key); err != nil {
		return nil, err
	}
	return &fakeHandle{version: v.Key}, nil
}

// immediateOpener opens fake handles without blocking.
func immediateOpener(ctx context.Context, v types.Version) (Handle, error) {
	return &fakeHandle{version: v.Key}, nil
}

func testRegistry(keys ...string) *registry.Registry {
	vs := make([]types.Version, 0, len(keys))
	for _, k := range keys {
		vs = append(vs, types.Version{Key: k, Path: "/nonexistent/rregex-" + k + ".wasm"})
	}
	return registry.New(vs, "")
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}
