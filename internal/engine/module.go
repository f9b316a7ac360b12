package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// ABI export names.
const (
	ExportMemory  = "memory"
	ExportAlloc   = "alloc"
	ExportDealloc = "dealloc"
)

// Module is one instantiated engine build. Calls are serialized because a
// wasm instance is single threaded.
type Module struct {
	version  string
	mod      api.Module
	compiled wazero.CompiledModule
	exports  []string

	mu     sync.Mutex
	closed bool
}

// Version returns the version key the module was loaded for.
func (m *Module) Version() string { return m.version }

// Exports returns the sorted names of exported functions.
func (m *Module) Exports() []string {
	out := make([]string, len(m.exports))
	copy(out, m.exports)
	return out
}

// HasExport reports whether the module exports a function named name.
func (m *Module) HasExport(name string) bool {
	for _, e := range m.exports {
		if e == name {
			return true
		}
	}
	return false
}

// Call invokes the operation export name with input and returns a copy of the
// result bytes.
func (m *Module) Call(ctx context.Context, name string, input []byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}

	fn := m.mod.ExportedFunction(name)
	if fn == nil {
		return nil, missingExportError{name: name}
	}
	mem := m.mod.Memory()
	if mem == nil {
		return nil, missingExportError{name: ExportMemory}
	}
	dealloc := m.mod.ExportedFunction(ExportDealloc)

	var inPtr uint64
	if len(input) > 0 {
		alloc := m.mod.ExportedFunction(ExportAlloc)
		if alloc == nil {
			return nil, missingExportError{name: ExportAlloc}
		}
		res, err := alloc.Call(ctx, uint64(len(input)))
		if err != nil {
			return nil, fmt.Errorf("%s: alloc: %w", name, err)
		}
		inPtr = res[0]
		if !mem.Write(uint32(inPtr), input) {
			return nil, fmt.Errorf("%s: input write out of range (ptr=%d len=%d)", name, inPtr, len(input))
		}
		if dealloc != nil {
			defer dealloc.Call(ctx, inPtr, uint64(len(input)))
		}
	}

	res, err := fn.Call(ctx, inPtr, uint64(len(input)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("%s: expected 1 result, got %d", name, len(res))
	}
	outPtr, outLen := uint32(res[0]>>32), uint32(res[0])
	view, ok := mem.Read(outPtr, outLen)
	if !ok {
		return nil, fmt.Errorf("%s: output read out of range (ptr=%d len=%d)", name, outPtr, outLen)
	}
	out := make([]byte, len(view))
	copy(out, view)
	if dealloc != nil && outLen > 0 && outPtr != uint32(inPtr) {
		_, _ = dealloc.Call(ctx, uint64(outPtr), uint64(outLen))
	}

	if len(out) > 0 && out[0] == '!' {
		return nil, &GuestError{Msg: string(out[1:])}
	}
	return out, nil
}

// Close releases the module instance.
func (m *Module) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	err := m.mod.Close(ctx)
	if cerr := m.compiled.Close(ctx); err == nil {
		err = cerr
	}
	return err
}
