package engine

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"rregexd/pkg/types"
)

// ModuleNamePrefix prefixes the wazero module name of every loaded version.
const ModuleNamePrefix = "rregex-"

// ModuleName returns the wazero module name used for version key.
func ModuleName(key string) string { return ModuleNamePrefix + key }

// Engine owns the wazero runtime shared by all loaded versions.
type Engine struct {
	runtime wazero.Runtime
	cache   wazero.CompilationCache
	mu      sync.Mutex
	closed  bool
}

// New creates an Engine with WASI preview1 available to guests.
func New(ctx context.Context, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var cache wazero.CompilationCache
	if cfg.cacheDir != "" {
		var err error
		cache, err = wazero.NewCompilationCacheWithDir(cfg.cacheDir)
		if err != nil {
			return nil, fmt.Errorf("create disk cache: %w", err)
		}
	}

	// Modules are shared across requests, so a cancelled call must not close
	// the instance; WithCloseOnContextDone stays off.
	rtConfig := wazero.NewRuntimeConfig()
	if cache != nil {
		rtConfig = rtConfig.WithCompilationCache(cache)
	}
	if cfg.memoryLimitPages > 0 {
		rtConfig = rtConfig.WithMemoryLimitPages(cfg.memoryLimitPages)
	}

	rt := wazero.NewRuntimeWithConfig(ctx, rtConfig)
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		if cache != nil {
			cache.Close(ctx)
		}
		rt.Close(ctx)
		return nil, fmt.Errorf("instantiate WASI: %w", err)
	}
	return &Engine{runtime: rt, cache: cache}, nil
}

// Load reads, compiles and instantiates the artifact for v.
func (e *Engine) Load(ctx context.Context, v types.Version) (*Module, error) {
	b, err := os.ReadFile(v.Path)
	if err != nil {
		return nil, &LoadError{Version: v.Key, Stage: StageRead, Err: err}
	}
	return e.LoadBytes(ctx, v.Key, b)
}

// LoadBytes compiles and instantiates wasm under the name for key. Reactor
// modules have their _initialize export run once before use.
func (e *Engine) LoadBytes(ctx context.Context, key string, wasm []byte) (*Module, error) {
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return nil, &LoadError{Version: key, Stage: StageCompile, Err: ErrClosed}
	}

	compiled, err := e.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, &LoadError{Version: key, Stage: StageCompile, Err: err}
	}

	modCfg := wazero.NewModuleConfig().
		WithName(ModuleName(key)).
		WithStartFunctions()
	mod, err := e.runtime.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		compiled.Close(ctx)
		return nil, &LoadError{Version: key, Stage: StageInstantiate, Err: err}
	}

	if init := mod.ExportedFunction("_initialize"); init != nil && len(init.Definition().ParamTypes()) == 0 {
		if _, err := init.Call(ctx); err != nil {
			mod.Close(ctx)
			compiled.Close(ctx)
			return nil, &LoadError{Version: key, Stage: StageInitialize, Err: err}
		}
	}

	exports := make([]string, 0, len(compiled.ExportedFunctions()))
	for name := range compiled.ExportedFunctions() {
		exports = append(exports, name)
	}
	sort.Strings(exports)

	return &Module{version: key, mod: mod, compiled: compiled, exports: exports}, nil
}

// Close releases the runtime, every module instantiated on it and the
// compilation cache.
func (e *Engine) Close(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	err := e.runtime.Close(ctx)
	if e.cache != nil {
		if cerr := e.cache.Close(ctx); err == nil {
			err = cerr
		}
	}
	return err
}
