package manager

import (
	"context"

	"rregexd/internal/engine"
	"rregexd/internal/playground"
	"rregexd/pkg/types"
)

// Handle is a loaded engine build. *engine.Module satisfies it.
type Handle interface {
	playground.Caller
	Version() string
	Exports() []string
	HasExport(name string) bool
}

// loadedEngine is what the memo table holds for a version: the opened build
// and the metadata it reported while loading.
type loadedEngine struct {
	Handle
	meta types.EngineMetadata
}

// OpenFunc loads the artifact for v. It is called at most once per version.
type OpenFunc func(ctx context.Context, v types.Version) (Handle, error)

// EngineOpener adapts an engine.Engine to OpenFunc.
func EngineOpener(e *engine.Engine) OpenFunc {
	return func(ctx context.Context, v types.Version) (Handle, error) {
		m, err := e.Load(ctx, v)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}
