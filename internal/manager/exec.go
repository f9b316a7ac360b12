package manager

import (
	"context"
	"fmt"

	"rregexd/internal/loader"
	"rregexd/internal/playground"
	"rregexd/pkg/types"
)

// Exec runs req against its version, switching to it first. An empty version
// means the current version, or the default when nothing was requested yet.
func (m *Manager) Exec(ctx context.Context, req types.ExecRequest) (types.ExecResponse, error) {
	version := req.Version
	if version == "" {
		version = m.fallbackVersion()
	}
	if !m.registry.Has(version) {
		return types.ExecResponse{}, ErrVersionNotFound(version)
	}
	m.loader.Request(version)

	h, err := m.loader.Table().Initialize(version).Wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return types.ExecResponse{}, ctx.Err()
		}
		if key, ok := loader.FailedKey(err); ok {
			version = key
		}
		return types.ExecResponse{}, ErrDependencyUnavailable("engine "+version+" unavailable", err)
	}

	release, err := m.beginExec(ctx, version)
	if err != nil {
		return types.ExecResponse{}, err
	}
	defer release()

	st := playground.State{
		Version: version,
		Method:  playground.ParseMethod(req.Method),
		Regex:   req.Regex,
		Replace: req.Replace,
		Text:    req.Text,
	}
	res, err := playground.Execute(ctx, h, st)
	if err != nil {
		return types.ExecResponse{}, fmt.Errorf("exec %s: %w", version, err)
	}
	return types.ExecResponse{
		Version:   version,
		Method:    string(st.Method),
		Matches:   res.Matches,
		Segments:  res.Segments,
		Syntax:    res.Syntax,
		Shortcuts: res.Shortcuts,
		Result:    res.Replaced,
		Error:     res.Error,
		Query:     st.Encode(),
		Docs:      playground.Links(version, h.meta),
	}, nil
}
