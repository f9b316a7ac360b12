package manager

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"rregexd/internal/loader"
	"rregexd/internal/playground"
	"rregexd/internal/registry"
	"rregexd/pkg/types"
)

type Manager struct {
	mu        sync.Mutex
	registry  *registry.Registry
	open      OpenFunc
	loader    *loader.Loader[*loadedEngine]
	log       zerolog.Logger
	slots     map[string]*execSlots
	startTime time.Time

	// Queue config
	maxQueueDepth int
	maxWait       time.Duration
}

var errNoOpener = errors.New("no engine configured")

func missingOpener(context.Context, types.Version) (Handle, error) { return nil, errNoOpener }

// initVersion is the loader's init func. It runs at most once per key.
// Metadata is best effort: a build that cannot describe itself still serves.
func (m *Manager) initVersion(ctx context.Context, key string) (*loadedEngine, error) {
	v, ok := m.registry.Get(key)
	if !ok {
		return nil, ErrVersionNotFound(key)
	}
	h, err := m.open(ctx, v)
	if err != nil {
		return nil, err
	}
	md, err := playground.ReadMetadata(ctx, h)
	if err != nil {
		m.log.Warn().Err(err).Str("version", key).Msg("engine metadata unavailable")
	}
	return &loadedEngine{Handle: h, meta: md}, nil
}

// Ready reports whether the currently requested version is loaded.
func (m *Manager) Ready() bool {
	return m.loader.Current().Ready()
}

// ListVersions returns known versions, newest first.
func (m *Manager) ListVersions() types.VersionsResponse {
	return types.VersionsResponse{Versions: m.registry.List(), Default: m.registry.Default()}
}

// State returns the current load state.
func (m *Manager) State() types.LoadState {
	return toLoadState(m.loader.Current())
}

// WaitState blocks until the current version stops loading or ctx ends. The
// state at return is reported either way.
func (m *Manager) WaitState(ctx context.Context) (types.LoadState, error) {
	st, err := m.loader.Wait(ctx)
	return toLoadState(st), err
}

// Subscribe registers fn for load state changes.
func (m *Manager) Subscribe(fn func(types.LoadState)) (cancel func()) {
	return m.loader.Subscribe(func(st loader.State[*loadedEngine]) { fn(toLoadState(st)) })
}

// Share normalizes a playground query. Unknown versions fall back to the
// current version, then the default.
func (m *Manager) Share(q url.Values) types.ShareResponse {
	st := playground.FromQuery(q, m.registry.Has, m.fallbackVersion())
	return types.ShareResponse{Query: st.Encode(), Version: st.Version, Method: string(st.Method)}
}

func (m *Manager) fallbackVersion() string {
	return m.registry.Resolve(m.loader.Current().Key)
}

func toLoadState(st loader.State[*loadedEngine]) types.LoadState {
	ls := types.LoadState{Version: st.Key, Loading: st.Loading, Loaded: st.Ready()}
	if st.Err != nil {
		ls.Error = st.Err.Error()
	}
	return ls
}
