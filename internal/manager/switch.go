package manager

import "rregexd/pkg/types"

// Switch makes version the current version. Unknown keys are rejected before
// they reach the loader. Loading continues in the background; the returned
// state is already settled when the version was loaded before.
func (m *Manager) Switch(version string) (types.LoadState, error) {
	if !m.registry.Has(version) {
		return types.LoadState{}, ErrVersionNotFound(version)
	}
	return toLoadState(m.loader.Request(version)), nil
}
