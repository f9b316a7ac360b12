package manager

import (
	"time"

	"rregexd/internal/loader"
	"rregexd/pkg/types"
)

// Status builds a detailed status response for /status.
func (m *Manager) Status() types.StatusResponse {
	now := time.Now()
	resp := types.StatusResponse{
		Current:          m.State(),
		Known:            m.registry.Len(),
		UptimeSeconds:    int64(now.Sub(m.startTime).Seconds()),
		ServerTimeUnix:   now.Unix(),
		StaleCompletions: m.loader.StaleCompletions(),
	}
	entries := m.loader.Table().Entries()
	resp.Versions = make([]types.VersionStatus, 0, len(entries))
	for _, e := range entries {
		vs := types.VersionStatus{Version: e.Key, State: string(e.State), Loads: e.Loads}
		if e.Err != nil {
			vs.Error = e.Err.Error()
		}
		if e.State == loader.EntryReady && e.Handle != nil {
			vs.Exports = e.Handle.Exports()
			if e.Handle.meta != (types.EngineMetadata{}) {
				md := e.Handle.meta
				vs.Metadata = &md
			}
		}
		resp.Versions = append(resp.Versions, vs)
	}
	return resp
}
