// Package manager coordinates engine versions for the HTTP layer. It is
// structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: Handle and OpenFunc, the seam to the wasm engine.
//   - errors.go: error types and helpers (IsTooBusy, IsVersionNotFound).
//   - switch.go: Switch, the consumer-facing version request.
//   - exec.go: Exec, running a playground state against a version.
//   - admission.go: per-version queueing of engine calls.
//   - status_report.go: Status reporting helpers.
//   - events.go: zerolog and prometheus event publishers.
//
// Loading itself lives in package loader; the manager owns the single Loader
// and its memo table for the life of the process.
//
// External packages should treat this package as the orchestration layer and use
// public methods only (e.g., NewWithConfig, Switch, Exec, Status, Ready).
package manager
