// Package loader switches between versions of an externally built module.
// It is structured into small files by concern:
//
//   - store.go: Store, a minimal observable value with ordered change delivery.
//   - table.go: Table and Future, the process-wide memo of initializations.
//   - loader.go: Loader, the consumer-facing Request/Current/Subscribe API.
//   - events.go: Event and EventPublisher plumbing (MemoryPublisher for tests).
//   - errors.go: error types and helpers (IsLoadFailed).
//
// A Table runs the initializer for a key at most once. The entry is stored
// before the work starts, so concurrent callers for the same key share one
// Future. Results, including failures, are kept for the life of the Table.
//
// A Loader tracks the single key a consumer currently wants. Every Request for
// a different key advances a generation token; completions carrying an older
// token are dropped without touching state. The underlying work is never
// aborted since another Request for the same key may want it later.
package loader
