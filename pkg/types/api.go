package types

import "encoding/json"

// VersionsResponse wraps the list of versions returned by GET /versions.
type VersionsResponse struct {
	// Known engine versions, newest first.
	Versions []Version `json:"versions"`
	// Version selected when a request omits one.
	// example: 1.10
	Default string `json:"default" example:"1.10"`
}

// SwitchRequest is the body of PUT /version.
type SwitchRequest struct {
	// Version key to load.
	// example: 1.10
	Version string `json:"version" example:"1.10"`
}

// LoadState mirrors the loader state for the currently requested version.
type LoadState struct {
	// Currently requested version key.
	// example: 1.10
	Version string `json:"version" example:"1.10"`
	// True while the requested version is initializing.
	// example: false
	Loading bool `json:"loading" example:"false"`
	// True once the requested version is ready for use.
	// example: true
	Loaded bool `json:"loaded" example:"true"`
	// Initialization failure for the requested version, if any.
	Error string `json:"error,omitempty"`
}

// ExecRequest is the body of POST /exec.
type ExecRequest struct {
	// Optional version key. If empty, the currently requested version is used.
	// example: 1.10
	Version string `json:"version,omitempty" example:"1.10"`
	// Operation: find or replace.
	// example: find
	Method string `json:"method,omitempty" example:"find"`
	// Regular expression source.
	// example: (?P<y>\d{4})-(?P<m>\d{2})
	Regex string `json:"regex" example:"(?P<y>\\d{4})-(?P<m>\\d{2})"`
	// Replacement template (replace method only).
	// example: $m/$y
	Replace string `json:"replace,omitempty" example:"$m/$y"`
	// Haystack text.
	// example: 2024-05
	Text string `json:"text" example:"2024-05"`
}

// ExecResponse is returned by POST /exec.
type ExecResponse struct {
	// Version that served the request.
	// example: 1.10
	Version string `json:"version" example:"1.10"`
	// Method that was executed.
	// example: find
	Method string `json:"method" example:"find"`
	// Matches found in text.
	Matches []Match `json:"matches,omitempty"`
	// Text split into alternating non-match / match segments.
	Segments []string `json:"segments,omitempty"`
	// Parsed syntax tree, as produced by the engine.
	Syntax json.RawMessage `json:"syntax,omitempty" swaggertype:"object"`
	// Replacement shortcuts ($name, $0..$n).
	Shortcuts []string `json:"shortcuts,omitempty"`
	// Replace output (replace method only).
	Result *string `json:"result,omitempty"`
	// Engine error for this input (invalid regex, bad template).
	Error string `json:"error,omitempty"`
	// Canonical share query for this input.
	// example: version=1.10&method=find&regex=a
	Query string `json:"query" example:"version=1.10&method=find&regex=a"`
	// Documentation links for the engine and the underlying crates.
	Docs DocLinks `json:"docs"`
}

// DocLinks points at reference documentation for a version. Crate links are
// pinned to the versions the engine build reports, else latest.
type DocLinks struct {
	// example: https://tsdocs.dev/docs/rregex/1.10
	RRegex string `json:"rregex" example:"https://tsdocs.dev/docs/rregex/1.10"`
	// example: https://docs.rs/regex/1.10.2/regex/
	Regex string `json:"regex" example:"https://docs.rs/regex/1.10.2/regex/"`
	// example: https://docs.rs/regex-syntax/0.8.2/regex_syntax/
	RegexSyntax string `json:"regex_syntax" example:"https://docs.rs/regex-syntax/0.8.2/regex_syntax/"`
}

// EngineMetadata is what an engine build reports about itself. Builds that
// predate the metadata operation report nothing.
type EngineMetadata struct {
	// example: rregex
	Name string `json:"name,omitempty" example:"rregex"`
	// example: 1.10.0
	Version string `json:"version,omitempty" example:"1.10.0"`
	// Version of the regex crate the build links.
	// example: 1.10.2
	Regex string `json:"regex,omitempty" example:"1.10.2"`
	// Version of the regex-syntax crate the build links.
	// example: 0.8.2
	RegexSyntax string `json:"regex-syntax,omitempty" example:"0.8.2"`
	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
	Repository  string `json:"repository,omitempty"`
}

// ShareResponse is returned by GET /share.
type ShareResponse struct {
	// Canonical query string.
	// example: version=1.10&method=find&regex=a
	Query string `json:"query" example:"version=1.10&method=find&regex=a"`
	// Normalized version key.
	// example: 1.10
	Version string `json:"version" example:"1.10"`
	// Normalized method.
	// example: find
	Method string `json:"method" example:"find"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// VersionStatus summarizes one memo table entry for /status.
type VersionStatus struct {
	// Version key.
	// example: 1.10
	Version string `json:"version" example:"1.10"`
	// Memo entry state: loading, ready or failed.
	// example: ready
	State string `json:"state" example:"ready"`
	// Number of times the engine initializer ran for this key (always 0 or 1).
	// example: 1
	Loads int `json:"loads" example:"1"`
	// Failure reason when State is failed.
	Error string `json:"error,omitempty"`
	// Wasm exports of the loaded module.
	Exports []string `json:"exports,omitempty"`
	// Metadata reported by the loaded module.
	Metadata *EngineMetadata `json:"metadata,omitempty"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Current loader state.
	Current LoadState `json:"current"`
	// Every version that has been requested since start.
	Versions []VersionStatus `json:"versions"`
	// Known versions count.
	// example: 6
	Known int `json:"known" example:"6"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
	// Completions dropped because a newer request superseded them.
	// example: 2
	StaleCompletions uint64 `json:"stale_completions" example:"2"`
}
