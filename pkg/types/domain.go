package types

// Version identifies one build of the regex engine on disk.
type Version struct {
	// Opaque version key.
	// example: 1.10
	Key string `json:"key" example:"1.10"`
	// Absolute path to the compiled wasm artifact.
	// example: /home/user/rregex/rregex-1.10.wasm
	Path string `json:"path" example:"/home/user/rregex/rregex-1.10.wasm"`
	// Artifact size in bytes.
	// example: 1048576
	SizeBytes int64 `json:"size_bytes,omitempty" example:"1048576"`
}

// Match is a single match as reported by the engine. Offsets are byte offsets
// into the UTF-8 encoded input.
type Match struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"as_str"`
}
