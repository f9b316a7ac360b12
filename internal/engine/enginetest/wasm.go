// Package enginetest provides tiny hand-assembled wasm modules that follow
// the engine ABI, for tests that need a real wazero instance.
package enginetest

// Minimal is the smallest valid module: no imports, no exports.
var Minimal = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

// Invalid fails compilation (bad magic number).
var Invalid = []byte("not wasm")

// Echo exports memory, alloc (always 1024) and echo, which returns its input
// unchanged. Inputs beginning with '!' therefore come back as guest errors.
var Echo = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0x01, 0x0c, 0x02, 0x60,
	0x01, 0x7f, 0x01, 0x7f, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7e, 0x03, 0x03,
	0x02, 0x00, 0x01, 0x05, 0x03, 0x01, 0x00, 0x01, 0x07, 0x19, 0x03, 0x06,
	0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00, 0x05, 0x61, 0x6c, 0x6c,
	0x6f, 0x63, 0x00, 0x00, 0x04, 0x65, 0x63, 0x68, 0x6f, 0x00, 0x01, 0x0a,
	0x14, 0x02, 0x05, 0x00, 0x41, 0x80, 0x08, 0x0b, 0x0c, 0x00, 0x20, 0x00,
	0xad, 0x42, 0x20, 0x86, 0x20, 0x01, 0xad, 0x84, 0x0b,
}

// Stub exports memory, alloc, the four playground operations and metadata.
// Each playground operation returns a fixed result, or the StubParseError
// guest error when its input is no longer than {"regex":""}. metadata always
// returns StubMetadata.
var Stub = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0x01, 0x0c, 0x02, 0x60,
	0x01, 0x7f, 0x01, 0x7f, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7e, 0x03, 0x07,
	0x06, 0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x05, 0x03, 0x01, 0x00, 0x01,
	0x07, 0x4f, 0x07, 0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
	0x05, 0x61, 0x6c, 0x6c, 0x6f, 0x63, 0x00, 0x00, 0x06, 0x73, 0x79, 0x6e,
	0x74, 0x61, 0x78, 0x00, 0x01, 0x08, 0x66, 0x69, 0x6e, 0x64, 0x5f, 0x61,
	0x6c, 0x6c, 0x00, 0x02, 0x0b, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x63, 0x65,
	0x5f, 0x61, 0x6c, 0x6c, 0x00, 0x03, 0x0d, 0x63, 0x61, 0x70, 0x74, 0x75,
	0x72, 0x65, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x73, 0x00, 0x04, 0x08, 0x6d,
	0x65, 0x74, 0x61, 0x64, 0x61, 0x74, 0x61, 0x00, 0x05, 0x0a, 0x75, 0x06,
	0x05, 0x00, 0x41, 0x80, 0x08, 0x0b, 0x15, 0x00, 0x20, 0x01, 0x41, 0x0c,
	0x4d, 0x04, 0x7e, 0x42, 0xa1, 0x80, 0x80, 0x80, 0xf0, 0x14, 0x05, 0x42,
	0xce, 0x00, 0x0b, 0x0b, 0x19, 0x00, 0x20, 0x01, 0x41, 0x0c, 0x4d, 0x04,
	0x7e, 0x42, 0xa1, 0x80, 0x80, 0x80, 0xf0, 0x14, 0x05, 0x42, 0xc7, 0x80,
	0x80, 0x80, 0xe0, 0x09, 0x0b, 0x0b, 0x19, 0x00, 0x20, 0x01, 0x41, 0x0c,
	0x4d, 0x04, 0x7e, 0x42, 0xa1, 0x80, 0x80, 0x80, 0xf0, 0x14, 0x05, 0x42,
	0x85, 0x80, 0x80, 0x80, 0xd0, 0x12, 0x0b, 0x0b, 0x19, 0x00, 0x20, 0x01,
	0x41, 0x0c, 0x4d, 0x04, 0x7e, 0x42, 0xa1, 0x80, 0x80, 0x80, 0xf0, 0x14,
	0x05, 0x42, 0x8d, 0x80, 0x80, 0x80, 0xa0, 0x13, 0x0b, 0x0b, 0x09, 0x00,
	0x42, 0xcc, 0x80, 0x80, 0x80, 0x80, 0x19, 0x0b, 0x0b, 0x9b, 0x02, 0x01,
	0x00, 0x41, 0x00, 0x0b, 0x94, 0x02, 0x7b, 0x22, 0x6b, 0x69, 0x6e, 0x64,
	0x22, 0x3a, 0x22, 0x63, 0x6f, 0x6e, 0x63, 0x61, 0x74, 0x22, 0x2c, 0x22,
	0x73, 0x75, 0x62, 0x73, 0x22, 0x3a, 0x5b, 0x7b, 0x22, 0x6b, 0x69, 0x6e,
	0x64, 0x22, 0x3a, 0x22, 0x6c, 0x69, 0x74, 0x65, 0x72, 0x61, 0x6c, 0x22,
	0x7d, 0x2c, 0x7b, 0x22, 0x6b, 0x69, 0x6e, 0x64, 0x22, 0x3a, 0x22, 0x63,
	0x61, 0x70, 0x74, 0x75, 0x72, 0x65, 0x22, 0x2c, 0x22, 0x6e, 0x61, 0x6d,
	0x65, 0x22, 0x3a, 0x22, 0x77, 0x6f, 0x72, 0x64, 0x22, 0x7d, 0x5d, 0x7d,
	0x5b, 0x7b, 0x22, 0x73, 0x74, 0x61, 0x72, 0x74, 0x22, 0x3a, 0x30, 0x2c,
	0x22, 0x65, 0x6e, 0x64, 0x22, 0x3a, 0x33, 0x2c, 0x22, 0x61, 0x73, 0x5f,
	0x73, 0x74, 0x72, 0x22, 0x3a, 0x22, 0x61, 0x62, 0x63, 0x22, 0x7d, 0x2c,
	0x7b, 0x22, 0x73, 0x74, 0x61, 0x72, 0x74, 0x22, 0x3a, 0x34, 0x2c, 0x22,
	0x65, 0x6e, 0x64, 0x22, 0x3a, 0x37, 0x2c, 0x22, 0x61, 0x73, 0x5f, 0x73,
	0x74, 0x72, 0x22, 0x3a, 0x22, 0x61, 0x62, 0x63, 0x22, 0x7d, 0x5d, 0x22,
	0x58, 0x20, 0x58, 0x22, 0x5b, 0x6e, 0x75, 0x6c, 0x6c, 0x2c, 0x22, 0x77,
	0x6f, 0x72, 0x64, 0x22, 0x5d, 0x21, 0x72, 0x65, 0x67, 0x65, 0x78, 0x20,
	0x70, 0x61, 0x72, 0x73, 0x65, 0x20, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x3a,
	0x20, 0x65, 0x6d, 0x70, 0x74, 0x79, 0x20, 0x70, 0x61, 0x74, 0x74, 0x65,
	0x72, 0x6e, 0x7b, 0x22, 0x6e, 0x61, 0x6d, 0x65, 0x22, 0x3a, 0x22, 0x72,
	0x72, 0x65, 0x67, 0x65, 0x78, 0x22, 0x2c, 0x22, 0x76, 0x65, 0x72, 0x73,
	0x69, 0x6f, 0x6e, 0x22, 0x3a, 0x22, 0x31, 0x2e, 0x31, 0x30, 0x2e, 0x30,
	0x22, 0x2c, 0x22, 0x72, 0x65, 0x67, 0x65, 0x78, 0x22, 0x3a, 0x22, 0x31,
	0x2e, 0x31, 0x30, 0x2e, 0x32, 0x22, 0x2c, 0x22, 0x72, 0x65, 0x67, 0x65,
	0x78, 0x2d, 0x73, 0x79, 0x6e, 0x74, 0x61, 0x78, 0x22, 0x3a, 0x22, 0x30,
	0x2e, 0x38, 0x2e, 0x32, 0x22, 0x7d,
}

// Fixed results of the Stub operations.
const (
	StubSyntax       = `{"kind":"concat","subs":[{"kind":"literal"},{"kind":"capture","name":"word"}]}`
	StubFindAll      = `[{"start":0,"end":3,"as_str":"abc"},{"start":4,"end":7,"as_str":"abc"}]`
	StubReplaceAll   = `"X X"`
	StubCaptureNames = `[null,"word"]`
	StubParseError   = "regex parse error: empty pattern"
	StubMetadata     = `{"name":"rregex","version":"1.10.0","regex":"1.10.2","regex-syntax":"0.8.2"}`
)
