// Package engine hosts compiled regex engine builds on a shared wazero runtime.
//
// Each build is a WebAssembly module exporting linear memory, an allocator and
// a set of operations. Operations follow a pointer/length calling convention:
//
//	alloc(len i32) -> ptr i32
//	dealloc(ptr i32, len i32)            (optional)
//	<op>(ptr i32, len i32) -> i64        (ptr<<32 | len of the JSON result)
//
// A result whose first byte is '!' carries an error message instead of JSON.
// The engine never interprets results; callers decode them.
package engine
