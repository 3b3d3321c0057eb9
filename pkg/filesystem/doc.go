// Package filesystem provides filesystem implementations for dotstow.
//
// This package contains implementations of the types.FS interface.
// All filesystem mutation in the codebase goes through types.FS so that
// commands can run against an injected filesystem in tests.
package filesystem
