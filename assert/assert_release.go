// +build !debug

// Package assert is a helper to allow assert tests in a more standardized
// and simple manner. Using it makes it clear this is an assertion used in
// a non-production setting.
package assert

// DEBUG if set to true asserts are evaluated. In release builds it stays
// false and the Go compiler eliminates the call site entirely, so the hot
// move-generation path pays nothing for the invariant documentation.
const DEBUG = false

// Assert panics with the formatted message if test evaluates to false.
// Go still evaluates the call's arguments even when DEBUG is false, so
// callers on a hot path should additionally guard with "if assert.DEBUG {}"
// to avoid spending cycles formatting a message that will never be used.
//
// Example:
//  if assert.DEBUG {
//      assert.Assert(sq.IsValid(), "invalid square %d", sq)
//  }
func Assert(test bool, msg string, a ...interface{}) {}
