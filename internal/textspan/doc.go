// Package textspan provides the half-open text range type shared by the
// callback contract and the prompt session.
//
// A Span is a value type: once constructed it is never mutated. Offsets are
// byte offsets into the prompt text.
package textspan
