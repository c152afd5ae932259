// Package validate enforces the callback contract's pre- and
// postconditions around every operation.
//
// The Guard wrapper is stateless: it checks the caret precondition
// before delegating and, for CompletionSpan, the document-bounds
// postcondition on the way back. A breach is a programming error in the
// host (precondition) or the extension (postcondition) and is reported
// as a *ViolationError naming the invariant and the offending values —
// never clamped, never swallowed. Extension errors and cancellation pass
// through untouched.
package validate
