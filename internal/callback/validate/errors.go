package validate

import (
	"errors"
	"fmt"

	"github.com/dshills/promptkit/internal/textspan"
)

// Kind distinguishes which side of the contract was breached.
type Kind int

const (
	// KindPrecondition means the host passed an impossible document
	// state (caret outside the text).
	KindPrecondition Kind = iota

	// KindPostcondition means the extension returned a result outside
	// the documented bounds.
	KindPostcondition
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindPostcondition:
		return "postcondition"
	default:
		return "unknown"
	}
}

// ViolationError reports a contract breach detected by the Guard. It is
// distinct from ordinary extension failures and from cancellation; catch
// it with errors.As during extension development.
type ViolationError struct {
	// Kind is the side of the contract that was breached.
	Kind Kind

	// Op is the contract operation being validated.
	Op string

	// Invariant is the violated condition, stated as written in the
	// contract.
	Invariant string

	// Caret and TextLen are the document state at the call.
	Caret   int
	TextLen int

	// Span is the offending result for postcondition violations.
	Span textspan.Span
}

// Error implements the error interface.
func (e *ViolationError) Error() string {
	switch e.Kind {
	case KindPostcondition:
		return fmt.Sprintf("callback contract: %s postcondition violated: %s (span %v, caret %d, text length %d)",
			e.Op, e.Invariant, e.Span, e.Caret, e.TextLen)
	default:
		return fmt.Sprintf("callback contract: %s precondition violated: %s (caret %d, text length %d)",
			e.Op, e.Invariant, e.Caret, e.TextLen)
	}
}

// AsViolation extracts a ViolationError from an error chain.
func AsViolation(err error) (*ViolationError, bool) {
	var v *ViolationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
