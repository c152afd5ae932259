package textspan

import "fmt"

// Span is a half-open range [Start, Start+Length) over the prompt text.
type Span struct {
	// Start is the inclusive start offset.
	Start int

	// Length is the number of bytes covered.
	Length int
}

// New creates a span from a start offset and length.
// Negative values are a caller bug; they are preserved so validation
// layers can report them rather than silently repaired.
func New(start, length int) Span {
	return Span{Start: start, Length: length}
}

// FromBounds creates a span covering [start, end).
func FromBounds(start, end int) Span {
	return Span{Start: start, Length: end - start}
}

// Empty returns a zero-length span at the given offset.
func Empty(offset int) Span {
	return Span{Start: offset}
}

// End returns the exclusive end offset.
func (s Span) End() int {
	return s.Start + s.Length
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// IsValid returns true if the span has a non-negative start and length.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.Length >= 0
}

// Contains returns true if other lies fully inside s.
// A span contains itself; every span contains the empty span at any
// offset within [Start, End].
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End() <= s.End()
}

// ContainsOffset returns true if the zero-length span at offset lies
// inside s. Equivalent to s.Contains(Empty(offset)).
func (s Span) ContainsOffset(offset int) bool {
	return offset >= s.Start && offset <= s.End()
}

// Intersects returns true if s and other share at least one offset.
func (s Span) Intersects(other Span) bool {
	return s.Start <= other.End() && other.Start <= s.End()
}

// String returns the span in [start, end) notation.
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End())
}
