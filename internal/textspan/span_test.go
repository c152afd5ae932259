package textspan

import "testing"

func TestFromBounds(t *testing.T) {
	tests := []struct {
		start, end int
		want       Span
	}{
		{0, 0, Span{Start: 0, Length: 0}},
		{0, 5, Span{Start: 0, Length: 5}},
		{3, 8, Span{Start: 3, Length: 5}},
		{7, 7, Span{Start: 7, Length: 0}},
	}

	for _, tt := range tests {
		got := FromBounds(tt.start, tt.end)
		if got != tt.want {
			t.Errorf("FromBounds(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
		if got.End() != tt.end {
			t.Errorf("FromBounds(%d, %d).End() = %d, want %d", tt.start, tt.end, got.End(), tt.end)
		}
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		outer Span
		inner Span
		want  bool
	}{
		{"self", New(2, 5), New(2, 5), true},
		{"strict inside", New(0, 10), New(3, 4), true},
		{"empty at start", New(2, 5), Empty(2), true},
		{"empty at end", New(2, 5), Empty(7), true},
		{"starts before", New(2, 5), New(1, 3), false},
		{"ends after", New(2, 5), New(4, 4), false},
		{"disjoint", New(2, 5), New(10, 2), false},
		{"empty outside", New(2, 5), Empty(8), false},
	}

	for _, tt := range tests {
		if got := tt.outer.Contains(tt.inner); got != tt.want {
			t.Errorf("%s: %v.Contains(%v) = %v, want %v", tt.name, tt.outer, tt.inner, got, tt.want)
		}
	}
}

func TestContainsOffset(t *testing.T) {
	s := New(3, 4) // [3, 7)

	tests := []struct {
		offset int
		want   bool
	}{
		{2, false},
		{3, true},
		{5, true},
		{7, true}, // end offset counts as contained for a point
		{8, false},
	}

	for _, tt := range tests {
		if got := s.ContainsOffset(tt.offset); got != tt.want {
			t.Errorf("%v.ContainsOffset(%d) = %v, want %v", s, tt.offset, got, tt.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		span Span
		want bool
	}{
		{New(0, 0), true},
		{New(5, 3), true},
		{New(-1, 3), false},
		{New(2, -1), false},
	}

	for _, tt := range tests {
		if got := tt.span.IsValid(); got != tt.want {
			t.Errorf("%v.IsValid() = %v, want %v", tt.span, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := New(3, 4).String(); got != "[3, 7)" {
		t.Errorf("String() = %q, want %q", got, "[3, 7)")
	}
}
