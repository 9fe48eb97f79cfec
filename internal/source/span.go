package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) into a source buffer.
type Span struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// NewSpan builds a span from byte offsets.
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Text returns the slice of src the span points at.
// The result aliases src, no copy is made.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}
