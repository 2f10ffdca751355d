package data

import (
	"fmt"
	"strings"
)

// Segment is one element of a resource path. It is implemented only by
// Text and Symbol.
type Segment interface {
	segment() string
}

// Symbol is the canonical symbolic identifier used for mapping keys and
// path segments.
type Symbol string

// Text is a plain textual path segment.
type Text string

func (s Symbol) segment() string { return string(s) }

func (t Text) segment() string { return string(t) }

// String returns the symbol's name.
func (s Symbol) String() string { return string(s) }

// String returns the text verbatim.
func (t Text) String() string { return string(t) }

// SegmentString renders a segment in its path form.
func SegmentString(s Segment) string {
	if s == nil {
		return ""
	}
	return s.segment()
}

// Segments converts loosely typed values into path segments. Strings
// become Text, Symbols and Texts pass through unchanged, and anything else
// is rendered with fmt.Sprint.
func Segments(values ...any) []Segment {
	segs := make([]Segment, 0, len(values))
	for _, v := range values {
		segs = append(segs, ToSegment(v))
	}
	return segs
}

// ToSegment converts a single value into a Segment.
func ToSegment(v any) Segment {
	switch val := v.(type) {
	case Segment:
		return val
	case string:
		return Text(val)
	case fmt.Stringer:
		return Text(val.String())
	default:
		return Text(fmt.Sprint(val))
	}
}

// ToSymbol canonicalizes a mapping key. String keys lose a single leading
// colon; other scalar keys are rendered with fmt.Sprint.
func ToSymbol(key any) Symbol {
	switch k := key.(type) {
	case Symbol:
		return k
	case string:
		return Symbol(strings.TrimPrefix(k, ":"))
	case nil:
		return Symbol("")
	default:
		return Symbol(fmt.Sprint(k))
	}
}
