package keypath

import (
	"strconv"
	"strings"
)

// SegmentKind discriminates the segment variants.
type SegmentKind uint8

const (
	// SegmentKey addresses a map member by name.
	SegmentKey SegmentKind = iota
	// SegmentIndex addresses a sequence element by position.
	SegmentIndex
	// SegmentAnyIndex is the pattern wildcard matching every element of a
	// sequence. It never appears in a concrete path.
	SegmentAnyIndex
)

// Segment is one step of a path: a map key, a sequence index, or the
// wildcard index marker.
type Segment struct {
	Kind  SegmentKind
	Name  string // SegmentKey only
	Index int    // SegmentIndex only
}

// Key returns a map-key segment.
func Key(name string) Segment {
	return Segment{Kind: SegmentKey, Name: name}
}

// Index returns a sequence-index segment.
func Index(n int) Segment {
	return Segment{Kind: SegmentIndex, Index: n}
}

// AnyIndex returns the wildcard index segment.
func AnyIndex() Segment {
	return Segment{Kind: SegmentAnyIndex}
}

// String renders a single segment in textual form.
func (s Segment) String() string {
	switch s.Kind {
	case SegmentIndex:
		return "[" + strconv.Itoa(s.Index) + "]"
	case SegmentAnyIndex:
		return "[]"
	default:
		return s.Name
	}
}

// Path is an ordered sequence of segments. An empty path denotes the
// document root.
type Path []Segment

// String renders the path in its canonical textual form, without a leading
// dot. Parse(p.String()) yields a path equal to p as long as no key segment
// contains '.', '[' or ']'; such keys render ambiguously, and consumers
// holding a typed path should pass it around instead of its rendering.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if seg.Kind == SegmentKey && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// IsPattern reports whether the path contains at least one wildcard segment.
func (p Path) IsPattern() bool {
	for _, seg := range p {
		if seg.Kind == SegmentAnyIndex {
			return true
		}
	}
	return false
}

// IsRoot reports whether the path addresses the document root.
func (p Path) IsRoot() bool { return len(p) == 0 }
