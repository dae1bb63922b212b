package valis

import (
	"strconv"
	"strings"
)

// Segment is one step of a field path: either an object key or an array
// index. Segments are immutable values.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Field returns a key segment.
func Field(name string) Segment { return Segment{key: name} }

// Index returns an array-index segment.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

// IsIndex reports whether the segment addresses an array element.
func (s Segment) IsIndex() bool { return s.isIndex }

// Key returns the object key; empty for index segments.
func (s Segment) Key() string { return s.key }

// Index returns the array index; zero for key segments.
func (s Segment) Index() int { return s.index }

// String renders the segment without escaping (indices in decimal).
func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Path locates an issue within nested input, ordered root to leaf.
// The empty path addresses the validation root.
type Path []Segment

// Prepend returns a new path with seg in front; the receiver is unchanged.
func (p Path) Prepend(seg Segment) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, seg)
	return append(out, p...)
}

// Pointer renders the path as a JSON Pointer. Key segments are escaped per
// RFC 6901 ('~' -> '~0', '/' -> '~1'); the empty path renders as "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.isIndex {
			b.WriteString(strconv.Itoa(s.index))
			continue
		}
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.key, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

func (p Path) String() string { return p.Pointer() }
