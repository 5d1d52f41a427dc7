package keypath

import (
	"fmt"

	"github.com/jacoelho/vq/internal/tree"
)

// Resolve walks a concrete path from the tree root and returns the value it
// addresses. The first failing segment aborts with a typed error; an empty
// path returns the root unchanged.
func Resolve(root tree.Value, path Path) (tree.Value, error) {
	current := root

	for _, seg := range path {
		switch seg.Kind {
		case SegmentKey:
			m, ok := current.(*tree.Map)
			if !ok {
				return nil, fmt.Errorf("%w: expected map for key %q, found %s", ErrTypeMismatch, seg.Name, current.Kind())
			}
			value, ok := m.Get(seg.Name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, seg.Name)
			}
			current = value

		case SegmentIndex:
			s, ok := current.(*tree.Sequence)
			if !ok {
				return nil, fmt.Errorf("%w: expected sequence for index %d, found %s", ErrTypeMismatch, seg.Index, current.Kind())
			}
			if seg.Index < 0 || seg.Index >= len(s.Items) {
				return nil, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, seg.Index, len(s.Items))
			}
			current = s.Items[seg.Index]

		case SegmentAnyIndex:
			return nil, fmt.Errorf("%w: wildcard is not addressable, use Extract", ErrInvalidIndex)
		}
	}

	return current, nil
}

// ResolveString parses text as a concrete path and resolves it.
func ResolveString(root tree.Value, text string) (tree.Value, error) {
	path, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Resolve(root, path)
}
