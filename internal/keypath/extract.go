package keypath

import "github.com/jacoelho/vq/internal/tree"

// Extract returns every value the pattern designates, in document order.
// Wildcard segments fan out over the sequence they target, outer iteration
// before inner, and a branch that cannot continue (missing key, index out
// of range, wrong container kind) contributes nothing instead of failing:
// one malformed record must not blank the values of its siblings. A pattern
// that resolves nowhere yields an empty result, never an error.
func Extract(root tree.Value, pattern Path) []tree.Value {
	var out []tree.Value
	extract(root, pattern, &out)
	return out
}

// ExtractFirst returns the first extracted value, if any.
func ExtractFirst(root tree.Value, pattern Path) (tree.Value, bool) {
	values := Extract(root, pattern)
	if len(values) == 0 {
		return nil, false
	}
	return values[0], true
}

func extract(current tree.Value, remaining Path, out *[]tree.Value) {
	if len(remaining) == 0 {
		*out = append(*out, current)
		return
	}

	seg := remaining[0]
	rest := remaining[1:]

	switch seg.Kind {
	case SegmentKey:
		m, ok := current.(*tree.Map)
		if !ok {
			return
		}
		value, ok := m.Get(seg.Name)
		if !ok {
			return
		}
		extract(value, rest, out)

	case SegmentIndex:
		s, ok := current.(*tree.Sequence)
		if !ok {
			return
		}
		if seg.Index < 0 || seg.Index >= len(s.Items) {
			return
		}
		extract(s.Items[seg.Index], rest, out)

	case SegmentAnyIndex:
		s, ok := current.(*tree.Sequence)
		if !ok {
			return
		}
		for _, item := range s.Items {
			extract(item, rest, out)
		}
	}
}
