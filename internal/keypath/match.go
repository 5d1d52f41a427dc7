package keypath

// Match reports whether a pattern governs a concrete path. Segment counts
// must be exactly equal: a pattern never matches a longer or shorter path.
// Literal key and index segments compare exactly; a wildcard segment
// matches any index segment but never a key segment, since a key at that
// position means the tree holds a map where the pattern expects a sequence.
func Match(concrete, pattern Path) bool {
	if len(concrete) != len(pattern) {
		return false
	}

	for i, want := range pattern {
		got := concrete[i]
		switch want.Kind {
		case SegmentKey:
			if got.Kind != SegmentKey || got.Name != want.Name {
				return false
			}
		case SegmentIndex:
			if got.Kind != SegmentIndex || got.Index != want.Index {
				return false
			}
		case SegmentAnyIndex:
			if got.Kind != SegmentIndex {
				return false
			}
		}
	}

	return true
}

// MatchString parses both arguments and matches them. Leading dots are
// normalized away by the parser, so ".items[].id" and "items[].id" behave
// identically.
func MatchString(concrete, pattern string) (bool, error) {
	concretePath, err := Parse(concrete)
	if err != nil {
		return false, err
	}
	patternPath, err := ParsePattern(pattern)
	if err != nil {
		return false, err
	}
	return Match(concretePath, patternPath), nil
}
