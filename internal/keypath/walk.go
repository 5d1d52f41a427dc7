package keypath

import "github.com/jacoelho/vq/internal/tree"

// Entry is one navigable row produced by Walk: the path of a single
// addressable location plus display metadata. Segments is the authoritative
// form: Path is its rendering, and for map keys containing path syntax
// ('.', '[' or ']') the rendering is ambiguous and does not re-parse to the
// same segments. In-process consumers resolve through Segments and use Path
// for display only.
type Entry struct {
	Path     string // textual concrete path, for display
	Segments Path   // typed concrete path, always resolvable
	Display  string // last segment only, for indented tree rendering
	Depth    int    // segment count
	IsLeaf   bool   // true for scalars, false for containers (even empty ones)
}

// Walk enumerates every addressable location in the tree in pre-order:
// a container's own entry appears before its children, map members in
// insertion order, sequence elements in index order. The root itself is not
// enumerated. Output depends only on the tree, so repeated calls on an
// unmodified tree are identical, and every emitted Segments path resolves
// via Resolve to the value it was derived from.
func Walk(root tree.Value) []Entry {
	var entries []Entry
	walk(root, nil, &entries)
	return entries
}

func walk(v tree.Value, prefix Path, out *[]Entry) {
	switch t := v.(type) {
	case *tree.Map:
		for _, e := range t.Entries {
			emit(e.Value, append(prefix, Key(e.Key)), out)
		}
	case *tree.Sequence:
		for i, item := range t.Items {
			emit(item, append(prefix, Index(i)), out)
		}
	}
}

func emit(v tree.Value, path Path, out *[]Entry) {
	// path shares its backing array with sibling branches; entries keep
	// their own copy.
	segments := append(Path(nil), path...)

	*out = append(*out, Entry{
		Path:     segments.String(),
		Segments: segments,
		Display:  segments[len(segments)-1].String(),
		Depth:    len(segments),
		IsLeaf:   v.Kind() == tree.KindScalar,
	})
	walk(v, path, out)
}
