package tree

// Kind identifies which of the three value shapes a node has.
type Kind uint8

const (
	KindScalar Kind = iota
	KindMap
	KindSequence
)

// String returns a human-readable kind name for error messages.
func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// Value is a single node of a parsed document: a Map, a Sequence, or a
// Scalar. Trees are read-only for consumers; nothing in this module mutates
// a tree after construction.
type Value interface {
	Kind() Kind
}

// Scalar is a leaf value (string, number, boolean, or null).
type Scalar struct {
	Val any
}

// Kind implements Value.
func (*Scalar) Kind() Kind { return KindScalar }

// IsNull reports whether the scalar holds a null value.
func (s *Scalar) IsNull() bool { return s.Val == nil }

// MapEntry is a single key/value member of a Map.
type MapEntry struct {
	Key   string
	Value Value
}

// Map is an ordered string-keyed mapping. Entry order is the insertion
// order of the source document.
type Map struct {
	Entries []MapEntry
}

// Kind implements Value.
func (*Map) Kind() Kind { return KindMap }

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.Entries) }

// Get returns the value for an exact key match.
func (m *Map) Get(key string) (Value, bool) {
	for _, e := range m.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Sequence is an ordered list of values.
type Sequence struct {
	Items []Value
}

// Kind implements Value.
func (*Sequence) Kind() Kind { return KindSequence }

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.Items) }

// Equal reports structural equality of two trees. Scalars compare by
// interface equality, containers by ordered member-wise comparison.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case *Scalar:
		return av.Val == b.(*Scalar).Val
	case *Map:
		bv := b.(*Map)
		if len(av.Entries) != len(bv.Entries) {
			return false
		}
		for i, e := range av.Entries {
			if e.Key != bv.Entries[i].Key || !Equal(e.Value, bv.Entries[i].Value) {
				return false
			}
		}
		return true
	case *Sequence:
		bv := b.(*Sequence)
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i, item := range av.Items {
			if !Equal(item, bv.Items[i]) {
				return false
			}
		}
		return true
	}

	return false
}
