package tree

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
)

// FromGo converts a decoded Go value into a Value. Ordered map types
// (yaml.MapSlice) keep their entry order; plain Go maps are sorted by key so
// trees built from them stay deterministic. Anything that is not a map or a
// slice becomes a Scalar.
func FromGo(v any) Value {
	switch t := v.(type) {
	case yaml.MapSlice:
		m := &Map{Entries: make([]MapEntry, 0, len(t))}
		for _, item := range t {
			m.Entries = append(m.Entries, MapEntry{
				Key:   keyString(item.Key),
				Value: FromGo(item.Value),
			})
		}
		return m
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		m := &Map{Entries: make([]MapEntry, 0, len(t))}
		for _, k := range keys {
			m.Entries = append(m.Entries, MapEntry{Key: k, Value: FromGo(t[k])})
		}
		return m
	case map[any]any:
		keys := make([]string, 0, len(t))
		byKey := make(map[string]any, len(t))
		for k, val := range t {
			s := keyString(k)
			keys = append(keys, s)
			byKey[s] = val
		}
		sort.Strings(keys)

		m := &Map{Entries: make([]MapEntry, 0, len(t))}
		for _, k := range keys {
			m.Entries = append(m.Entries, MapEntry{Key: k, Value: FromGo(byKey[k])})
		}
		return m
	case []any:
		s := &Sequence{Items: make([]Value, 0, len(t))}
		for _, item := range t {
			s.Items = append(s.Items, FromGo(item))
		}
		return s
	default:
		return &Scalar{Val: v}
	}
}

// ToGo converts a Value back into plain Go data. Maps become yaml.MapSlice
// so entry order survives re-encoding.
func ToGo(v Value) any {
	switch t := v.(type) {
	case *Map:
		out := make(yaml.MapSlice, 0, len(t.Entries))
		for _, e := range t.Entries {
			out = append(out, yaml.MapItem{Key: e.Key, Value: ToGo(e.Value)})
		}
		return out
	case *Sequence:
		out := make([]any, 0, len(t.Items))
		for _, item := range t.Items {
			out = append(out, ToGo(item))
		}
		return out
	case *Scalar:
		return t.Val
	default:
		return nil
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", k)
}
