package keypath

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/vq/internal/tree"
)

func mustTree(t *testing.T, src string) tree.Value {
	t.Helper()

	var v any
	if err := yaml.UnmarshalWithOptions([]byte(src), &v, yaml.UseOrderedMap()); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return tree.FromGo(v)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	doc := mustTree(t, `
user:
  name: John
  age: 30
items:
  - id: 1
  - id: 2
empty_map: {}
empty_list: []
note: done
`)

	want := []Entry{
		{Path: "user", Segments: Path{Key("user")}, Display: "user", Depth: 1, IsLeaf: false},
		{Path: "user.name", Segments: Path{Key("user"), Key("name")}, Display: "name", Depth: 2, IsLeaf: true},
		{Path: "user.age", Segments: Path{Key("user"), Key("age")}, Display: "age", Depth: 2, IsLeaf: true},
		{Path: "items", Segments: Path{Key("items")}, Display: "items", Depth: 1, IsLeaf: false},
		{Path: "items[0]", Segments: Path{Key("items"), Index(0)}, Display: "[0]", Depth: 2, IsLeaf: false},
		{Path: "items[0].id", Segments: Path{Key("items"), Index(0), Key("id")}, Display: "id", Depth: 3, IsLeaf: true},
		{Path: "items[1]", Segments: Path{Key("items"), Index(1)}, Display: "[1]", Depth: 2, IsLeaf: false},
		{Path: "items[1].id", Segments: Path{Key("items"), Index(1), Key("id")}, Display: "id", Depth: 3, IsLeaf: true},
		{Path: "empty_map", Segments: Path{Key("empty_map")}, Display: "empty_map", Depth: 1, IsLeaf: false},
		{Path: "empty_list", Segments: Path{Key("empty_list")}, Display: "empty_list", Depth: 1, IsLeaf: false},
		{Path: "note", Segments: Path{Key("note")}, Display: "note", Depth: 1, IsLeaf: true},
	}

	got := Walk(doc)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %#v, want %#v", got, want)
	}
}

func TestWalkSequenceRoot(t *testing.T) {
	t.Parallel()

	doc := mustTree(t, `
- name: a
- name: b
`)

	want := []Entry{
		{Path: "[0]", Segments: Path{Index(0)}, Display: "[0]", Depth: 1, IsLeaf: false},
		{Path: "[0].name", Segments: Path{Index(0), Key("name")}, Display: "name", Depth: 2, IsLeaf: true},
		{Path: "[1]", Segments: Path{Index(1)}, Display: "[1]", Depth: 1, IsLeaf: false},
		{Path: "[1].name", Segments: Path{Index(1), Key("name")}, Display: "name", Depth: 2, IsLeaf: true},
	}

	got := Walk(doc)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %#v, want %#v", got, want)
	}
}

func TestWalkScalarRoot(t *testing.T) {
	t.Parallel()

	doc := tree.FromGo("just a string")
	if got := Walk(doc); len(got) != 0 {
		t.Errorf("Walk(scalar) = %v, want no entries", got)
	}
}

func TestWalkResolveRoundTrip(t *testing.T) {
	t.Parallel()

	doc := mustTree(t, `
http_interactions:
  - request:
      method: GET
      uri: https://api.example.com/users
    response:
      status:
        code: 200
      body:
        string: '{"users": []}'
  - request:
      method: POST
      uri: https://api.example.com/users
    response:
      status:
        code: 201
      body:
        string: created
recorded_with: vq
`)

	for _, entry := range Walk(doc) {
		value, err := ResolveString(doc, entry.Path)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", entry.Path, err)
		}

		isLeaf := value.Kind() == tree.KindScalar
		if isLeaf != entry.IsLeaf {
			t.Errorf("entry %q: IsLeaf = %t, resolved kind = %s", entry.Path, entry.IsLeaf, value.Kind())
		}
	}
}

func TestWalkKeysWithPathSyntax(t *testing.T) {
	t.Parallel()

	doc := mustTree(t, `
"a.b": 1
"c[0]": 2
plain:
  "x.y":
    - 3
`)

	entries := Walk(doc)

	// The textual rendering of such keys is ambiguous, so the typed
	// Segments path is what must keep resolving.
	for _, entry := range entries {
		if _, err := Resolve(doc, entry.Segments); err != nil {
			t.Errorf("Resolve(%v) error: %v", entry.Segments, err)
		}
	}

	if want := (Path{Key("a.b")}); !reflect.DeepEqual(entries[0].Segments, want) {
		t.Errorf("Segments = %v, want %v", entries[0].Segments, want)
	}

	value, err := Resolve(doc, entries[0].Segments)
	if err != nil {
		t.Fatalf("Resolve(%v) error: %v", entries[0].Segments, err)
	}
	scalar, ok := value.(*tree.Scalar)
	if !ok || fmt.Sprintf("%v", scalar.Val) != "1" {
		t.Errorf("Resolve(%v) = %#v, want scalar 1", entries[0].Segments, value)
	}

	nested := Path{Key("plain"), Key("x.y"), Index(0)}
	if _, err := Resolve(doc, nested); err != nil {
		t.Errorf("Resolve(%v) error: %v", nested, err)
	}
}

func TestWalkIdempotent(t *testing.T) {
	t.Parallel()

	doc := mustTree(t, `
a:
  b: [1, 2, {c: 3}]
d: null
`)

	first := Walk(doc)
	second := Walk(doc)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Walk not deterministic: %v != %v", first, second)
	}
}
