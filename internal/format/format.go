// Package format renders extracted values for display. It is a closed
// dispatch over formatter names; the addressing engine never depends on
// formatter identity.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/jacoelho/vq/internal/tree"
)

// Formatter names accepted in extraction rules.
const (
	NameAuto = "auto"
	NameJSON = "json"
	NameYAML = "yaml"
	NameText = "text"
	NameHTML = "html"
	NameTOML = "toml"
)

// ErrUnknownFormatter indicates a formatter name outside the closed set.
var ErrUnknownFormatter = errors.New("format: unknown formatter")

// Format renders a value with the named formatter. An empty name means
// auto-detection.
func Format(v tree.Value, name string) (string, error) {
	switch name {
	case NameAuto, "":
		return Auto(v), nil
	case NameJSON:
		return JSON(v), nil
	case NameYAML:
		return YAML(v), nil
	case NameText:
		return Text(v), nil
	case NameHTML:
		return HTML(v), nil
	case NameTOML:
		return TOML(v), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormatter, name)
	}
}

// Known reports whether name is a recognized formatter.
func Known(name string) bool {
	switch name {
	case NameAuto, "", NameJSON, NameYAML, NameText, NameHTML, NameTOML:
		return true
	default:
		return false
	}
}

// JSON pretty-prints the value. A scalar string holding JSON is re-indented;
// a string that is not JSON passes through untouched.
func JSON(v tree.Value) string {
	if s, ok := stringScalar(v); ok {
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			return s
		}
		return mustJSONIndent(parsed)
	}
	return mustJSONIndent(jsonValue(v))
}

// YAML renders the value as a YAML document, preserving map entry order.
// A scalar string holding YAML is re-parsed first so nested documents come
// out properly indented.
func YAML(v tree.Value) string {
	if s, ok := stringScalar(v); ok {
		var parsed any
		if err := yaml.UnmarshalWithOptions([]byte(s), &parsed, yaml.UseOrderedMap()); err != nil || parsed == nil {
			return s
		}
		return marshalYAML(parsed)
	}
	return marshalYAML(tree.ToGo(v))
}

// Text renders the value as plain text, decoding backslash escape
// sequences recorded in the source document.
func Text(v tree.Value) string {
	return decodeEscapes(stringify(v))
}

// HTML unescapes HTML entities in the value.
func HTML(v tree.Value) string {
	return html.UnescapeString(stringify(v))
}

// TOML renders a container as a TOML document. Scalar strings pass through
// unchanged; scalars that TOML cannot represent at top level fall back to
// their text form.
func TOML(v tree.Value) string {
	if s, ok := stringScalar(v); ok {
		return s
	}
	if v.Kind() != tree.KindMap {
		return stringify(v)
	}

	out, err := toml.Marshal(tomlValue(v))
	if err != nil {
		return stringify(v)
	}
	return string(out)
}

// Auto sniffs the content and picks a formatter: JSON first (the common
// case for recorded API bodies), then HTML by prefix, then YAML, then text.
func Auto(v tree.Value) string {
	s, ok := stringScalar(v)
	if !ok {
		return YAML(v)
	}

	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err == nil {
		if _, isScalar := parsed.(string); !isScalar {
			return mustJSONIndent(parsed)
		}
	}

	trimmed := strings.TrimSpace(s)
	for _, prefix := range []string{"<html", "<!DOCTYPE", "<HTML"} {
		if strings.HasPrefix(trimmed, prefix) {
			return HTML(v)
		}
	}

	var y any
	if err := yaml.UnmarshalWithOptions([]byte(s), &y, yaml.UseOrderedMap()); err == nil {
		if _, isScalar := y.(string); y != nil && !isScalar {
			return marshalYAML(y)
		}
	}

	return Text(v)
}

// Plain renders a value without any escape processing: scalars as their
// literal text, containers as YAML.
func Plain(v tree.Value) string {
	return stringify(v)
}

func stringScalar(v tree.Value) (string, bool) {
	s, ok := v.(*tree.Scalar)
	if !ok {
		return "", false
	}
	str, ok := s.Val.(string)
	return str, ok
}

func stringify(v tree.Value) string {
	switch t := v.(type) {
	case *tree.Scalar:
		if t.Val == nil {
			return ""
		}
		return fmt.Sprintf("%v", t.Val)
	default:
		return marshalYAML(tree.ToGo(v))
	}
}

func marshalYAML(v any) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}

func mustJSONIndent(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}

// jsonValue converts a tree into encoding/json-friendly data. JSON objects
// are unordered, so map entry order is not carried over.
func jsonValue(v tree.Value) any {
	switch t := v.(type) {
	case *tree.Map:
		out := make(map[string]any, len(t.Entries))
		for _, e := range t.Entries {
			out[e.Key] = jsonValue(e.Value)
		}
		return out
	case *tree.Sequence:
		out := make([]any, 0, len(t.Items))
		for _, item := range t.Items {
			out = append(out, jsonValue(item))
		}
		return out
	case *tree.Scalar:
		return t.Val
	default:
		return nil
	}
}

// tomlValue converts a tree into data go-toml can marshal. TOML has no
// null, so null scalars become empty strings.
func tomlValue(v tree.Value) any {
	switch t := v.(type) {
	case *tree.Map:
		out := make(map[string]any, len(t.Entries))
		for _, e := range t.Entries {
			out[e.Key] = tomlValue(e.Value)
		}
		return out
	case *tree.Sequence:
		out := make([]any, 0, len(t.Items))
		for _, item := range t.Items {
			out = append(out, tomlValue(item))
		}
		return out
	case *tree.Scalar:
		if t.Val == nil {
			return ""
		}
		return t.Val
	default:
		return ""
	}
}

// decodeEscapes converts backslash escape sequences (\n, \t, \r, \", \\,
// \uXXXX) into their characters, leaving unknown sequences alone.
func decodeEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}

		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case '\'':
			b.WriteByte('\'')
			i += 2
		case 'u':
			if r, ok := decodeHexRune(s[i+2:], 4); ok {
				b.WriteRune(r)
				i += 6
				continue
			}
			b.WriteByte(s[i])
			i++
		case 'x':
			if r, ok := decodeHexRune(s[i+2:], 2); ok {
				b.WriteRune(r)
				i += 4
				continue
			}
			b.WriteByte(s[i])
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}

	return b.String()
}

func decodeHexRune(s string, width int) (rune, bool) {
	if len(s) < width {
		return 0, false
	}

	var r rune
	for _, c := range []byte(s[:width]) {
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, false
		}
		r = r<<4 | d
	}
	return r, true
}
