// Package cassette loads YAML documents, typically VCR-style
// HTTP-interaction recordings, into the navigable tree form the addressing
// engine works on.
package cassette

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/vq/internal/tree"
)

var (
	// ErrNotFound indicates the cassette file does not exist.
	ErrNotFound = errors.New("cassette: file not found")

	// ErrInvalidYAML indicates the file exists but is not valid YAML.
	ErrInvalidYAML = errors.New("cassette: invalid YAML")
)

// Load reads and parses a YAML file. Map key order in the source document
// is preserved in the returned tree.
func Load(path string) (tree.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read cassette %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Read parses a YAML document from a reader.
func Read(r io.Reader) (tree.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read cassette: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a tree.
func Parse(data []byte) (tree.Value, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return tree.FromGo(v), nil
}
