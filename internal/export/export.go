// Package export writes every value a channel's wildcard rules designate
// to individual files, named from a user template.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jacoelho/vq/internal/format"
	"github.com/jacoelho/vq/internal/keypath"
	"github.com/jacoelho/vq/internal/preview"
	"github.com/jacoelho/vq/internal/template"
)

// DefaultTemplate names exported files after the source file and the
// export ordinal when the user provides no template of their own.
const DefaultTemplate = "{{ .File }}-{{ .Index }}"

// Options controls a single export run.
type Options struct {
	Dir      string // output directory, created if missing
	Channel  string // channel name, "" means the configured default
	Template string // naming template, "" means DefaultTemplate
}

// Exported records one written file and the key it came from.
type Exported struct {
	Key  string // concrete key whose value was written
	Path string // path of the written file
}

// NameData is the data a naming template executes against.
type NameData struct {
	File  string            // source file name without extension, slugged
	Key   string            // concrete key, slugged
	Label string            // governing rule's label, slugged
	Index int               // ordinal within this export run
	Meta  map[string]string // metadata values keyed by their key path
}

// Exporter extracts and writes values through a preview engine.
type Exporter struct {
	engine  *preview.Engine
	planner *Planner
}

// New creates an exporter. The planner persists across files so names
// stay unique for the exporter's lifetime.
func New(engine *preview.Engine) *Exporter {
	return &Exporter{engine: engine, planner: NewPlanner()}
}

// File exports every previewable key of the file whose governing rule has
// a wildcard pattern. Keys governed by concrete-path rules describe the
// whole document rather than repeated records and are skipped.
func (x *Exporter) File(file string, opts Options) ([]Exported, error) {
	tmpl := opts.Template
	if tmpl == "" {
		tmpl = DefaultTemplate
	}

	keys, err := x.engine.PreviewableKeys(file, opts.Channel)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, err
	}

	fileSlug := template.Slug(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))

	var out []Exported
	for _, key := range keys {
		result, err := x.engine.Preview(file, key, opts.Channel)
		if err != nil {
			continue
		}

		pattern, err := keypath.ParsePattern(result.SourcePath)
		if err != nil || !pattern.IsPattern() {
			continue
		}

		data := NameData{
			File:  fileSlug,
			Key:   template.Slug(key),
			Label: template.Slug(result.Label),
			Index: len(out),
			Meta:  metaMap(result.Metadata),
		}

		name, err := template.Apply(tmpl, data)
		if err != nil {
			return out, fmt.Errorf("export: name template: %w", err)
		}

		path := filepath.Join(opts.Dir, x.planner.Next("", template.Slug(name), extension(result.Formatter)))
		if err := os.WriteFile(path, []byte(result.Content), 0o644); err != nil {
			return out, err
		}

		out = append(out, Exported{Key: key, Path: path})
	}
	return out, nil
}

func metaMap(entries []preview.MetadataEntry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, entry := range entries {
		m[entry.Key] = entry.Value
	}
	return m
}

// extension picks a file extension from the formatter that produced the
// content. Auto-detected content gets the generic .txt.
func extension(formatter string) string {
	switch formatter {
	case format.NameJSON:
		return ".json"
	case format.NameYAML:
		return ".yaml"
	case format.NameTOML:
		return ".toml"
	case format.NameHTML:
		return ".html"
	default:
		return ".txt"
	}
}
