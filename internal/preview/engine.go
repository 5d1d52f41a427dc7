// Package preview ties the addressing engine to channels: it discovers
// files, enumerates their keys, picks the rule governing a selected key,
// and produces formatted preview results. It has no terminal dependencies
// and is usable from any front end.
package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jacoelho/vq/internal/cassette"
	"github.com/jacoelho/vq/internal/config"
	"github.com/jacoelho/vq/internal/format"
	"github.com/jacoelho/vq/internal/keypath"
	"github.com/jacoelho/vq/internal/redact"
	"github.com/jacoelho/vq/internal/tree"
)

var (
	// ErrUnknownChannel indicates a channel name with no configuration,
	// or a channel that is disabled.
	ErrUnknownChannel = errors.New("preview: unknown or disabled channel")

	// ErrNoRule indicates that no extraction rule of the channel governs
	// the selected key.
	ErrNoRule = errors.New("preview: no extraction rule matches key")
)

// MetadataEntry is one extracted metadata field, in rule order.
type MetadataEntry struct {
	Key   string
	Value string
}

// Result is a formatted preview of a single selected key.
type Result struct {
	Content    string
	Formatter  string
	Label      string
	SourcePath string // the governing rule's pattern
	Metadata   []MetadataEntry
}

// KeyPreview pairs a concrete key with its preview, for whole-file views.
type KeyPreview struct {
	Path   string
	Result *Result
}

// Engine evaluates channel rules against loaded documents. It holds only
// immutable configuration; every method is a pure function of its inputs
// plus the file it reads.
type Engine struct {
	cfg *config.Config
}

// New creates an engine over merged configuration.
func New(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Discover lists files under dir matching the channel's glob patterns,
// sorted and de-duplicated. Patterns support doublestar globs ("**/*.yaml").
func (e *Engine) Discover(dir, channel string) ([]string, error) {
	ch, err := e.channel(channel)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	fsys := os.DirFS(dir)

	for _, pattern := range ch.GlobPatterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			// A malformed glob skips that pattern, it does not fail
			// discovery for the channel.
			continue
		}
		for _, m := range matches {
			seen[filepath.Join(dir, filepath.FromSlash(m))] = struct{}{}
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// Keys enumerates every addressable key in the file.
func (e *Engine) Keys(file string) ([]keypath.Entry, error) {
	doc, err := cassette.Load(file)
	if err != nil {
		return nil, err
	}
	return keypath.Walk(doc), nil
}

// PreviewableKeys returns the keys of the file governed by at least one of
// the channel's rules, in document order.
func (e *Engine) PreviewableKeys(file, channel string) ([]string, error) {
	ch, err := e.channel(channel)
	if err != nil {
		return nil, err
	}

	entries, err := e.Keys(file)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, entry := range entries {
		if _, _, ok := findRule(ch.Rules, entry.Segments); ok {
			keys = append(keys, entry.Path)
		}
	}
	return keys, nil
}

// Preview resolves a selected concrete key under the channel's rules. The
// first matching rule governs formatter, label, and metadata; the content
// is the value at the selected key itself. Lookup failures keep their typed
// cause so callers can tell a missing key from an index out of range or a
// container of the wrong kind.
func (e *Engine) Preview(file, key, channel string) (*Result, error) {
	ch, err := e.channel(channel)
	if err != nil {
		return nil, err
	}

	doc, err := cassette.Load(file)
	if err != nil {
		return nil, err
	}

	concrete, err := keypath.Parse(key)
	if err != nil {
		return nil, err
	}
	return e.preview(doc, concrete, ch)
}

// preview renders one concrete path of an already loaded document. Callers
// with walked entries pass Entry.Segments directly so keys containing path
// syntax never round-trip through their textual form.
func (e *Engine) preview(doc tree.Value, concrete keypath.Path, ch *config.Channel) (*Result, error) {
	rule, pattern, ok := findRule(ch.Rules, concrete)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRule, concrete.String())
	}

	value, err := keypath.Resolve(doc, concrete)
	if err != nil {
		return nil, err
	}

	content, err := format.Format(value, rule.Formatter)
	if err != nil {
		content = format.Plain(value)
	}

	return &Result{
		Content:    e.Redact(content),
		Formatter:  rule.Formatter,
		Label:      rule.Label,
		SourcePath: rule.Pattern,
		Metadata:   e.metadata(doc, concrete, pattern, rule.MetadataKeys),
	}, nil
}

// PreviewFile previews every previewable key of the file, in document order.
func (e *Engine) PreviewFile(file, channel string) ([]KeyPreview, error) {
	ch, err := e.channel(channel)
	if err != nil {
		return nil, err
	}

	doc, err := cassette.Load(file)
	if err != nil {
		return nil, err
	}

	var previews []KeyPreview
	for _, entry := range keypath.Walk(doc) {
		if _, _, ok := findRule(ch.Rules, entry.Segments); !ok {
			continue
		}
		result, err := e.preview(doc, entry.Segments, ch)
		if err != nil {
			continue
		}
		previews = append(previews, KeyPreview{Path: entry.Path, Result: result})
	}
	return previews, nil
}

// Resolve returns the value at a concrete key in the file, bypassing
// channel rules and formatting.
func (e *Engine) Resolve(file, key string) (tree.Value, error) {
	doc, err := cassette.Load(file)
	if err != nil {
		return nil, err
	}

	concrete, err := keypath.Parse(key)
	if err != nil {
		return nil, err
	}
	return keypath.Resolve(doc, concrete)
}

// ExtractAll returns every value a pattern designates in the file, in
// document order. Unresolvable branches contribute nothing.
func (e *Engine) ExtractAll(file, pattern string) ([]tree.Value, error) {
	doc, err := cassette.Load(file)
	if err != nil {
		return nil, err
	}

	p, err := keypath.ParsePattern(pattern)
	if err != nil {
		return nil, err
	}
	return keypath.Extract(doc, p), nil
}

// ExtractFormatted renders every value a pattern designates with the named
// formatter, redacted, in document order. Values a formatter cannot render
// fall back to their plain form, like Preview.
func (e *Engine) ExtractFormatted(file, pattern, formatter string) ([]string, error) {
	if !format.Known(formatter) {
		return nil, fmt.Errorf("%w: %q", format.ErrUnknownFormatter, formatter)
	}

	values, err := e.ExtractAll(file, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(values))
	for _, value := range values {
		content, err := format.Format(value, formatter)
		if err != nil {
			content = format.Plain(value)
		}
		out = append(out, e.Redact(content))
	}
	return out, nil
}

// Redact masks the configured secrets in rendered output. Every rendering
// path goes through here so no command leaks what another masks.
func (e *Engine) Redact(s string) string {
	return redact.String(s, e.cfg.RedactValues, e.cfg.RedactSalt)
}

// Config exposes the engine's merged configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

func (e *Engine) channel(name string) (*config.Channel, error) {
	ch, ok := e.cfg.Channel(name)
	if !ok || !ch.IsEnabled() {
		if name == "" {
			name = e.cfg.DefaultChannel
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
	return ch, nil
}

// metadata resolves each metadata key against the matched record first,
// then against the document root. The record is the concrete-path prefix
// ending at the pattern's last wildcard: for a selected key
// interactions[2].response.body and pattern interactions[].response.body,
// metadata keys like request.method resolve inside interactions[2].
func (e *Engine) metadata(doc tree.Value, concrete, pattern keypath.Path, keys []string) []MetadataEntry {
	record := doc
	if root := recordRoot(concrete, pattern); len(root) > 0 {
		if v, err := keypath.Resolve(doc, root); err == nil {
			record = v
		}
	}

	var out []MetadataEntry
	for _, key := range keys {
		path, err := keypath.Parse(key)
		if err != nil {
			continue
		}

		value, err := keypath.Resolve(record, path)
		if err != nil {
			value, err = keypath.Resolve(doc, path)
		}
		if err != nil {
			continue
		}

		out = append(out, MetadataEntry{Key: key, Value: e.Redact(format.Plain(value))})
	}
	return out
}

// findRule returns the first rule whose pattern governs the concrete path,
// together with the parsed pattern. Rules with unparsable patterns are
// inert: skipped, never fatal.
func findRule(rules []config.Rule, concrete keypath.Path) (*config.Rule, keypath.Path, bool) {
	for i := range rules {
		pattern, err := keypath.ParsePattern(rules[i].Pattern)
		if err != nil {
			continue
		}
		if keypath.Match(concrete, pattern) {
			return &rules[i], pattern, true
		}
	}
	return nil, nil, false
}

// recordRoot returns the prefix of the concrete path up to and including
// the position of the pattern's last wildcard segment, or nil when the
// pattern has none.
func recordRoot(concrete, pattern keypath.Path) keypath.Path {
	last := -1
	for i, seg := range pattern {
		if seg.Kind == keypath.SegmentAnyIndex {
			last = i
		}
	}
	if last < 0 || last >= len(concrete) {
		return nil
	}
	return concrete[:last+1]
}
