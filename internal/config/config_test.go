package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	ch, ok := cfg.Channel("")
	if !ok {
		t.Fatal("no default channel")
	}
	if ch.Name != "vcr" {
		t.Errorf("default channel = %q, want vcr", ch.Name)
	}
	if !ch.IsEnabled() {
		t.Error("default channel disabled")
	}
	if len(ch.Rules) == 0 {
		t.Error("vcr channel has no rules")
	}

	if _, ok := cfg.Channel("yaml"); !ok {
		t.Error("yaml channel missing")
	}
	if _, ok := cfg.Channel("nope"); ok {
		t.Error("unknown channel reported present")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := &Config{
		DefaultChannel: "vcr",
		Channels: map[string]*Channel{
			"vcr":  {Name: "vcr", GlobPatterns: []string{"**/*.yaml"}},
			"yaml": {Name: "yaml"},
		},
	}
	override := &Config{
		DefaultChannel: "custom",
		Channels: map[string]*Channel{
			"vcr":    {Name: "vcr", GlobPatterns: []string{"fixtures/**/*.yml"}},
			"custom": {Name: "custom"},
		},
	}

	merged := base.Merge(override)

	if merged.DefaultChannel != "custom" {
		t.Errorf("DefaultChannel = %q, want custom", merged.DefaultChannel)
	}
	if got := merged.Channels["vcr"].GlobPatterns; !reflect.DeepEqual(got, []string{"fixtures/**/*.yml"}) {
		t.Errorf("vcr globs = %v, want override to win", got)
	}
	if _, ok := merged.Channels["yaml"]; !ok {
		t.Error("yaml channel lost in merge")
	}
	if _, ok := merged.Channels["custom"]; !ok {
		t.Error("custom channel missing after merge")
	}
}

func TestMergeRedaction(t *testing.T) {
	t.Parallel()

	base := &Config{
		Channels:     map[string]*Channel{},
		RedactValues: []string{"alpha"},
		RedactSalt:   "base-salt",
	}
	override := &Config{
		Channels:     map[string]*Channel{},
		RedactValues: []string{"beta"},
	}

	merged := base.Merge(override)

	if !reflect.DeepEqual(merged.RedactValues, []string{"alpha", "beta"}) {
		t.Errorf("RedactValues = %v, want union", merged.RedactValues)
	}
	if merged.RedactSalt != "base-salt" {
		t.Errorf("RedactSalt = %q, want base-salt kept", merged.RedactSalt)
	}

	merged = base.Merge(&Config{Channels: map[string]*Channel{}, RedactSalt: "new-salt"})
	if merged.RedactSalt != "new-salt" {
		t.Errorf("RedactSalt = %q, want override to win", merged.RedactSalt)
	}
}

func TestMergeKeepsDefaultChannelWhenUnset(t *testing.T) {
	t.Parallel()

	base := &Config{DefaultChannel: "vcr", Channels: map[string]*Channel{}}
	merged := base.Merge(&Config{Channels: map[string]*Channel{}})

	if merged.DefaultChannel != "vcr" {
		t.Errorf("DefaultChannel = %q, want vcr", merged.DefaultChannel)
	}
}

func TestLoadFileDecoding(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "vq.toml", `
root = true
default_channel = "apis"

[channels.apis]
glob_patterns = ["cassettes/**/*.yaml"]
enabled = true

[[channels.apis.rules]]
pattern = "http_interactions[].response.body.string"
formatter = "json"
label = "Body"
metadata_keys = ["request.method"]

[channels.off]
enabled = false
`)

	cfg := loadFile(path)
	if cfg == nil {
		t.Fatal("loadFile returned nil")
	}
	if !cfg.Root {
		t.Error("Root not decoded")
	}

	ch, ok := cfg.Channel("")
	if !ok {
		t.Fatal("default channel missing")
	}
	if ch.Name != "apis" {
		t.Errorf("channel name = %q, want apis", ch.Name)
	}

	want := Rule{
		Pattern:      "http_interactions[].response.body.string",
		Formatter:    "json",
		Label:        "Body",
		MetadataKeys: []string{"request.method"},
	}
	if len(ch.Rules) != 1 || !reflect.DeepEqual(ch.Rules[0], want) {
		t.Errorf("rules = %+v, want [%+v]", ch.Rules, want)
	}

	if cfg.Channels["off"].IsEnabled() {
		t.Error("disabled channel reported enabled")
	}
}

func TestLoadFileInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "vq.toml", "not [valid toml")

	if cfg := loadFile(path); cfg != nil {
		t.Errorf("loadFile(broken) = %+v, want nil", cfg)
	}
	if cfg := loadFile(filepath.Join(dir, "absent.toml")); cfg != nil {
		t.Errorf("loadFile(absent) = %+v, want nil", cfg)
	}
}

func TestSourcesWalkUp(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	deep := filepath.Join(base, "a", "b", "c")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	top := writeConfig(t, base, "vq.toml", "root = true\n")
	mid := writeConfig(t, filepath.Join(base, "a"), ".vq.toml", "default_channel = 'yaml'\n")

	got := Sources(deep)
	want := []string{mid, top}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sources() = %v, want %v", got, want)
	}
}

func TestSourcesStopsAtRootConfig(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	nested := filepath.Join(base, "inner")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	inner := writeConfig(t, nested, "vq.toml", "root = true\n")
	writeConfig(t, base, "vq.toml", "default_channel = 'yaml'\n")

	got := Sources(nested)
	want := []string{inner}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sources() = %v, want %v (root = true must stop the walk)", got, want)
	}
}

func TestSourcesPrefersUnhiddenName(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	plain := writeConfig(t, base, "vq.toml", "root = true\n")
	writeConfig(t, base, ".vq.toml", "root = true\n")

	got := Sources(base)
	want := []string{plain}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sources() = %v, want %v", got, want)
	}
}

func TestSourcesSkipsBrokenConfig(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	nested := filepath.Join(base, "inner")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	top := writeConfig(t, base, "vq.toml", "root = true\ndefault_channel = 'yaml'\n")
	writeConfig(t, nested, "vq.toml", "not [valid toml")

	got := Sources(nested)
	want := []string{top}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sources() = %v, want %v (broken config must be skipped)", got, want)
	}

	cfg := Load(nested)
	if cfg.DefaultChannel != "yaml" {
		t.Errorf("DefaultChannel = %q, want yaml", cfg.DefaultChannel)
	}
}

func TestLoadMergesLocalOverDefaults(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeConfig(t, base, "vq.toml", `
root = true
default_channel = "mine"

[channels.mine]
glob_patterns = ["*.yaml"]

[[channels.mine.rules]]
pattern = "."
formatter = "yaml"
`)

	cfg := Load(base)

	if cfg.DefaultChannel != "mine" {
		t.Errorf("DefaultChannel = %q, want mine", cfg.DefaultChannel)
	}
	if _, ok := cfg.Channel("vcr"); !ok {
		t.Error("built-in vcr channel lost after merge")
	}
	if _, ok := cfg.Channel("mine"); !ok {
		t.Error("local channel missing")
	}
}
