// Package config defines channels and extraction rules and loads them from
// TOML files, merging global and directory-local configuration over the
// built-in defaults.
package config

import "maps"

// Rule selects tree locations by pattern and says how to present them.
// Patterns use the keypath dialect; a pattern that does not parse makes the
// rule inert (it matches nothing) rather than failing the whole channel.
type Rule struct {
	Pattern      string   `toml:"pattern"`
	Formatter    string   `toml:"formatter"`
	Label        string   `toml:"label,omitempty"`
	MetadataKeys []string `toml:"metadata_keys,omitempty"`
}

// Channel bundles file-discovery globs with an ordered rule list. Channels
// give different views of the same files, the way television channels give
// different programmes over the same wire.
type Channel struct {
	Name         string   `toml:"-"`
	GlobPatterns []string `toml:"glob_patterns"`
	Rules        []Rule   `toml:"rules"`
	Enabled      *bool    `toml:"enabled"`
}

// IsEnabled reports whether the channel is active; unset means enabled.
func (c *Channel) IsEnabled() bool {
	return c != nil && (c.Enabled == nil || *c.Enabled)
}

// Config is the merged vq configuration.
type Config struct {
	// Root stops the upward search for further local config files.
	Root           bool                `toml:"root"`
	DefaultChannel string              `toml:"default_channel"`
	Channels       map[string]*Channel `toml:"channels"`

	// RedactValues are secrets masked in all rendered output.
	RedactValues []string `toml:"redact_values,omitempty"`
	RedactSalt   string   `toml:"redact_salt,omitempty"`
}

// Channel returns the named channel, or the default channel when name is
// empty.
func (c *Config) Channel(name string) (*Channel, bool) {
	if name == "" {
		name = c.DefaultChannel
	}
	if name == "" {
		return nil, false
	}
	ch, ok := c.Channels[name]
	return ch, ok
}

// Merge combines two configs, with other taking precedence. Channels
// replace wholesale on name collision; rule lists are never interleaved
// across files.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	merged := &Config{
		Root:           c.Root || other.Root,
		DefaultChannel: c.DefaultChannel,
		Channels:       make(map[string]*Channel, len(c.Channels)+len(other.Channels)),
		RedactValues:   append(append([]string(nil), c.RedactValues...), other.RedactValues...),
		RedactSalt:     c.RedactSalt,
	}
	if other.DefaultChannel != "" {
		merged.DefaultChannel = other.DefaultChannel
	}
	if other.RedactSalt != "" {
		merged.RedactSalt = other.RedactSalt
	}

	maps.Copy(merged.Channels, c.Channels)
	maps.Copy(merged.Channels, other.Channels)

	return merged
}

// normalize fills channel names from their map keys after decoding.
func (c *Config) normalize() {
	for name, ch := range c.Channels {
		if ch != nil {
			ch.Name = name
		}
	}
}
