package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// localNames are the config file names searched in each directory, in
// preference order; only the first hit per directory is used.
var localNames = []string{"vq.toml", ".vq.toml"}

const globalDir = "vq"

// source is one discovered local config file, decoded during the walk so
// Load and Sources share a single parse per file.
type source struct {
	path string
	cfg  *Config
}

// Load returns the merged configuration for a directory. Precedence, lowest
// to highest: built-in defaults, the global config file, then local configs
// from the shallowest ancestor down to startDir itself. Files that cannot
// be read or parsed are skipped, matching the original behaviour of never
// failing startup over a broken config file.
func Load(startDir string) *Config {
	cfg := Default()

	if global := loadFile(globalPath()); global != nil {
		cfg = cfg.Merge(global)
	}

	locals := discover(startDir)
	for i := len(locals) - 1; i >= 0; i-- {
		cfg = cfg.Merge(locals[i].cfg)
	}

	return cfg
}

// Sources lists the local config files that Load would merge, ordered from
// deepest to shallowest. The search walks up from startDir and stops after
// a config with root = true, or at the filesystem root.
func Sources(startDir string) []string {
	locals := discover(startDir)

	paths := make([]string, 0, len(locals))
	for _, s := range locals {
		paths = append(paths, s.path)
	}
	return paths
}

// discover walks up from startDir collecting local config files, deepest
// first, stopping after a root = true config. Each file is decoded exactly
// once; unparseable files are skipped.
func discover(startDir string) []source {
	var sources []source

	current, err := filepath.Abs(startDir)
	if err != nil {
		return nil
	}

	for {
		for _, name := range localNames {
			path := filepath.Join(current, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}

			if cfg := loadFile(path); cfg != nil {
				sources = append(sources, source{path: path, cfg: cfg})
				if cfg.Root {
					return sources
				}
			}
			break // first matching name per directory wins
		}

		parent := filepath.Dir(current)
		if parent == current {
			return sources
		}
		current = parent
	}
}

// GlobalPath returns the location of the user-level config file.
func GlobalPath() string {
	return globalPath()
}

func globalPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, globalDir, "config.toml")
}

func loadFile(path string) *Config {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil
	}
	cfg.normalize()
	return &cfg
}
