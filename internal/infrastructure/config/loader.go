package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up by Loader
const DefaultFile = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadGame loads and validates the named YAML file
func (l *Loader) LoadGame(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes YAML into a config and validates it.
// Keys missing from data keep their built-in default values.
func Parse(data []byte, source string) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	cfg.World.Platforms = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	if cfg.World.Platforms == nil {
		cfg.World.Platforms = DefaultGameConfig().World.Platforms
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &cfg, nil
}

// Default returns the embedded default configuration
func Default() (*GameConfig, error) {
	return Parse(defaultGameYAML, "embedded defaults")
}

// Load reads the config at path, or the embedded default when path is empty
func Load(path string) (*GameConfig, error) {
	if path == "" {
		return Default()
	}
	return NewLoader(filepath.Dir(path)).LoadGame(filepath.Base(path))
}
