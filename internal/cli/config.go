package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds defaults that commands read before applying flags. All
// fields are optional in the file.
type Config struct {
	// ExtraHints is the default number of hints copied back from the
	// solution after reduction.
	ExtraHints int `toml:"extra_hints"`

	// StepLimit bounds the search effort per solve; zero means unlimited.
	StepLimit int `toml:"step_limit"`

	// Listen is the default address for the serve command.
	Listen string `toml:"listen"`

	// Redis is the address of a Redis instance for the API response
	// cache; empty selects the in-process cache.
	Redis string `toml:"redis"`

	// CacheDir selects a directory-backed response cache. Redis takes
	// precedence when both are set.
	CacheDir string `toml:"cache_dir"`

	// Mongo is the MongoDB URI for the puzzle archive; empty selects the
	// in-memory store.
	Mongo string `toml:"mongo"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{Listen: ":8037"}
}

// LoadConfig reads a TOML config file. A missing file is not an error and
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return DefaultConfig(), err
	}
	return cfg, nil
}

// configPath returns the path of the config file (~/.config/gensudoku/config.toml).
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
