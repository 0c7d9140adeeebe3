// Package config loads toml-sort's own configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file searched for in the working directory
// and its parents.
const FileName = "toml-sort.toml"

type Config struct {
	// Keys are priority keys in regular tables. They sort first, in
	// listed order; all other keys follow lexicographically.
	Keys []string `toml:"keys"`

	// InlineKeys are priority keys in inline tables.
	InlineKeys []string `toml:"inline_keys"`

	// SortStringArrays sorts the string elements of arrays. In arrays of
	// mixed types, strings are ordered first and the other values keep
	// their original order.
	SortStringArrays bool `toml:"sort_string_arrays"`
}

// Load decodes the config file at path.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover searches dir and its parents for FileName and loads the first
// hit, returning the loaded config and its path. It returns nil without
// error when no config file exists.
func Discover(dir string) (*Config, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}
	for {
		path := filepath.Join(dir, FileName)
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			cfg, err := Load(path)
			if err != nil {
				return nil, "", err
			}
			return cfg, path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", nil
		}
		dir = parent
	}
}
