// Package config loads the optional tour.toml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Config mirrors tour.toml. Every field is optional.
//
//	headers = true
//	color   = false
//	only    = ["enum", "match"]
type Config struct {
	Headers bool     `toml:"headers"`
	Color   bool     `toml:"color"`
	Only    []string `toml:"only"`
}

// Default is used when no file is given.
func Default() Config {
	return Config{Color: true}
}

// Load decodes path on top of Default. Keys it does not recognise are an
// error, so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
