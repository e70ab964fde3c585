package models

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config holds the harness run configuration. Flags override whatever
// the TOML file provides.
type Config struct {
	Arch     string `toml:"arch"`
	OS       string `toml:"os"`
	Script   string `toml:"script"`
	Coverage string `toml:"coverage"`
	Binary   string `toml:"binary"`
	Base     uint64 `toml:"base"`
	Verbose  bool   `toml:"verbose"`
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config '%s'", path)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config '%s'", path)
	}
	return cfg, nil
}
