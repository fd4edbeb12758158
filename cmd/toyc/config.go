package main

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Config is the configuration of the compiler.
type Config struct {
	// Target triple of generated modules.
	TargetTriple string `toml:"target_triple"`
	// Data layout of generated modules.
	DataLayout string `toml:"data_layout"`
	// Output directory of generated LLVM IR files; the directory of each input
	// file if empty.
	OutputDir string `toml:"output_dir"`
}

// loadConfig parses the TOML configuration file at the given path.
func loadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(buf, cfg); err != nil {
		return nil, errors.Wrapf(err, "unable to parse configuration file %q", path)
	}
	return cfg, nil
}
