// Package config loads the prover's tunable settings from a YAML file,
// falling back to the kernel's own defaults when no file is given.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/resolvekanren/resolvekanren/internal/logic"
)

// Config is the on-disk shape of a run's settings. Zero values are not
// meaningful on their own; Load always starts from logic.DefaultConfig()
// and lets the file override individual fields.
type Config struct {
	Budget               int  `yaml:"budget"`
	TautologyElimination bool `yaml:"tautology_elimination"`
	CanonicalSort        bool `yaml:"canonical_sort"`
	Verbose              bool `yaml:"verbose"`
}

// Default returns the settings a run uses when no config file is supplied.
func Default() Config {
	d := logic.DefaultConfig()
	return Config{
		Budget:               d.Budget,
		TautologyElimination: d.TautologyElimination,
		CanonicalSort:        d.CanonicalSort,
		Verbose:              false,
	}
}

// Load reads a YAML config file at path and merges it onto Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// EngineConfig translates the loaded settings into the kernel's own
// Config type.
func (c Config) EngineConfig() logic.Config {
	return logic.Config{
		Budget:               c.Budget,
		TautologyElimination: c.TautologyElimination,
		CanonicalSort:        c.CanonicalSort,
	}
}
