// Package config loads the demo driver's YAML configuration: which example
// expressions to run, whether to color the output, and where the console
// keeps its readline history.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls cmd/typecheck's behavior. Zero value is a valid,
// fully-functional configuration (see Default).
type Config struct {
	// Examples restricts a run to the named examples from
	// internal/repl.StandardExamples. Empty means run all of them.
	Examples []string `yaml:"examples"`

	// Color enables ANSI colored output; set it to false when stdout isn't
	// a terminal or output is being captured.
	Color bool `yaml:"color"`

	// HistoryFile is where the interactive console persists its
	// readline history between runs.
	HistoryFile string `yaml:"history_file"`
}

// Default returns the configuration the demo driver uses when no -config
// flag is given.
func Default() Config {
	return Config{
		Color:       true,
		HistoryFile: ".swift_infer_history",
	}
}

// Load reads and parses a YAML config file at path, filling in any field
// the file omits with Default's value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Includes reports whether name should run under this configuration: every
// example runs when Examples is empty, otherwise only the named ones do.
func (c Config) Includes(name string) bool {
	if len(c.Examples) == 0 {
		return true
	}
	for _, n := range c.Examples {
		if n == name {
			return true
		}
	}
	return false
}
