// File: config.go
// Role: batch-mode configuration (spec.md §6 batch mode; original
// config.py's constants), loaded from an optional YAML file with the
// original's hardcoded values as defaults.

package main

import (
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the batch driver's tunables. Zero-value fields are filled
// from DefaultConfig by LoadConfig when a YAML file omits them.
type Config struct {
	InputFile          string `yaml:"input_file"`
	OutputFile         string `yaml:"output_file"`
	LogFile            string `yaml:"log_file"`
	NumQuestions       int    `yaml:"num_of_questions"`
	LightNodeLimit     int    `yaml:"light_node_limited"`
	HeavyNodeLimit     int    `yaml:"heavy_node_limited"`
	ScheduleNumPerPass int    `yaml:"schedule_num_questions"`
}

// DefaultConfig mirrors the original solver's config.py constants.
func DefaultConfig() Config {
	return Config{
		InputFile:          "input.txt",
		OutputFile:         "solution.txt",
		LogFile:            "log.txt",
		NumQuestions:       1000,
		LightNodeLimit:     15000,
		HeavyNodeLimit:     60000,
		ScheduleNumPerPass: 10,
	}
}

// LoadConfig reads path as YAML and overlays it onto DefaultConfig. A
// missing path is not an error: it returns the defaults unchanged, per
// SPEC_FULL.md's ambient-stack note that config is optional.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, pkgerrors.Wrapf(err, "read config %q", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, pkgerrors.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}
