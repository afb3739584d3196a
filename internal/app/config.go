package app

import (
	"errors"
	"fmt"
)

// Output formats for the resolved configuration.
const (
	OutputSpec = "spec"
	OutputYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SpecPath string // path to the packaging spec file
	Profile  string // requested build profile; empty resolves the base
	Root     string // file-selection root override; empty derives from source.dir

	Output       string // resolved-config output format: spec | yaml
	ListFiles    bool   // print the selected file list instead of the config
	ListProfiles bool   // print the profile names the spec mentions

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SpecPath == "" {
		return nil, errors.New("SpecPath is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		cfg.Output = OutputSpec
	}
	if cfg.Output != OutputSpec && cfg.Output != OutputYAML {
		return nil, fmt.Errorf("invalid output format %q: must be %q or %q", cfg.Output, OutputSpec, OutputYAML)
	}
	if cfg.ListFiles && cfg.ListProfiles {
		return nil, errors.New("at most one of ListFiles and ListProfiles may be set")
	}
	return &cfg, nil
}
