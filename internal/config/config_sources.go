package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// A source yields a partial configuration from one origin. Sources are
// merged in declaration order and an earlier source wins for every field
// it sets.
type source func() (*StructuredConfig, error)

// runtimeSources are the origins consulted on every start: process
// environment first, then command-line flags.
var runtimeSources = []source{loadEnv, loadFlags}

func loadEnv() (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}

func loadFlags() (*StructuredConfig, error) {
	return ParseFlags(), nil
}

// buildConfig merges the runtime sources, then layers the optional JSON
// file underneath them. The file path itself may come from any runtime
// source, so the file is resolved only after those are merged.
func buildConfig() (*StructuredConfig, error) {
	merged := new(StructuredConfig)
	for _, load := range runtimeSources {
		cfg, err := load()
		if err != nil {
			return nil, fmt.Errorf("error occured during building config: %w", err)
		}
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if merged.JSONFilePath != "" {
		fileCfg, err := parseJSON(merged.JSONFilePath)
		if err != nil {
			return nil, fmt.Errorf("error occured during building config: %w", err)
		}
		if err := mergo.Merge(merged, fileCfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}
