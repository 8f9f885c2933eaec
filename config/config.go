// Package config loads namelink's run settings from a layered YAML file
// plus environment overrides, the way fulmenhq's XDG-aware config loader
// does, trimmed down to the knobs a scoring run actually has.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables for one link.ScoreAll run.
type Config struct {
	Workers     int     `yaml:"workers"`
	MinScore    float64 `yaml:"min_score"`
	OutputDir   string  `yaml:"output_dir"`
	LogLevel    string  `yaml:"log_level"`
	BufferBytes int     `yaml:"buffer_bytes"`
}

// Default returns the baseline configuration: one worker per logical CPU,
// no score floor, output to the current directory, INFO logging, and a
// 64 KiB output buffer per spec's minimum.
func Default() *Config {
	return &Config{
		Workers:     0, // 0 means "use runtime.GOMAXPROCS" — resolved by the caller
		MinScore:    0.0,
		OutputDir:   ".",
		LogLevel:    "INFO",
		BufferBytes: 64 * 1024,
	}
}

// Load reads a YAML config file at path and merges it over Default(). A
// missing file is not an error; Load returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-specified config path
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
