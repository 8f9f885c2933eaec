package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvVarSpec binds an environment variable to a mutation of *Config. Apply
// is only invoked when the variable is set.
type EnvVarSpec struct {
	Name  string
	Apply func(cfg *Config, value string) error
}

// DefaultEnvSpecs returns the environment overrides namelink's CLI honors:
// NAMELINK_WORKERS, NAMELINK_MIN_SCORE, and NAMELINK_LOG_LEVEL.
func DefaultEnvSpecs() []EnvVarSpec {
	return []EnvVarSpec{
		{
			Name: "NAMELINK_WORKERS",
			Apply: func(cfg *Config, value string) error {
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("NAMELINK_WORKERS: invalid integer %q", value)
				}
				cfg.Workers = n
				return nil
			},
		},
		{
			Name: "NAMELINK_MIN_SCORE",
			Apply: func(cfg *Config, value string) error {
				f, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("NAMELINK_MIN_SCORE: invalid float %q", value)
				}
				cfg.MinScore = f
				return nil
			},
		},
		{
			Name: "NAMELINK_LOG_LEVEL",
			Apply: func(cfg *Config, value string) error {
				cfg.LogLevel = value
				return nil
			},
		},
	}
}

// ApplyEnvOverrides mutates cfg in place for every spec whose environment
// variable is set.
func ApplyEnvOverrides(cfg *Config, specs []EnvVarSpec) error {
	for _, spec := range specs {
		value, ok := os.LookupEnv(spec.Name)
		if !ok {
			continue
		}
		if err := spec.Apply(cfg, value); err != nil {
			return err
		}
	}
	return nil
}
