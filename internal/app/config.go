package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ScenarioPath points at a single .hcl scenario file or a directory of
	// them. Empty when the run is configured directly from flags.
	ScenarioPath string

	// Direct-run dimensions, used instead of a scenario file when Direct
	// is set.
	Rows   int
	Cols   int
	Rounds int
	Direct bool

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" && !cfg.Direct {
		return nil, errors.New("either a scenario path or direct dimensions are required")
	}
	if cfg.ScenarioPath != "" && cfg.Direct {
		return nil, errors.New("a scenario path and direct dimensions are mutually exclusive")
	}

	// Future validations for other fields can be added here.
	// For example: checking if LogLevel is a valid value.

	return &cfg, nil
}
