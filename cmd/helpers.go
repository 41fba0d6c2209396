package cmd

import (
	"fmt"

	"github.com/semiotic-labs/agentium-docs/internal/config"
	"github.com/semiotic-labs/agentium-docs/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `agentium-docs init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger for cfg; --verbose enables debug output.
func newLogger(cfg *config.Config) *logging.Logger {
	log, err := logging.New(string(cfg.Log.Mode), verbose)
	exitOnError(err)
	return log
}
