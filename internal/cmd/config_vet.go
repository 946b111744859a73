// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/policystack/marketplace/internal/config"
	oerrors "github.com/policystack/marketplace/internal/errors"
	"github.com/policystack/marketplace/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the psm CLI configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file parses as YAML matching the expected shape

The config path is resolved using precedence:
  --config flag > PSM_CONFIG env > ~/.psm/config.yaml

Examples:
  # Validate default configuration
  psm config vet

  # Validate custom config path
  psm config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	// Resolve config path using precedence
	configPath := GetConfigFlag()
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigFile()
		if err != nil {
			return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
		}
	}

	expanded, err := config.ExpandPath(configPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}
	configPath = expanded

	output.Debug("validating config", "path", configPath)

	// Check 1: Config file exists
	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}
	if !exists {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'psm config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	// Check 2: Config parses into the expected shape
	cfg, err := config.NewLoader().Load(configPath)
	if err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: configPath,
			Hint:     "Fix the file or recreate it with 'psm config init --force'.",
			Cause:    oerrors.ErrValidation,
		}
	}

	resolved := cfg.WithDefaults()
	output.Debug("config resolved",
		"templatesDir", resolved.TemplatesDir,
		"output", resolved.Output,
	)

	output.Println("Configuration is valid: " + configPath)
	return nil
}
