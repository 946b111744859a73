// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/policystack/marketplace/internal/config"
	"github.com/policystack/marketplace/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	psmConfig *config.Config
)

// NewRootCmd creates the root command for the psm CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "psm",
		Short:         "PolicyStack Marketplace CLI",
		Long:          `psm manages the PolicyStack Marketplace: it builds the searchable template registry and validates templates against the marketplace contract.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: PSM_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewRegistryCmd())
	rootCmd.AddCommand(NewTemplateCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	// Load configuration first so config values can drive logging setup.
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands still work on defaults
		loaded = config.DefaultConfig()
	}
	psmConfig = loaded

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	if cmd.Flags().Changed("timestamps") {
		// Flag was explicitly set by user
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if psmConfig.Log.Timestamps != nil {
		// Config has a value
		logCfg.Timestamps = psmConfig.Log.Timestamps
	}
	// else: nil means SetupLogging defaults to true

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"templatesDir", psmConfig.TemplatesDir,
			"output", psmConfig.Output,
		)
	}

	return nil
}

// GetConfig returns the loaded configuration. Defaults are returned when
// a command runs outside the root command's PersistentPreRunE (tests).
func GetConfig() *config.Config {
	if psmConfig == nil {
		return config.DefaultConfig()
	}
	return psmConfig
}

// GetConfigFlag returns the raw --config flag value.
func GetConfigFlag() string {
	return configFlag
}
