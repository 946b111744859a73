// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRegistryCmd creates the registry command group.
func NewRegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Registry operations",
		Long:  `Registry operations for the marketplace template index.`,
	}

	// Add subcommands
	cmd.AddCommand(NewRegistryBuildCmd())
	cmd.AddCommand(NewRegistryDiffCmd())

	return cmd
}
