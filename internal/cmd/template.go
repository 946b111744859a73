// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Template operations",
		Long:  `Template operations for marketplace templates.`,
	}

	// Add subcommands
	cmd.AddCommand(NewTemplateVetCmd())
	cmd.AddCommand(NewTemplateListCmd())
	cmd.AddCommand(NewTemplateInitCmd())

	return cmd
}
