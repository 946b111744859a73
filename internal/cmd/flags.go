// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"
)

// resolveFlag returns the flag value when set, falling back to the
// config-derived value otherwise.
func resolveFlag(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

// treeFlags holds the flags shared by every command that reads the
// template tree.
type treeFlags struct {
	TemplatesDir string
}

// AddTo registers the tree flags on a command.
func (f *treeFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.TemplatesDir, "templates-dir", "",
		"Directory containing templates (env: PSM_TEMPLATES_DIR, default: templates)")
}

// Resolve returns the templates directory with precedence
// flag > config/env > default.
func (f *treeFlags) Resolve() string {
	return resolveFlag(f.TemplatesDir, GetConfig().TemplatesDir)
}
