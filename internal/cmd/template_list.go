// Package cmd provides CLI command implementations.
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	oerrors "github.com/policystack/marketplace/internal/errors"
	"github.com/policystack/marketplace/internal/output"
	"github.com/policystack/marketplace/internal/registry"
)

// NewTemplateListCmd creates the template list command.
func NewTemplateListCmd() *cobra.Command {
	var tf treeFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates in the tree",
		Long: `List every template in the template tree.

Scans the templates directory the same way a registry build does and
prints one row per template. Templates without a readable descriptor
are skipped with a warning.

Examples:
  # List templates under ./templates
  psm template list

  # List templates under a custom tree
  psm template list --templates-dir ./catalog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateList(&tf)
		},
	}

	tf.AddTo(cmd)

	return cmd
}

// runTemplateList executes the template list command.
func runTemplateList(tf *treeFlags) error {
	templatesDir := tf.Resolve()

	builder := registry.NewBuilder(templatesDir, "")
	if err := builder.Scan(); err != nil {
		return &oerrors.ExitError{Code: ExitGeneralError, Err: err}
	}
	builder.BuildIndex()

	reg := builder.Registry()
	if len(reg.Templates) == 0 {
		output.Warn("no templates found", "dir", templatesDir)
		return nil
	}

	table := output.NewTable("NAME", "LATEST", "VERSIONS", "CATEGORY", "COMPLEXITY")
	for _, entry := range reg.Templates {
		var latest, category string
		if entry.Version != nil {
			latest = entry.Version.Latest
		}
		if entry.Categories != nil {
			category = entry.Categories.Primary
		}
		table.Row(entry.Name, latest, strconv.Itoa(len(entry.Versions)), category, entry.Complexity)
	}

	output.Println(table.String())
	return nil
}
