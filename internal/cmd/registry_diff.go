// Package cmd provides CLI command implementations.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	oerrors "github.com/policystack/marketplace/internal/errors"
	"github.com/policystack/marketplace/internal/output"
	"github.com/policystack/marketplace/internal/registry"
)

// Diff command flags.
var diffOutputFlag string

// NewRegistryDiffCmd creates the registry diff command.
func NewRegistryDiffCmd() *cobra.Command {
	var tf treeFlags

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show drift between the tree and the registry",
		Long: `Show differences between the template tree and the stored registry.

This command builds a candidate registry in memory from the current
template tree and compares it against the registry file using a
semantic YAML diff (via dyff). Nothing is written; generation
timestamps are ignored so the report only shows real content drift.

Examples:
  # Compare ./templates against registry.yaml
  psm registry diff

  # Compare a custom tree against a custom registry file
  psm registry diff --templates-dir ./catalog --output index.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegistryDiff(&tf)
		},
	}

	tf.AddTo(cmd)
	cmd.Flags().StringVarP(&diffOutputFlag, "output", "o", "",
		"Registry file to compare against (env: PSM_OUTPUT, default: registry.yaml)")

	return cmd
}

// runRegistryDiff executes the registry diff command.
func runRegistryDiff(tf *treeFlags) error {
	ctx := context.Background()

	templatesDir := tf.Resolve()
	storedPath := resolveFlag(diffOutputFlag, GetConfig().Output)

	output.Debug("diffing registry",
		"templatesDir", templatesDir,
		"registry", storedPath,
	)

	builder := registry.NewBuilder(templatesDir, storedPath)

	// Build the candidate registry in memory. Write never runs here.
	err := output.RunWithSpinner(ctx, func() error {
		if err := builder.Scan(); err != nil {
			return err
		}
		builder.BuildIndex()
		return nil
	}, output.WithTitle("Building candidate registry..."))
	if err != nil {
		return &oerrors.ExitError{Code: ExitGeneralError, Err: err}
	}

	report, err := registry.Diff(storedPath, builder.Registry(), output.IsTTY())
	if err != nil {
		return &oerrors.ExitError{Code: ExitGeneralError, Err: err}
	}

	if report == "" {
		output.Println("No differences found")
		return nil
	}

	output.Println(report)
	return nil
}
