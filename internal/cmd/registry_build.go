// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/policystack/marketplace/internal/errors"
	"github.com/policystack/marketplace/internal/output"
	"github.com/policystack/marketplace/internal/registry"
)

// Build command flags.
var (
	buildOutputFlag   string
	buildValidateFlag bool
)

// NewRegistryBuildCmd creates the registry build command.
func NewRegistryBuildCmd() *cobra.Command {
	var tf treeFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the marketplace registry",
		Long: `Build the marketplace registry from the template tree.

Scans every template directory under the templates root, indexes the
templates by name, category, and tag, and writes the registry as YAML
with a JSON mirror next to it. Both files are overwritten on every
build. Finishes by printing a README-ready summary of the marketplace.

Examples:
  # Build registry.yaml and registry.json from ./templates
  psm registry build

  # Build a custom tree into a custom output file
  psm registry build --templates-dir ./catalog --output index.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegistryBuild(&tf)
		},
	}

	tf.AddTo(cmd)
	cmd.Flags().StringVarP(&buildOutputFlag, "output", "o", "",
		"Registry file to write; the JSON mirror lands next to it (env: PSM_OUTPUT, default: registry.yaml)")
	// Reserved: accepted for compatibility, the build path ignores it.
	cmd.Flags().BoolVar(&buildValidateFlag, "validate", false,
		"Validate metadata files without building registry")

	return cmd
}

// runRegistryBuild executes the registry build command.
func runRegistryBuild(tf *treeFlags) error {
	templatesDir := tf.Resolve()
	outputPath := resolveFlag(buildOutputFlag, GetConfig().Output)

	output.Debug("building registry",
		"templatesDir", templatesDir,
		"output", outputPath,
	)

	builder := registry.NewBuilder(templatesDir, outputPath)

	summary, err := builder.Run()
	if err != nil {
		return &oerrors.ExitError{Code: ExitGeneralError, Err: err}
	}

	// The summary fragment is data output: it goes to stdout so it can be
	// piped straight into a README.
	output.Println(output.StyleHeader.Render("README snippet (copy to README.md):"))
	output.Println("")
	output.Println(summary)

	stats := builder.Registry().Stats
	output.Println("")
	output.Println(output.FormatCheckmark(fmt.Sprintf(
		"Registry build complete (%d templates, %d versions)",
		stats.TotalTemplates, stats.TotalVersions,
	)))

	return nil
}
