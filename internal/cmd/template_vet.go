// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/policystack/marketplace/internal/errors"
	"github.com/policystack/marketplace/internal/output"
	"github.com/policystack/marketplace/internal/template"
)

// Vet command flags.
var vetAllFlag bool

// NewTemplateVetCmd creates the template vet command.
func NewTemplateVetCmd() *cobra.Command {
	var tf treeFlags

	cmd := &cobra.Command{
		Use:   "vet [template]",
		Short: "Validate templates against the marketplace contract",
		Long: `Validate template structure and metadata.

Checks each template for the required files and directories, the
descriptor fields, per-version chart and values files including the
policy-library dependency, and example stack documents. Findings are
reported by severity; only errors fail validation. Nothing is written.

Arguments:
  template    Path to one template directory

Examples:
  # Validate every template under ./templates
  psm template vet

  # Validate a single template
  psm template vet templates/cluster-security

  # Validate every template under a custom tree
  psm template vet --all --templates-dir ./catalog`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateVet(&tf, args)
		},
	}

	tf.AddTo(cmd)
	cmd.Flags().BoolVar(&vetAllFlag, "all", false,
		"Validate every template under the templates directory")

	return cmd
}

// runTemplateVet executes the template vet command.
func runTemplateVet(tf *treeFlags, args []string) error {
	// A positional path vets one template; --all or no argument vets the
	// whole tree.
	if !vetAllFlag && len(args) == 1 {
		report := template.NewValidator(args[0]).Validate()
		printReport(report)

		if !report.Valid() {
			return &oerrors.ExitError{
				Code:    ExitGeneralError,
				Err:     fmt.Errorf("validation failed with %d error(s)", len(report.Errors)),
				Printed: true,
			}
		}
		return nil
	}

	templatesDir := tf.Resolve()

	reports, err := template.ValidateAll(templatesDir)
	if err != nil {
		return &oerrors.ExitError{Code: ExitGeneralError, Err: err}
	}

	if len(reports) == 0 {
		output.Warn("no templates found", "dir", templatesDir)
		return nil
	}

	output.Info("validating templates", "count", len(reports), "dir", templatesDir)

	failed := 0
	for i, report := range reports {
		if i > 0 {
			// Blank separator between templates.
			output.Println("")
		}
		printReport(report)
		if !report.Valid() {
			failed++
		}
	}

	output.Println("")
	if failed > 0 {
		summary := fmt.Sprintf("%d of %d template(s) failed validation", failed, len(reports))
		output.Println(output.FormatCrossmark(summary))
		return &oerrors.ExitError{
			Code:    ExitGeneralError,
			Err:     fmt.Errorf("%s", summary),
			Printed: true,
		}
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("All %d template(s) passed", len(reports))))
	return nil
}

// printReport renders one validation report: a header, the findings in
// fixed order (info, then warnings, then errors), then a pass/fail line.
func printReport(report *template.Report) {
	output.Println("Validating template: " + output.StyleName.Render(report.Path))

	for _, msg := range report.Info {
		output.Println(output.FormatInfo(msg))
	}
	for _, msg := range report.Warnings {
		output.Println(output.FormatWarning(msg))
	}
	for _, msg := range report.Errors {
		output.Println(output.FormatError(msg))
	}

	if report.Valid() {
		output.Println(output.FormatCheckmark("Validation passed"))
	} else {
		output.Println(output.FormatCrossmark(
			fmt.Sprintf("Validation failed with %d error(s)", len(report.Errors))))
	}
}
