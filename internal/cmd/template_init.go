// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/policystack/marketplace/internal/errors"
	"github.com/policystack/marketplace/internal/output"
	"github.com/policystack/marketplace/internal/scaffold"
)

// Init command flags.
var (
	initDirFlag    string
	initAuthorFlag string
)

// NewTemplateInitCmd creates the template init command.
func NewTemplateInitCmd() *cobra.Command {
	var tf treeFlags

	cmd := &cobra.Command{
		Use:   "init <template-name>",
		Short: "Create a new template skeleton",
		Long: `Create a new marketplace template from the embedded skeleton.

The skeleton includes a complete descriptor, documentation, an initial
version package with the policy-library dependency, and an example
stack document. A freshly created template passes 'psm template vet'.

Examples:
  # Create templates/network-policies
  psm template init network-policies

  # Create a template in a specific directory
  psm template init network-policies --dir ./work/network-policies

  # Create a template with the author filled in
  psm template init network-policies --author "PolicyStack Team"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplateInit(&tf, args)
		},
	}

	tf.AddTo(cmd)
	cmd.Flags().StringVarP(&initDirFlag, "dir", "d", "",
		"Directory to create the template in (defaults to <templates-dir>/<name>)")
	cmd.Flags().StringVar(&initAuthorFlag, "author", "Your Name",
		"Author name written into the descriptor")

	return cmd
}

// runTemplateInit executes the template init command.
func runTemplateInit(tf *treeFlags, args []string) error {
	name := args[0]

	// Determine target directory
	targetDir := initDirFlag
	if targetDir == "" {
		targetDir = filepath.Join(tf.Resolve(), name)
	}

	// Check if directory already exists
	if _, err := os.Stat(targetDir); err == nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("directory already exists: %s", targetDir),
			Location: targetDir,
			Hint:     "Choose a different directory or remove the existing one.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", targetDir, err)
	}

	createdFiles, err := scaffold.Render(targetDir, scaffold.DataFor(name, initAuthorFlag))
	if err != nil {
		// Clean up on failure
		_ = os.RemoveAll(targetDir)
		return fmt.Errorf("rendering template skeleton: %w", err)
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("getting absolute path: %w", err)
	}

	output.Println(fmt.Sprintf("Created template '%s' in %s\n", name, absDir))

	// Build file entries for aligned output
	entries := make([]output.FileEntry, 0, len(createdFiles)+1)
	entries = append(entries, output.FileEntry{
		Path:        targetDir + "/",
		Description: "Template directory",
	})

	for _, f := range createdFiles {
		entries = append(entries, output.FileEntry{
			Path:        "  " + f,
			Description: fileDescription(f),
		})
	}

	output.Print(output.RenderFileTree(entries, 30))

	output.Println("")
	output.Println("Validate with: psm template vet " + targetDir)

	return nil
}

// fileDescription returns a description for a skeleton file.
func fileDescription(filename string) string {
	switch filename {
	case "metadata.yaml":
		return "Template descriptor"
	case "README.md":
		return "Template documentation"
	}

	switch filepath.Base(filename) {
	case "Chart.yaml":
		return "Chart descriptor"
	case "values.yaml":
		return "Default values"
	}

	if strings.HasPrefix(filename, "examples/") {
		return "Example stack"
	}
	if strings.Contains(filename, "converters") {
		return "Converter notes"
	}

	return ""
}
