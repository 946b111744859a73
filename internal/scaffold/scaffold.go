// Package scaffold creates new template directories from an embedded
// skeleton: descriptor, documentation, an initial version package, and
// an example stack document.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The all: prefix keeps the underscore-named version placeholder
// directory in the embedded tree.
//
//go:embed all:skeleton
var skeletonFS embed.FS

const skeletonRoot = "skeleton"

// versionSegment is the placeholder path segment replaced by the
// initial version when rendering.
const versionSegment = "_version_"

// InitialVersion is the version a freshly scaffolded template starts at.
const InitialVersion = "0.1.0"

var displayCaser = cases.Title(language.English)

// Data parameterizes the skeleton files.
type Data struct {
	// Name is the template identifier in kebab-case.
	Name string

	// DisplayName is the human-readable template name.
	DisplayName string

	// Author is the maintainer recorded in the descriptor.
	Author string

	// Version is the initial released version.
	Version string

	// Date is the initial release date (YYYY-MM-DD).
	Date string
}

// DataFor returns render data for a new template, deriving the display
// name from the kebab-case identifier.
func DataFor(name, author string) Data {
	return Data{
		Name:        name,
		DisplayName: displayCaser.String(strings.ReplaceAll(name, "-", " ")),
		Author:      author,
		Version:     InitialVersion,
		Date:        time.Now().Format("2006-01-02"),
	}
}

// Render writes the skeleton into targetDir, substituting data into
// every file. It returns the created files relative to targetDir, in
// walk order.
func Render(targetDir string, data Data) ([]string, error) {
	var createdFiles []string

	err := fs.WalkDir(skeletonFS, skeletonRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(skeletonRoot, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		relPath = strings.ReplaceAll(relPath, versionSegment, data.Version)
		targetPath := filepath.Join(targetDir, relPath)

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0o755)
		}

		content, err := fs.ReadFile(skeletonFS, path)
		if err != nil {
			return fmt.Errorf("reading skeleton %s: %w", path, err)
		}

		targetPath = strings.TrimSuffix(targetPath, ".tmpl")

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", targetPath, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parsing skeleton %s: %w", path, err)
		}

		f, err := os.Create(targetPath)
		if err != nil {
			return fmt.Errorf("creating file %s: %w", targetPath, err)
		}

		err = tmpl.Execute(f, data)
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("rendering %s: %w", targetPath, err)
		}

		createdFiles = append(createdFiles, strings.TrimSuffix(relPath, ".tmpl"))
		return nil
	})

	return createdFiles, err
}
