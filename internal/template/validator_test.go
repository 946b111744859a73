package template

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/policystack/marketplace/internal/errors"
	"github.com/policystack/marketplace/internal/testutil"
)

func TestValidateValidTemplate(t *testing.T) {
	dir := testutil.WriteValidTemplate(t, t.TempDir(), "valid-one")

	report := NewValidator(dir).Validate()

	assert.True(t, report.Valid())
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)

	assert.Contains(t, report.Info, "Template name: valid-one")
	assert.Contains(t, report.Info, "Latest version: 1.0.0")
	assert.Contains(t, report.Info, "Total versions: 1")
	assert.Contains(t, report.Info, "Found version: 1.0.0")
	assert.Contains(t, report.Info, "Found example: basic.yaml")
}

func TestValidateStructure(t *testing.T) {
	t.Run("missing README and versions", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "broken")
		require.NoError(t, os.Remove(filepath.Join(dir, "README.md")))
		require.NoError(t, os.RemoveAll(filepath.Join(dir, "versions")))

		report := NewValidator(dir).Validate()

		assert.False(t, report.Valid())
		assert.Equal(t, []string{
			"Missing required file: README.md",
			"Missing required directory: versions",
		}, report.Errors)
	})

	t.Run("missing metadata skips the content checks", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "broken")
		require.NoError(t, os.Remove(filepath.Join(dir, "metadata.yaml")))

		report := NewValidator(dir).Validate()

		assert.Equal(t, []string{"Missing required file: metadata.yaml"}, report.Errors)
		assert.NotContains(t, strings.Join(report.Info, "\n"), "Template name:")
		// Version and example checks still run.
		assert.Contains(t, report.Info, "Found version: 1.0.0")
	})

	t.Run("missing examples directory", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "broken")
		require.NoError(t, os.RemoveAll(filepath.Join(dir, "examples")))

		report := NewValidator(dir).Validate()

		assert.Equal(t, []string{"Missing required directory: examples"}, report.Errors)
	})
}

func TestValidateMetadata(t *testing.T) {
	// Overwrites the descriptor of an otherwise valid template so each
	// case isolates the metadata findings.
	write := func(t *testing.T, content string) *Report {
		t.Helper()
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "meta")
		testutil.WriteFile(t, dir, "metadata.yaml", content)
		return NewValidator(dir).Validate()
	}

	t.Run("reports every missing required field", func(t *testing.T) {
		report := write(t, "name: meta\n")

		assert.Len(t, report.Errors, 6)
		for _, field := range []string{"displayName", "description", "author", "categories", "version", "versions"} {
			assert.Contains(t, report.Errors, "metadata.yaml missing required field: "+field)
		}
		for _, field := range []string{"tags", "features", "requirements", "complexity"} {
			assert.Contains(t, report.Warnings, "Consider adding recommended field: "+field)
		}
	})

	t.Run("author must be a mapping", func(t *testing.T) {
		report := write(t, "author: just-a-string\n")
		assert.Contains(t, report.Errors, "author must be a dictionary")
	})

	t.Run("author needs a name", func(t *testing.T) {
		report := write(t, "author:\n  email: team@policystack.io\n")
		assert.Contains(t, report.Errors, "author must have a name field")
	})

	t.Run("categories need a primary", func(t *testing.T) {
		report := write(t, "categories:\n  secondary:\n    - networking\n")
		assert.Contains(t, report.Errors, "categories must have a primary category")
	})

	t.Run("version needs latest", func(t *testing.T) {
		for _, content := range []string{"version: {}\n", "version: 1.0.0\n", "version:\n  latest: \"\"\n"} {
			report := write(t, content)
			assert.Contains(t, report.Errors, "version must specify latest", "content: %s", content)
		}
	})

	t.Run("latest must be a released version", func(t *testing.T) {
		report := write(t, `name: drifted
displayName: Drifted
description: Latest points past the release history
author:
  name: PolicyStack Team
categories:
  primary: security
tags:
  - compliance
version:
  latest: "2.0"
versions:
  "1.0":
    date: "2026-01-01"
    policyLibrary: ">=1.0.0"
    openshift: ">=4.14"
    acm: ">=2.10"
    changes:
      - Initial release
features:
  - Namespace isolation
requirements:
  openshift: ">=4.14"
complexity: beginner
`)

		assert.Equal(t, []string{"Latest version 2.0 not found in versions"}, report.Errors)
		assert.False(t, report.Valid())
	})

	t.Run("version entries need details", func(t *testing.T) {
		report := write(t, "versions:\n  \"1.0.0\": stable\n")
		assert.Contains(t, report.Errors, "Version 1.0.0 must have details")
	})

	t.Run("sparse version details warn per field", func(t *testing.T) {
		report := write(t, "versions:\n  \"1.0.0\":\n    date: \"2026-01-01\"\n")

		for _, field := range []string{"policyLibrary", "openshift", "acm", "changes"} {
			assert.Contains(t, report.Warnings, "Version 1.0.0 missing field: "+field)
		}
		assert.NotContains(t, report.Warnings, "Version 1.0.0 missing field: date")
	})

	t.Run("malformed descriptor is one finding", func(t *testing.T) {
		report := write(t, "name: [unclosed\n")

		assert.Contains(t, strings.Join(report.Errors, "\n"), "Invalid YAML in metadata.yaml")
		// The filesystem checks are independent of the descriptor.
		assert.Contains(t, report.Info, "Found version: 1.0.0")
		assert.Contains(t, report.Info, "Found example: basic.yaml")
	})
}

func TestValidateVersions(t *testing.T) {
	t.Run("empty versions directory fails", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "empty")
		require.NoError(t, os.RemoveAll(filepath.Join(dir, "versions", "1.0.0")))

		report := NewValidator(dir).Validate()

		assert.Equal(t, []string{"No version directories found in versions/"}, report.Errors)
		assert.False(t, report.Valid())
	})

	t.Run("missing chart and values files", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "bare")
		require.NoError(t, os.Remove(filepath.Join(dir, "versions", "1.0.0", "Chart.yaml")))
		require.NoError(t, os.Remove(filepath.Join(dir, "versions", "1.0.0", "values.yaml")))

		report := NewValidator(dir).Validate()

		assert.Contains(t, report.Errors, "Version 1.0.0 missing required file: Chart.yaml")
		assert.Contains(t, report.Errors, "Version 1.0.0 missing required file: values.yaml")
	})

	t.Run("missing policy-library dependency", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "nodep")
		testutil.WriteFile(t, dir, filepath.Join("versions", "1.0.0", "Chart.yaml"),
			"apiVersion: v2\nname: nodep\nversion: 1.0.0\ndependencies:\n  - name: common\n")

		report := NewValidator(dir).Validate()

		assert.Equal(t, []string{"Version 1.0.0: Missing policy-library dependency"}, report.Errors)
	})

	t.Run("absent dependencies key warns", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "nodeps")
		testutil.WriteFile(t, dir, filepath.Join("versions", "1.0.0", "Chart.yaml"),
			"apiVersion: v2\nname: nodeps\nversion: 1.0.0\n")

		report := NewValidator(dir).Validate()

		assert.True(t, report.Valid())
		assert.Contains(t, report.Warnings, "Version 1.0.0: Chart.yaml missing dependencies")
	})

	t.Run("malformed chart fails", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "badchart")
		testutil.WriteFile(t, dir, filepath.Join("versions", "1.0.0", "Chart.yaml"), "dependencies: [unclosed\n")

		report := NewValidator(dir).Validate()

		assert.Contains(t, strings.Join(report.Errors, "\n"), "Version 1.0.0: Invalid Chart.yaml")
	})

	t.Run("missing converters directory warns", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "noconv")
		require.NoError(t, os.RemoveAll(filepath.Join(dir, "versions", "1.0.0", "converters")))

		report := NewValidator(dir).Validate()

		assert.True(t, report.Valid())
		assert.Contains(t, report.Warnings, "Version 1.0.0: No converters directory")
	})

	t.Run("every version directory is checked", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "multi")
		testutil.WriteFile(t, dir, filepath.Join("versions", "2.0.0", "Chart.yaml"), testutil.ValidChart("multi"))

		report := NewValidator(dir).Validate()

		assert.Contains(t, report.Errors, "Version 2.0.0 missing required file: values.yaml")
		assert.Contains(t, report.Info, "Found version: 1.0.0")
		assert.Contains(t, report.Info, "Found version: 2.0.0")
	})
}

func TestValidateExamples(t *testing.T) {
	t.Run("no example files warns", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "noex")
		require.NoError(t, os.Remove(filepath.Join(dir, "examples", "basic.yaml")))
		testutil.WriteFile(t, dir, filepath.Join("examples", "notes.txt"), "not yaml\n")

		report := NewValidator(dir).Validate()

		assert.True(t, report.Valid())
		assert.Contains(t, report.Warnings, "No example files found in examples/")
	})

	t.Run("missing stack key warns", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "nostack")
		testutil.WriteFile(t, dir, filepath.Join("examples", "basic.yaml"), "metadata:\n  name: demo\n")

		report := NewValidator(dir).Validate()

		assert.Empty(t, report.Errors)
		assert.Equal(t, []string{"Example basic.yaml: Missing 'stack' key"}, report.Warnings)
	})

	t.Run("non-mapping example fails", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "listex")
		testutil.WriteFile(t, dir, filepath.Join("examples", "basic.yaml"), "- one\n- two\n")

		report := NewValidator(dir).Validate()

		assert.Contains(t, report.Errors, "Example basic.yaml: Not a valid YAML dictionary")
	})

	t.Run("malformed example fails", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "badex")
		testutil.WriteFile(t, dir, filepath.Join("examples", "basic.yaml"), "stack: [unclosed\n")

		report := NewValidator(dir).Validate()

		assert.Contains(t, strings.Join(report.Errors, "\n"), "Example basic.yaml: Invalid YAML")
	})

	t.Run("yml files count as examples", func(t *testing.T) {
		dir := testutil.WriteValidTemplate(t, t.TempDir(), "yml")
		require.NoError(t, os.Remove(filepath.Join(dir, "examples", "basic.yaml")))
		testutil.WriteFile(t, dir, filepath.Join("examples", "basic.yml"), "stack:\n  name: yml\n")

		report := NewValidator(dir).Validate()

		assert.True(t, report.Valid())
		assert.Contains(t, report.Info, "Found example: basic.yml")
	})
}

func TestValidateIdempotent(t *testing.T) {
	dir := testutil.WriteValidTemplate(t, t.TempDir(), "twice")
	testutil.WriteFile(t, dir, "metadata.yaml", "name: twice\n")

	first := NewValidator(dir).Validate()
	second := NewValidator(dir).Validate()

	assert.Equal(t, first, second)
}

func TestValidateFixProgression(t *testing.T) {
	// Fixing a finding removes exactly that finding.
	dir := testutil.WriteValidTemplate(t, t.TempDir(), "fixme")
	require.NoError(t, os.Remove(filepath.Join(dir, "README.md")))

	before := NewValidator(dir).Validate()
	require.Equal(t, []string{"Missing required file: README.md"}, before.Errors)

	testutil.WriteFile(t, dir, "README.md", "# fixme\n")
	after := NewValidator(dir).Validate()

	assert.Empty(t, after.Errors)
	assert.Equal(t, before.Warnings, after.Warnings)
	assert.True(t, after.Valid())
}

func TestValidateAll(t *testing.T) {
	t.Run("validates every template in name order", func(t *testing.T) {
		root := t.TempDir()
		testutil.WriteValidTemplate(t, root, "b-two")
		testutil.Mkdir(t, root, "a-one")
		testutil.Mkdir(t, root, ".git")
		testutil.WriteFile(t, root, "notes.txt", "skip me\n")

		reports, err := ValidateAll(root)

		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, filepath.Join(root, "a-one"), reports[0].Path)
		assert.Equal(t, filepath.Join(root, "b-two"), reports[1].Path)
		assert.False(t, reports[0].Valid())
		assert.True(t, reports[1].Valid())
	})

	t.Run("empty directory when nothing qualifies", func(t *testing.T) {
		reports, err := ValidateAll(t.TempDir())

		require.NoError(t, err)
		assert.Empty(t, reports)
	})

	t.Run("missing root is a not-found error", func(t *testing.T) {
		_, err := ValidateAll(filepath.Join(t.TempDir(), "missing"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	})
}
