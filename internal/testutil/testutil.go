// Package testutil provides test helpers for building template fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory,
// creating parent directories as needed.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// Mkdir creates a directory (and parents) under dir.
func Mkdir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
	return path
}

// ValidMetadata returns a complete template descriptor for a template
// named name, including every recommended field.
func ValidMetadata(name string) string {
	return fmt.Sprintf(`name: %s
displayName: %s Policies
description: Baseline policies for %s
author:
  name: PolicyStack Team
  email: team@policystack.io
categories:
  primary: security
tags:
  - compliance
  - baseline
version:
  latest: 1.0.0
versions:
  1.0.0:
    date: "2026-01-15"
    policyLibrary: ">=1.2.0"
    openshift: ">=4.14"
    acm: ">=2.10"
    changes:
      - Initial release
features:
  - Namespace isolation
  - Audit logging
requirements:
  openshift: ">=4.14"
complexity: intermediate
`, name, name, name)
}

// ValidChart returns a chart descriptor declaring the policy-library
// dependency.
func ValidChart(name string) string {
	return fmt.Sprintf(`apiVersion: v2
name: %s
version: 1.0.0
dependencies:
  - name: policy-library
    version: ">=1.2.0"
    repository: https://policystack.github.io/charts
`, name)
}

// WriteValidTemplate creates a complete, fully valid template directory
// under root and returns its path.
func WriteValidTemplate(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)

	WriteFile(t, dir, "metadata.yaml", ValidMetadata(name))
	WriteFile(t, dir, "README.md", "# "+name+"\n")
	WriteFile(t, dir, filepath.Join("versions", "1.0.0", "Chart.yaml"), ValidChart(name))
	WriteFile(t, dir, filepath.Join("versions", "1.0.0", "values.yaml"), "enabled: true\n")
	Mkdir(t, dir, filepath.Join("versions", "1.0.0", "converters"))
	WriteFile(t, dir, filepath.Join("examples", "basic.yaml"), "stack:\n  name: "+name+"\n")

	return dir
}
