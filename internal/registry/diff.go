package registry

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"gopkg.in/yaml.v3"

	oerrors "github.com/policystack/marketplace/internal/errors"
)

// Diff compares the registry stored at storedPath against a freshly
// built candidate and renders a YAML-aware report of the differences.
// Returns the empty string when the stored registry already matches.
//
// The candidate's generated timestamp is pinned to the stored one before
// comparing, so the report only shows real content drift.
func Diff(storedPath string, candidate *Registry, useColor bool) (string, error) {
	stored, err := os.ReadFile(storedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", oerrors.NewNotFoundError(
				fmt.Sprintf("registry not found: %s", storedPath),
				storedPath,
				"Run 'psm registry build' to create it first.",
			)
		}
		return "", fmt.Errorf("reading stored registry: %w", err)
	}

	var storedRegistry Registry
	if err := yaml.Unmarshal(stored, &storedRegistry); err != nil {
		return "", fmt.Errorf("parsing stored registry: %w", err)
	}

	pinned := *candidate
	pinned.Generated = storedRegistry.Generated

	candidateYAML, err := marshalForDiff(&pinned)
	if err != nil {
		return "", fmt.Errorf("serializing candidate registry: %w", err)
	}

	return diffYAML(storedPath, stored, candidateYAML, useColor)
}

// marshalForDiff serializes a registry with the same encoder settings
// Write uses, so the comparison never reports encoding differences.
func marshalForDiff(r *Registry) ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	err := encoder.Encode(r)
	if closeErr := encoder.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return buf.Bytes(), err
}

// diffYAML computes a semantic YAML diff between the stored and
// candidate documents, returning "" when they match.
func diffYAML(storedName string, stored, candidate []byte, useColor bool) (string, error) {
	storedInput, err := parseDocuments(storedName, stored)
	if err != nil {
		return "", fmt.Errorf("parsing stored registry: %w", err)
	}

	candidateInput, err := parseDocuments("candidate", candidate)
	if err != nil {
		return "", fmt.Errorf("parsing candidate registry: %w", err)
	}

	report, err := dyff.CompareInputFiles(storedInput, candidateInput)
	if err != nil {
		return "", fmt.Errorf("comparing registries: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderReport(report, useColor)
}

// parseDocuments parses YAML bytes into a dyff input file.
func parseDocuments(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderReport renders a dyff report to a trimmed string.
func renderReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
