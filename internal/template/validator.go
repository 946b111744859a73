package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/policystack/marketplace/internal/errors"
)

// requiredMetadataFields are the descriptor fields whose absence is an
// error.
var requiredMetadataFields = []string{
	"name", "displayName", "description", "author",
	"categories", "version", "versions",
}

// requiredVersionFields are the per-version detail fields whose absence
// is a warning.
var requiredVersionFields = []string{"date", "policyLibrary", "openshift", "acm", "changes"}

// recommendedMetadataFields are optional descriptor fields whose absence
// is a warning.
var recommendedMetadataFields = []string{"tags", "features", "requirements", "complexity"}

// Validator checks one template directory against the marketplace
// contract. It never mutates the filesystem.
//
// Checks are independent: a failed check records a finding and the
// remaining checks still run, so one pass reports everything at once.
type Validator struct {
	templatePath string
	report       *Report
}

// NewValidator creates a validator for the given template directory.
func NewValidator(templatePath string) *Validator {
	return &Validator{
		templatePath: templatePath,
		report:       NewReport(templatePath),
	}
}

// Validate runs every check and returns the collected findings.
func (v *Validator) Validate() *Report {
	v.validateStructure()

	if _, err := os.Stat(filepath.Join(v.templatePath, MetadataFile)); err == nil {
		v.validateMetadata()
	}

	v.validateVersions()
	v.validateExamples()

	return v.report
}

// validateStructure checks the required top-level files and directories.
func (v *Validator) validateStructure() {
	for _, file := range []string{MetadataFile, ReadmeFile} {
		if _, err := os.Stat(filepath.Join(v.templatePath, file)); err != nil {
			v.report.errorf("Missing required file: %s", file)
		}
	}

	for _, dir := range []string{VersionsDir, ExamplesDir} {
		if _, err := os.Stat(filepath.Join(v.templatePath, dir)); err != nil {
			v.report.errorf("Missing required directory: %s", dir)
		}
	}
}

// validateMetadata checks the descriptor content field by field.
//
// The descriptor is inspected as a raw document rather than through the
// typed Metadata record so that one malformed field (say, an author
// given as a string) is reported as exactly one finding while every
// other check still runs.
func (v *Validator) validateMetadata() {
	data, err := os.ReadFile(filepath.Join(v.templatePath, MetadataFile))
	if err != nil {
		v.report.errorf("Error reading metadata.yaml: %v", err)
		return
	}

	var metadata map[string]any
	if err := yaml.Unmarshal(data, &metadata); err != nil {
		v.report.errorf("Invalid YAML in metadata.yaml: %v", err)
		return
	}

	for _, field := range requiredMetadataFields {
		if _, ok := metadata[field]; !ok {
			v.report.errorf("metadata.yaml missing required field: %s", field)
		}
	}

	if raw, ok := metadata["author"]; ok {
		author, isMap := raw.(map[string]any)
		switch {
		case !isMap:
			v.report.errorf("author must be a dictionary")
		default:
			if _, ok := author["name"]; !ok {
				v.report.errorf("author must have a name field")
			}
		}
	}

	if raw, ok := metadata["categories"]; ok {
		categories, isMap := raw.(map[string]any)
		if !isMap {
			v.report.errorf("categories must have a primary category")
		} else if _, ok := categories["primary"]; !ok {
			v.report.errorf("categories must have a primary category")
		}
	}

	latest := v.validateVersionInfo(metadata)
	v.validateVersionEntries(metadata)

	for _, field := range recommendedMetadataFields {
		if _, ok := metadata[field]; !ok {
			v.report.warnf("Consider adding recommended field: %s", field)
		}
	}

	v.report.infof("Template name: %v", metadata["name"])
	v.report.infof("Latest version: %v", latest)
	if versions, ok := metadata["versions"].(map[string]any); ok {
		v.report.infof("Total versions: %d", len(versions))
	} else {
		v.report.infof("Total versions: 0")
	}
}

// validateVersionInfo checks the version block and returns the declared
// latest version for the info line (nil when undeclared).
func (v *Validator) validateVersionInfo(metadata map[string]any) any {
	raw, ok := metadata["version"]
	if !ok {
		return nil
	}

	version, isMap := raw.(map[string]any)
	if !isMap {
		v.report.errorf("version must specify latest")
		return nil
	}

	latest := version["latest"]
	latestStr := stringValue(latest)
	if latestStr == "" {
		v.report.errorf("version must specify latest")
		return latest
	}

	// Latest must point at a declared version.
	if versions, ok := metadata["versions"].(map[string]any); ok {
		if _, found := versions[latestStr]; !found {
			v.report.errorf("Latest version %s not found in versions", latestStr)
		}
	}

	return latest
}

// validateVersionEntries checks that every declared version carries its
// detail fields.
func (v *Validator) validateVersionEntries(metadata map[string]any) {
	versions, ok := metadata["versions"].(map[string]any)
	if !ok {
		return
	}

	for _, version := range sortedKeys(versions) {
		details, isMap := versions[version].(map[string]any)
		if !isMap {
			v.report.errorf("Version %s must have details", version)
			continue
		}

		for _, field := range requiredVersionFields {
			if _, ok := details[field]; !ok {
				v.report.warnf("Version %s missing field: %s", version, field)
			}
		}
	}
}

// validateVersions checks the version directories and their chart
// descriptors.
func (v *Validator) validateVersions() {
	versionsDir := filepath.Join(v.templatePath, VersionsDir)

	entries, err := os.ReadDir(versionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			// Already reported by validateStructure.
			return
		}
		v.report.errorf("Error reading versions/: %v", err)
		return
	}

	var versionDirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			versionDirs = append(versionDirs, entry.Name())
		}
	}

	if len(versionDirs) == 0 {
		v.report.errorf("No version directories found in versions/")
		return
	}

	for _, version := range versionDirs {
		versionDir := filepath.Join(versionsDir, version)

		for _, file := range []string{ChartFile, ValuesFile} {
			if _, err := os.Stat(filepath.Join(versionDir, file)); err != nil {
				v.report.errorf("Version %s missing required file: %s", version, file)
			}
		}

		chartFile := filepath.Join(versionDir, ChartFile)
		if _, err := os.Stat(chartFile); err == nil {
			v.validateChart(version, chartFile)
		}

		if _, err := os.Stat(filepath.Join(versionDir, ConvertersDir)); err != nil {
			v.report.warnf("Version %s: No converters directory", version)
		}

		v.report.infof("Found version: %s", version)
	}
}

// validateChart checks one version's chart descriptor for the
// policy-library dependency.
func (v *Validator) validateChart(version, chartFile string) {
	chart, err := LoadChart(chartFile)
	if err != nil {
		v.report.errorf("Version %s: Invalid Chart.yaml: %v", version, err)
		return
	}

	if chart.Dependencies == nil {
		v.report.warnf("Version %s: Chart.yaml missing dependencies", version)
		return
	}

	if !chart.HasDependency(PolicyLibraryDependency) {
		v.report.errorf("Version %s: Missing policy-library dependency", version)
	}
}

// validateExamples checks the example stack documents.
func (v *Validator) validateExamples() {
	examplesDir := filepath.Join(v.templatePath, ExamplesDir)

	entries, err := os.ReadDir(examplesDir)
	if err != nil {
		if os.IsNotExist(err) {
			// Already reported by validateStructure.
			return
		}
		v.report.errorf("Error reading examples/: %v", err)
		return
	}

	exampleFiles := yamlFiles(entries)
	if len(exampleFiles) == 0 {
		v.report.warnf("No example files found in examples/")
		return
	}

	for _, name := range exampleFiles {
		v.validateExample(name, filepath.Join(examplesDir, name))
	}
}

// validateExample checks one example file for the stack structure.
func (v *Validator) validateExample(name, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		v.report.errorf("Example %s: Error reading file: %v", name, err)
		return
	}

	var example any
	if err := yaml.Unmarshal(data, &example); err != nil {
		v.report.errorf("Example %s: Invalid YAML: %v", name, err)
		return
	}

	if doc, ok := example.(map[string]any); !ok {
		v.report.errorf("Example %s: Not a valid YAML dictionary", name)
	} else if _, ok := doc["stack"]; !ok {
		v.report.warnf("Example %s: Missing 'stack' key", name)
	}

	v.report.infof("Found example: %s", name)
}

// ValidateAll validates every non-hidden template directory under the
// templates root, returning one report per template in name order.
func ValidateAll(templatesDir string) ([]*Report, error) {
	entries, err := os.ReadDir(templatesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("templates directory not found: %s", templatesDir),
				templatesDir,
				"Pass --templates-dir or set templatesDir in the configuration.",
			)
		}
		return nil, fmt.Errorf("reading templates directory: %w", err)
	}

	var reports []*Report
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		reports = append(reports, NewValidator(filepath.Join(templatesDir, entry.Name())).Validate())
	}

	return reports, nil
}

// stringValue renders a raw document value for key lookups and messages.
// Nil and empty values render as "" so they read as unspecified.
func stringValue(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// sortedKeys returns the map keys in ascending order so findings come
// out deterministically.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// yamlFiles returns directory entries with a YAML extension, .yaml files
// first, each group in name order.
func yamlFiles(entries []os.DirEntry) []string {
	var yamls, ymls []string
	for _, entry := range entries {
		switch filepath.Ext(entry.Name()) {
		case ".yaml":
			yamls = append(yamls, entry.Name())
		case ".yml":
			ymls = append(ymls, entry.Name())
		}
	}
	return append(yamls, ymls...)
}
