// Package template provides the marketplace template data model and the
// structural validator.
//
// A template is a directory containing metadata.yaml, README.md, a
// versions/ directory (one subdirectory per released version, each with
// a Chart.yaml and values.yaml) and an examples/ directory of stack
// documents.
package template

// Well-known file and directory names inside a template directory.
const (
	// MetadataFile is the template descriptor.
	MetadataFile = "metadata.yaml"

	// ReadmeFile is the template documentation.
	ReadmeFile = "README.md"

	// VersionsDir holds one subdirectory per released version.
	VersionsDir = "versions"

	// ExamplesDir holds example stack documents.
	ExamplesDir = "examples"

	// ChartFile is the chart descriptor inside a version directory.
	ChartFile = "Chart.yaml"

	// ValuesFile is the default values file inside a version directory.
	ValuesFile = "values.yaml"

	// ConvertersDir is the optional converters directory inside a
	// version directory.
	ConvertersDir = "converters"

	// PolicyLibraryDependency is the chart dependency every version
	// must declare.
	PolicyLibraryDependency = "policy-library"
)

// Author identifies who maintains a template.
type Author struct {
	// Name is the author's display name (required).
	Name string `yaml:"name" json:"name"`

	// Email is the author's contact address.
	Email string `yaml:"email,omitempty" json:"email,omitempty"`

	// URL points to the author's homepage or organization.
	URL string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Categories groups a template for registry indexing.
type Categories struct {
	// Primary is the single category used for top-level grouping
	// (required).
	Primary string `yaml:"primary" json:"primary"`

	// Secondary lists additional categories.
	Secondary []string `yaml:"secondary,omitempty" json:"secondary,omitempty"`
}

// VersionInfo declares the released version lineage.
type VersionInfo struct {
	// Latest is the current version. It must be a key in the
	// template's versions map.
	Latest string `yaml:"latest" json:"latest"`
}

// VersionDetail describes one released version of a template.
type VersionDetail struct {
	// Date is the release date.
	Date string `yaml:"date,omitempty" json:"date,omitempty"`

	// PolicyLibrary is the required policy-library version range.
	PolicyLibrary string `yaml:"policyLibrary,omitempty" json:"policyLibrary,omitempty"`

	// OpenShift is the supported OpenShift version range.
	OpenShift string `yaml:"openshift,omitempty" json:"openshift,omitempty"`

	// ACM is the supported Advanced Cluster Management version range.
	ACM string `yaml:"acm,omitempty" json:"acm,omitempty"`

	// Changes lists what changed in this version.
	Changes []string `yaml:"changes,omitempty" json:"changes,omitempty"`
}

// Metadata is a template's descriptor, read from metadata.yaml.
//
// Every field is optional at the type level. The validator reports
// missing required fields as findings instead of failing the parse, and
// the registry builder skips templates whose descriptor does not decode.
type Metadata struct {
	// Name is the unique template identifier.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// DisplayName is the human-readable template name.
	DisplayName string `yaml:"displayName,omitempty" json:"displayName,omitempty"`

	// Description is a one-line summary of the template.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Author identifies the template maintainer.
	Author *Author `yaml:"author,omitempty" json:"author,omitempty"`

	// Categories groups the template for indexing.
	Categories *Categories `yaml:"categories,omitempty" json:"categories,omitempty"`

	// Tags are free-form labels used for the registry tag index.
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`

	// Version declares the latest released version.
	Version *VersionInfo `yaml:"version,omitempty" json:"version,omitempty"`

	// Versions maps version labels to their release details.
	Versions map[string]VersionDetail `yaml:"versions,omitempty" json:"versions,omitempty"`

	// Features lists notable capabilities. The registry stores only
	// the count.
	Features []string `yaml:"features,omitempty" json:"features,omitempty"`

	// Requirements maps platform names to version ranges. The schema is
	// intentionally open; the registry passes it through untouched.
	Requirements map[string]any `yaml:"requirements,omitempty" json:"requirements,omitempty"`

	// Complexity rates how involved the template is to adopt.
	Complexity string `yaml:"complexity,omitempty" json:"complexity,omitempty"`
}
