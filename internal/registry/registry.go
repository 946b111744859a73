// Package registry builds and serializes the marketplace registry: the
// searchable index over every template in the tree.
//
// The registry is derived data. Every build recomputes it from scratch by
// scanning the template tree; there is no merge with a previously written
// registry file.
package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/policystack/marketplace/internal/template"
)

// SchemaVersion is the registry document schema version.
const SchemaVersion = "1.0.0"

// Registry is the searchable index over all templates.
type Registry struct {
	// Version is the registry schema version.
	Version string `yaml:"version" json:"version"`

	// Generated is the build timestamp in RFC 3339 form.
	Generated string `yaml:"generated" json:"generated"`

	// Templates lists one summary entry per template, sorted by name.
	Templates []Entry `yaml:"templates" json:"templates"`

	// Categories maps each primary category to the sorted names of the
	// templates declaring it.
	Categories map[string][]string `yaml:"categories" json:"categories"`

	// Tags maps each tag to the sorted names of the templates carrying it.
	Tags map[string][]string `yaml:"tags" json:"tags"`

	// Stats holds aggregate counts over the whole tree.
	Stats Stats `yaml:"stats" json:"stats"`
}

// Entry is the registry's summary record for one template. Keys are
// always serialized, even when the underlying metadata omitted the field,
// so consumers can rely on a fixed document shape.
type Entry struct {
	Name        string                            `yaml:"name" json:"name"`
	DisplayName string                            `yaml:"displayName" json:"displayName"`
	Description string                            `yaml:"description" json:"description"`
	Author      *template.Author                  `yaml:"author" json:"author"`
	Categories  *template.Categories              `yaml:"categories" json:"categories"`
	Tags        []string                          `yaml:"tags" json:"tags"`
	Version     *template.VersionInfo             `yaml:"version" json:"version"`
	Versions    map[string]template.VersionDetail `yaml:"versions" json:"versions"`

	// Features is the count of declared features, not the list itself.
	Features int `yaml:"features" json:"features"`

	Requirements map[string]any `yaml:"requirements" json:"requirements"`
	Complexity   string         `yaml:"complexity" json:"complexity"`

	// Path locates the template inside the marketplace repository,
	// always of the form "templates/<name>".
	Path string `yaml:"path" json:"path"`
}

// Stats aggregates counts across the registry.
type Stats struct {
	// TotalTemplates is the number of indexed templates.
	TotalTemplates int `yaml:"total_templates" json:"total_templates"`

	// TotalVersions is the sum of per-template version counts.
	TotalVersions int `yaml:"total_versions" json:"total_versions"`

	// Authors is the sorted list of distinct author names.
	Authors []string `yaml:"authors" json:"authors"`
}

// New returns an empty registry carrying the schema version and the
// given build timestamp.
func New(generated string) *Registry {
	return &Registry{
		Version:    SchemaVersion,
		Generated:  generated,
		Templates:  []Entry{},
		Categories: map[string][]string{},
		Tags:       map[string][]string{},
		Stats:      Stats{Authors: []string{}},
	}
}

// Load reads a registry document previously written by Write.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", filepath.Base(path), err)
	}

	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", filepath.Base(path), err)
	}

	return &r, nil
}

// EntryFor builds the summary record for one template descriptor.
func EntryFor(m *template.Metadata) Entry {
	// Undeclared tags serialize as an empty list, not null.
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	return Entry{
		Name:         m.Name,
		DisplayName:  m.DisplayName,
		Description:  m.Description,
		Author:       m.Author,
		Categories:   m.Categories,
		Tags:         tags,
		Version:      m.Version,
		Versions:     m.Versions,
		Features:     len(m.Features),
		Requirements: m.Requirements,
		Complexity:   m.Complexity,
		Path:         "templates/" + m.Name,
	}
}

// EntryByName returns the entry with the given name, or nil.
func (r *Registry) EntryByName(name string) *Entry {
	for i := range r.Templates {
		if r.Templates[i].Name == name {
			return &r.Templates[i]
		}
	}
	return nil
}
