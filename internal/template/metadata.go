package template

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMetadata reads and decodes a template descriptor.
//
// Decoding is typed: a descriptor whose fields do not match the Metadata
// shape (for example an author given as a plain string) fails here. The
// registry builder treats that as a skip, the validator reports it
// field by field from the raw document instead.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var m Metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	return &m, nil
}

// VersionCount returns the number of released versions.
func (m *Metadata) VersionCount() int {
	return len(m.Versions)
}

// PrimaryCategory returns the primary category, or "" when unset.
func (m *Metadata) PrimaryCategory() string {
	if m.Categories == nil {
		return ""
	}
	return m.Categories.Primary
}

// AuthorName returns the author name, or "" when unset.
func (m *Metadata) AuthorName() string {
	if m.Author == nil {
		return ""
	}
	return m.Author.Name
}

// LatestVersion returns the declared latest version, or "" when unset.
func (m *Metadata) LatestVersion() string {
	if m.Version == nil {
		return ""
	}
	return m.Version.Latest
}
