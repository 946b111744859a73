package template

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Chart is the subset of a Helm chart descriptor the validator cares
// about.
type Chart struct {
	// APIVersion is the chart API version.
	APIVersion string `json:"apiVersion,omitempty"`

	// Name is the chart name.
	Name string `json:"name,omitempty"`

	// Version is the chart version.
	Version string `json:"version,omitempty"`

	// Dependencies lists chart dependencies. A nil slice means the
	// descriptor did not declare a dependencies key at all.
	Dependencies []ChartDependency `json:"dependencies,omitempty"`
}

// ChartDependency is one entry of a chart's dependencies list.
type ChartDependency struct {
	// Name is the dependency chart name.
	Name string `json:"name"`

	// Version is the dependency version range.
	Version string `json:"version,omitempty"`

	// Repository is the dependency chart repository.
	Repository string `json:"repository,omitempty"`
}

// LoadChart reads and decodes a Chart.yaml file.
func LoadChart(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}

	var c Chart
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing chart: %w", err)
	}

	return &c, nil
}

// HasDependency reports whether the chart declares a dependency with the
// given name.
func (c *Chart) HasDependency(name string) bool {
	for _, dep := range c.Dependencies {
		if dep.Name == name {
			return true
		}
	}
	return false
}
