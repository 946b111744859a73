// Package config provides configuration loading and management.
package config

// Default values applied when neither file, environment, nor flag sets
// a field.
const (
	// DefaultTemplatesDir is the directory scanned for templates.
	DefaultTemplatesDir = "templates"

	// DefaultOutput is the registry file written by `psm registry build`.
	DefaultOutput = "registry.yaml"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// Config represents the psm CLI configuration.
// Loaded from ~/.psm/config.yaml; environment variables (PSM_*) take
// precedence over file values, and command flags over both.
type Config struct {
	// TemplatesDir is the directory scanned for marketplace templates.
	// Env: PSM_TEMPLATES_DIR, Default: "templates"
	TemplatesDir string `json:"templatesDir,omitempty"`

	// Output is the registry file written by `psm registry build`.
	// The JSON mirror is written next to it.
	// Env: PSM_OUTPUT, Default: "registry.yaml"
	Output string `json:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `psm config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		TemplatesDir: DefaultTemplatesDir,
		Output:       DefaultOutput,
	}
}

// WithDefaults returns a copy of the config with empty fields replaced
// by their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.TemplatesDir == "" {
		out.TemplatesDir = DefaultTemplatesDir
	}
	if out.Output == "" {
		out.Output = DefaultOutput
	}

	return &out
}

// DefaultConfigTemplate is the initial config file written by
// `psm config init`.
const DefaultConfigTemplate = `# psm configuration
#
# Environment variables (PSM_*) take precedence over values in this
# file, and command flags take precedence over both.

# Directory scanned for marketplace templates.
templatesDir: templates

# Registry file written by 'psm registry build'. A JSON mirror is
# written next to it.
output: registry.yaml

log:
  # Show timestamps in log output.
  timestamps: true
`
