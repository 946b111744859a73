package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/sets"

	oerrors "github.com/policystack/marketplace/internal/errors"
	"github.com/policystack/marketplace/internal/output"
	"github.com/policystack/marketplace/internal/template"
)

// Builder accumulates one registry build: scan the template tree, sort
// the indexes, write the output documents. A Builder is built fresh per
// run and never reused, so every build starts from an empty registry.
type Builder struct {
	templatesDir string
	outputPath   string

	registry *Registry
	authors  sets.Set[string]

	// now stamps Registry.Generated; overridable in tests.
	now func() time.Time
}

// NewBuilder creates a builder for one run over templatesDir, writing
// the registry to outputPath (YAML) and its JSON sibling.
func NewBuilder(templatesDir, outputPath string) *Builder {
	return &Builder{
		templatesDir: templatesDir,
		outputPath:   outputPath,
		authors:      sets.New[string](),
		now:          time.Now,
	}
}

// Registry returns the accumulated registry. Complete only after Scan
// and BuildIndex have run.
func (b *Builder) Registry() *Registry {
	return b.registry
}

// Scan enumerates the template tree and processes every template that
// carries a metadata descriptor.
//
// A missing templates root aborts the run. A single broken template does
// not: templates without a descriptor are skipped with a warning, and
// descriptors that fail to decode are skipped with an error, so one bad
// template never takes down the whole build.
func (b *Builder) Scan() error {
	b.registry = New(b.now().Format(time.RFC3339))

	entries, err := os.ReadDir(b.templatesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError(
				fmt.Sprintf("templates directory not found: %s", b.templatesDir),
				b.templatesDir,
				"Pass --templates-dir or set templatesDir in the configuration.",
			)
		}
		return fmt.Errorf("reading templates directory: %w", err)
	}

	output.Info("scanning templates", "dir", b.templatesDir)

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		metadataFile := filepath.Join(b.templatesDir, entry.Name(), template.MetadataFile)
		if _, err := os.Stat(metadataFile); err != nil {
			output.Warn("no metadata.yaml, skipping", "template", entry.Name())
			continue
		}

		output.Debug("found template", "name", entry.Name())
		b.process(entry.Name(), metadataFile)
	}

	return nil
}

// process folds one template descriptor into the registry.
func (b *Builder) process(dirName, metadataFile string) {
	tmplLog := output.TemplateLogger(dirName)

	m, err := template.LoadMetadata(metadataFile)
	if err != nil {
		tmplLog.Error("skipping template: invalid metadata", "error", err)
		return
	}

	b.registry.Templates = append(b.registry.Templates, EntryFor(m))

	if primary := m.PrimaryCategory(); primary != "" {
		b.registry.Categories[primary] = append(b.registry.Categories[primary], m.Name)
	}

	for _, tag := range m.Tags {
		b.registry.Tags[tag] = append(b.registry.Tags[tag], m.Name)
	}

	b.registry.Stats.TotalTemplates++
	b.registry.Stats.TotalVersions += m.VersionCount()

	if author := m.AuthorName(); author != "" {
		b.authors.Insert(author)
	}
}

// BuildIndex sorts the accumulated registry into its canonical order and
// materializes the author set as a sorted list. It must run after Scan
// has seen every template and before Write.
func (b *Builder) BuildIndex() {
	sort.SliceStable(b.registry.Templates, func(i, j int) bool {
		return b.registry.Templates[i].Name < b.registry.Templates[j].Name
	})

	for _, names := range b.registry.Categories {
		sort.Strings(names)
	}
	for _, names := range b.registry.Tags {
		sort.Strings(names)
	}

	b.registry.Stats.Authors = sets.List(b.authors)

	output.Info("built indexes",
		"templates", b.registry.Stats.TotalTemplates,
		"versions", b.registry.Stats.TotalVersions,
		"categories", len(b.registry.Categories),
		"tags", len(b.registry.Tags),
	)
}

// Write serializes the registry twice: block-style YAML to the output
// path, and an equivalent JSON document to the sibling path with a .json
// extension. Both files are overwritten unconditionally.
func (b *Builder) Write() error {
	if err := writeYAML(b.registry, b.outputPath); err != nil {
		return fmt.Errorf("writing YAML registry: %w", err)
	}
	output.Info("wrote registry", "path", b.outputPath)

	jsonPath := JSONPath(b.outputPath)
	if err := writeJSON(b.registry, jsonPath); err != nil {
		return fmt.Errorf("writing JSON registry: %w", err)
	}
	output.Info("wrote registry", "path", jsonPath)

	return nil
}

// Run executes a full build: scan, index, write. It returns the
// README-ready summary fragment for the tree it indexed.
func (b *Builder) Run() (string, error) {
	if err := b.Scan(); err != nil {
		return "", err
	}

	b.BuildIndex()

	if err := b.Write(); err != nil {
		return "", err
	}

	return b.Summary(), nil
}

// JSONPath returns the sibling JSON path for a registry output path,
// swapping the extension for .json.
func JSONPath(outputPath string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".json"
}

func writeYAML(r *Registry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)

	err = encoder.Encode(r)
	if closeErr := encoder.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func writeJSON(r *Registry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")

	err = encoder.Encode(r)
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
