package registry

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// popularTagLimit caps the "Popular Tags" line of the summary.
const popularTagLimit = 10

var titleCaser = cases.Title(language.English)

// Summary renders the README-ready Markdown fragment for the indexed
// tree: title, generation date, aggregate counts, the templates grouped
// by category, and the most used tags. BuildIndex must have run first.
func (b *Builder) Summary() string {
	r := b.registry

	var sb strings.Builder
	sb.WriteString("## Available Templates\n")
	sb.WriteString(fmt.Sprintf("*Last updated: %s*\n", b.now().Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("\nTotal templates: **%d** | Total versions: **%d**\n",
		r.Stats.TotalTemplates, r.Stats.TotalVersions))

	sb.WriteString("\n### By Category\n")

	byName := make(map[string]*Entry, len(r.Templates))
	for i := range r.Templates {
		byName[r.Templates[i].Name] = &r.Templates[i]
	}

	for _, category := range sortedKeys(r.Categories) {
		sb.WriteString(fmt.Sprintf("\n#### %s\n", titleCaser.String(category)))
		for _, name := range r.Categories[category] {
			entry := byName[name]
			if entry == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("- **[%s](templates/%s/)** - %s\n",
				entry.DisplayName, name, entry.Description))
		}
	}

	sb.WriteString("\n### Popular Tags\n")

	parts := make([]string, 0, popularTagLimit)
	for _, tag := range popularTags(r.Tags, popularTagLimit) {
		parts = append(parts, fmt.Sprintf("`%s` (%d)", tag, len(r.Tags[tag])))
	}
	sb.WriteString(strings.Join(parts, " | "))

	return sb.String()
}

// popularTags returns up to limit tag names ordered by template count
// descending. Ties break alphabetically so the selection is stable
// across runs.
func popularTags(tags map[string][]string, limit int) []string {
	names := sortedKeys(tags)

	sort.SliceStable(names, func(i, j int) bool {
		return len(tags[names[i]]) > len(tags[names[j]])
	})

	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
