package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table wraps lipgloss table rendering with the CLI house style.
type Table struct {
	inner *table.Table
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)

	return &Table{inner: t}
}

// Row appends a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.inner.Row(cells...)
	return t
}

// String renders the table.
func (t *Table) String() string {
	return t.inner.String()
}

// FileEntry is one line of a created-files listing.
type FileEntry struct {
	Path        string
	Description string
}

// RenderFileTree renders file paths with their descriptions aligned at
// the given column.
func RenderFileTree(files []FileEntry, alignColumn int) string {
	var b strings.Builder
	for _, f := range files {
		b.WriteString(f.Path)

		padding := alignColumn - len(f.Path)
		if padding < 1 {
			padding = 1
		}
		b.WriteString(strings.Repeat(" ", padding))

		b.WriteString(f.Description)
		b.WriteString("\n")
	}
	return b.String()
}
