package template

import "fmt"

// Report collects the findings of one template validation run.
//
// Findings are grouped by severity and kept in the order the checks
// produced them. A report is ephemeral: it is rendered once and never
// persisted.
type Report struct {
	// Path is the template directory that was validated.
	Path string

	// Errors are findings that fail validation.
	Errors []string

	// Warnings are findings that should be fixed but do not fail
	// validation.
	Warnings []string

	// Info are neutral observations about the template.
	Info []string
}

// NewReport creates an empty report for the given template directory.
func NewReport(path string) *Report {
	return &Report{Path: path}
}

// Valid reports whether the template passed, that is, produced no
// errors. Warnings never fail validation.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Report) errorf(format string, a ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, a...))
}

func (r *Report) warnf(format string, a ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, a...))
}

func (r *Report) infof(format string, a ...any) {
	r.Info = append(r.Info, fmt.Sprintf(format, a...))
}
