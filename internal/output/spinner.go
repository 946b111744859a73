package output

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

type spinnerOptions struct {
	title string
}

// SpinnerOption customizes RunWithSpinner.
type SpinnerOption func(*spinnerOptions)

// WithTitle sets the text shown next to the spinner.
func WithTitle(title string) SpinnerOption {
	return func(o *spinnerOptions) {
		o.title = title
	}
}

// RunWithSpinner runs action while rendering a spinner on stdout. When
// stdout is not a terminal the action runs directly with no decoration,
// keeping piped output clean.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	o := spinnerOptions{title: "Working..."}
	for _, opt := range opts {
		opt(&o)
	}

	if !IsTTY() {
		return action()
	}

	return spinner.New().
		Title(o.title).
		Context(ctx).
		ActionWithErr(func(context.Context) error {
			return action()
		}).
		Run()
}
