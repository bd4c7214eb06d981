// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs; it
// performs no pricing logic.
package output

import (
	"io"

	"contractor-quote/core/quote"
	apperrors "contractor-quote/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *quote.Result) error
}

// Options control presentation details
type Options struct {
	// Currency is rendered next to amounts
	Currency string

	// ShowDetails includes the per-item cost breakdown
	ShowDetails bool
}

// New returns the formatter for a format name
func New(format Format, opts Options) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{opts: opts}, nil
	case FormatJSON:
		return &jsonFormatter{}, nil
	default:
		return nil, apperrors.Newf(apperrors.TypeInput, "unknown output format: %s", format)
	}
}
