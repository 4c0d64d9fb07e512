// Package output renders digest reports for display and scripting.
package output

import (
	"context"
	"io"

	"workdigest/pkg/digest"
)

// Formatter renders a digest report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *digest.Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose appends line counts after the digest text.
	Verbose bool
}
