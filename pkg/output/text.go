package output

import (
	"context"
	"fmt"
	"io"

	"workdigest/pkg/digest"
)

// TextFormatter writes the digest text verbatim, so the output can be
// copied as-is.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(_ context.Context, report *digest.Report, w io.Writer) error {
	if _, err := fmt.Fprintln(w, report.Digest); err != nil {
		return err
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "\n%d line(s) read, %d item(s), %d dropped\n",
			report.TotalLines, len(report.Items), report.Dropped)
	}

	return nil
}
