// Package clipboard hands digest text to the system clipboard. The
// digest core never touches the clipboard itself; the CLI shell calls
// Write after the core has returned.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeAll is a package-level variable to allow mocking in tests.
var writeAll = clipboard.WriteAll

// Available reports whether a clipboard mechanism exists on this
// platform. When it returns false, callers fall back to letting the
// user copy the printed output manually.
func Available() bool {
	return !clipboard.Unsupported
}

// Write places text on the system clipboard.
func Write(text string) error {
	if !Available() {
		return fmt.Errorf("no clipboard mechanism available on this platform")
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
