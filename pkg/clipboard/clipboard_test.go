package clipboard

import (
	"errors"
	"testing"
)

func TestWrite_UsesWriter(t *testing.T) {
	if !Available() {
		t.Skip("no clipboard mechanism on this platform")
	}

	var got string
	orig := writeAll
	writeAll = func(text string) error {
		got = text
		return nil
	}
	defer func() { writeAll = orig }()

	if err := Write("digest text"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got != "digest text" {
		t.Errorf("written text = %q, want %q", got, "digest text")
	}
}

func TestWrite_WrapsError(t *testing.T) {
	if !Available() {
		t.Skip("no clipboard mechanism on this platform")
	}

	orig := writeAll
	writeAll = func(string) error {
		return errors.New("xclip not found")
	}
	defer func() { writeAll = orig }()

	err := Write("digest text")
	if err == nil {
		t.Fatal("Write() expected error")
	}
}
