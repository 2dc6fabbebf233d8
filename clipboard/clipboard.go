// Package clipboard copies the rotated form of an identifier to the system
// clipboard.
package clipboard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/erraggy/nextcase/casing"
)

// Sink receives the text to place on the clipboard.
type Sink interface {
	WriteAll(text string) error
}

// SystemSink writes to the operating system clipboard.
// It needs pbcopy on macOS, xclip, xsel, or wl-copy on Linux, and nothing
// extra on Windows.
type SystemSink struct{}

// WriteAll implements Sink.
func (SystemSink) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}

var _ Sink = SystemSink{}

// Copier rotates identifiers and copies the result to a Sink.
type Copier struct {
	// Sink receives the copied text. Defaults to SystemSink.
	Sink Sink
}

// New creates a Copier writing to the system clipboard.
func New() *Copier {
	return &Copier{Sink: SystemSink{}}
}

// Copy rotates input and copies the outcome, returning the copied text.
//
// Surrounding whitespace is trimmed first. Blank input copies the empty
// string. Input that matches no case style is copied unchanged (trimmed),
// so Copy never fails on a miss. A parse error copies nothing.
func (c *Copier) Copy(input string) (string, error) {
	text := strings.TrimSpace(input)
	if text != "" {
		next, ok, err := casing.Rotate(text)
		if err != nil {
			return "", fmt.Errorf("clipboard: rotating %q: %w", text, err)
		}
		if ok {
			text = next
		}
	}

	sink := c.Sink
	if sink == nil {
		sink = SystemSink{}
	}
	if err := sink.WriteAll(text); err != nil {
		return "", fmt.Errorf("clipboard: writing: %w", err)
	}
	return text, nil
}
