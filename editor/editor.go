package editor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/erraggy/nextcase/caseerrors"
	"github.com/erraggy/nextcase/casing"
	"github.com/erraggy/nextcase/internal/fileutil"
)

// Location addresses an identifier inside a text file.
// All fields are 1-indexed; the identifier spans the rune columns
// [StartColumn, EndColumn) of line Line.
type Location struct {
	Line        int `json:"line"         yaml:"line"`
	StartColumn int `json:"start_column" yaml:"start_column"`
	EndColumn   int `json:"end_column"   yaml:"end_column"`
}

// Validate checks that the location is well formed.
// It does not check the location against any particular file. A start
// column after the end column is valid and addresses empty text.
func (l Location) Validate() error {
	var msg string
	switch {
	case l.Line < 1:
		msg = "line number must be at least 1"
	case l.StartColumn < 1 || l.EndColumn < 1:
		msg = "columns must be at least 1"
	default:
		return nil
	}
	return l.newError(msg)
}

func (l Location) newError(msg string) *caseerrors.LocationError {
	return &caseerrors.LocationError{
		Line:        l.Line,
		StartColumn: l.StartColumn,
		EndColumn:   l.EndColumn,
		Message:     msg,
	}
}

func (l Location) errorf(format string, args ...any) *caseerrors.LocationError {
	return l.newError(fmt.Sprintf(format, args...))
}

// Result describes the outcome of a single edit.
type Result struct {
	// Path is the edited file; empty for in-memory edits
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// Line is the 1-indexed line that was inspected
	Line int `json:"line" yaml:"line"`
	// Original is the text found at the location
	Original string `json:"original" yaml:"original"`
	// Replacement is the rotated identifier; empty when Changed is false
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty"`
	// Changed is true when Original matched a case style and was rotated
	Changed bool `json:"changed" yaml:"changed"`
	// Written is true when the new content was written back to Path
	Written bool `json:"written" yaml:"written"`
	// Content is the full edited content; nil when Changed is false
	Content []byte `json:"-" yaml:"-"`
}

// Editor rotates identifiers in place inside text files.
type Editor struct {
	// DryRun computes the edit without writing the file.
	DryRun bool
	// Logger receives diagnostic output. Defaults to NopLogger.
	Logger Logger
}

// New creates a new Editor with default settings.
func New() *Editor {
	return &Editor{}
}

func (e *Editor) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// Edit rotates the identifier at loc in the file at path.
//
// The whole file is read, the target line is rewritten, and the whole file
// is replaced atomically. When the text at loc matches no case style the
// file is not touched and the Result has Changed false. Line endings and all
// bytes outside the location are preserved.
func (e *Editor) Edit(path string, loc Location) (*Result, error) {
	log := e.logger().With("path", path, "line", loc.Line)

	if err := loc.Validate(); err != nil {
		return nil, withPath(err, path)
	}

	target, err := fileutil.ResolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}
	content, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("editor: reading %s: %w", path, err)
	}

	result, err := e.Apply(content, loc)
	if err != nil {
		return nil, withPath(err, path)
	}
	result.Path = path

	if !result.Changed {
		log.Debug("no case style matched, leaving file unchanged", "text", result.Original)
		return result, nil
	}
	if e.DryRun {
		log.Info("dry run, not writing", "from", result.Original, "to", result.Replacement)
		return result, nil
	}

	if err := fileutil.WriteFileAtomic(target, result.Content, 0); err != nil {
		return nil, fmt.Errorf("editor: writing %s: %w", path, err)
	}
	result.Written = true
	log.Info("rotated identifier", "from", result.Original, "to", result.Replacement)
	return result, nil
}

// Apply rotates the identifier at loc within content and returns the edited
// content in Result.Content. It never touches the filesystem.
//
// Columns past the end of the line are clamped to the line length, the line
// terminator included, so an over-long range yields text that matches no
// style rather than an error. A start column after the end column selects
// empty text, which matches nothing. A line number past the last line is an
// error.
func (e *Editor) Apply(content []byte, loc Location) (*Result, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	lines := splitLines(content)
	if loc.Line > len(lines) {
		return nil, loc.errorf("line %d is past the end of the file (%d lines)", loc.Line, len(lines))
	}

	line := lines[loc.Line-1]
	start := runeOffset(line, loc.StartColumn-1)
	end := max(runeOffset(line, loc.EndColumn-1), start)
	original := string(line[start:end])
	result := &Result{Line: loc.Line, Original: original}

	next, ok, err := casing.Rotate(original)
	if err != nil {
		return nil, fmt.Errorf("editor: rotating %q: %w", original, err)
	}
	if !ok {
		return result, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(content) + len(next) - len(original))
	for i, l := range lines {
		if i != loc.Line-1 {
			buf.Write(l)
			continue
		}
		buf.Write(l[:start])
		buf.WriteString(next)
		buf.Write(l[end:])
	}

	result.Replacement = next
	result.Changed = true
	result.Content = buf.Bytes()
	return result, nil
}

// splitLines splits content after every '\n', keeping the terminators.
// A final line without a terminator is included; empty content has no lines.
func splitLines(content []byte) [][]byte {
	var lines [][]byte
	for len(content) > 0 {
		i := bytes.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}

// runeOffset returns the byte offset of the n-th rune of line, clamped to len(line).
func runeOffset(line []byte, n int) int {
	offset := 0
	for i := 0; i < n && offset < len(line); i++ {
		_, size := utf8.DecodeRune(line[offset:])
		offset += size
	}
	return offset
}

func withPath(err error, path string) error {
	var locErr *caseerrors.LocationError
	if errors.As(err, &locErr) && locErr.Path == "" {
		locErr.Path = path
	}
	return err
}
