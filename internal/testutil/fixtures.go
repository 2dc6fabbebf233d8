// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Triple is one well-formed identifier written in each style of the cycle.
type Triple struct {
	Snake          string
	ScreamingSnake string
	Camel          string
}

// Triples returns identifiers that survive a full rotation unchanged.
// Words are letters only and at least two runes long, so no form is
// ambiguous between styles.
func Triples() []Triple {
	return []Triple{
		{Snake: "foo_bar", ScreamingSnake: "FOO_BAR", Camel: "FooBar"},
		{Snake: "user_id", ScreamingSnake: "USER_ID", Camel: "UserId"},
		{Snake: "max_retry_count", ScreamingSnake: "MAX_RETRY_COUNT", Camel: "MaxRetryCount"},
		{Snake: "name", ScreamingSnake: "NAME", Camel: "Name"},
		{Snake: "naïve_café", ScreamingSnake: "NAÏVE_CAFÉ", Camel: "NaïveCafé"},
	}
}

// WriteTempFile writes content to name inside a fresh temporary directory.
// Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return path
}

// ReadFile returns the content of path as a string, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}

	return string(data)
}
