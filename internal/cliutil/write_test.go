package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d words", "foo_bar", 2)
	assert.Equal(t, "foo_bar: 2 words", buf.String())
}

func TestWriteln(t *testing.T) {
	var buf bytes.Buffer
	Writeln(&buf, "FOO_BAR")
	assert.Equal(t, "FOO_BAR\n", buf.String())
}

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(errorWriter{}, "This will fail")
	})
}
