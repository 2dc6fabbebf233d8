package commands

import (
	"encoding/json"
	"testing"

	"github.com/erraggy/nextcase/caseerrors"
	"github.com/erraggy/nextcase/casing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestSetupInspectFlags(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		_, flags := SetupInspectFlags()
		assert.Equal(t, FormatText, flags.Format)
		assert.False(t, flags.Strict)
	})

	t.Run("parse flags", func(t *testing.T) {
		fs, flags := SetupInspectFlags()
		require.NoError(t, fs.Parse([]string{"-f", "yaml", "--strict", "FooBar"}))
		assert.Equal(t, FormatYAML, flags.Format)
		assert.True(t, flags.Strict)
		assert.Equal(t, "FooBar", fs.Arg(0))
	})
}

func TestHandleInspect_Text(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleInspect([]string{"Item2Count"})
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Identifier: Item2Count\n")
	assert.Contains(t, out, "Candidates: camel\n")
	assert.Contains(t, out, "Style: camel\n")
	assert.Contains(t, out, `Words: ["item" "2" "count"]`)
	assert.Contains(t, out, "Next: item_2_count (snake)\n")
}

func TestHandleInspect_NoMatchText(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleInspect([]string{"fooBar"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Style: none (left unchanged)")
	assert.NotContains(t, out, "Next:")
}

func TestHandleInspect_JSON(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleInspect([]string{"--format", "json", "123"})
	})
	require.NoError(t, err)

	var got casing.Inspection
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Matched)
	assert.Equal(t, "snake", got.Style)
	assert.Equal(t, []string{"snake", "screaming_snake"}, got.Candidates)
	assert.Equal(t, "123", got.Next)
}

func TestHandleInspect_YAML(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleInspect([]string{"--format", "yaml", "foo_bar"})
	})
	require.NoError(t, err)

	var got casing.Inspection
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "FOO_BAR", got.Next)
	assert.Equal(t, "screaming_snake", got.NextStyle)
	assert.Equal(t, casing.Words{"foo", "bar"}, got.Words)
}

func TestHandleInspect_Strict(t *testing.T) {
	var err error
	_ = captureStdout(t, func() {
		err = HandleInspect([]string{"--strict", "foo-bar"})
	})
	assert.ErrorIs(t, err, caseerrors.ErrNoMatch)

	_ = captureStdout(t, func() {
		err = HandleInspect([]string{"--strict", "foo_bar"})
	})
	assert.NoError(t, err)
}

func TestHandleInspect_Errors(t *testing.T) {
	t.Run("no args", func(t *testing.T) {
		assert.Error(t, HandleInspect([]string{}))
	})

	t.Run("bad format", func(t *testing.T) {
		err := HandleInspect([]string{"--format", "xml", "foo"})
		assert.ErrorIs(t, err, caseerrors.ErrConfig)
	})
}

func TestHandleInspect_Help(t *testing.T) {
	assert.NoError(t, HandleInspect([]string{"--help"}))
}
