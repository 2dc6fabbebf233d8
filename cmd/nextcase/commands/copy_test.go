package commands

import (
	"errors"
	"testing"

	"github.com/erraggy/nextcase/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	text string
	err  error
}

func (f *fakeSink) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

// useFakeClipboard points HandleCopy at sink for the duration of the test.
func useFakeClipboard(t *testing.T, sink *fakeSink) {
	t.Helper()
	old := newCopier
	newCopier = func() *clipboard.Copier { return &clipboard.Copier{Sink: sink} }
	t.Cleanup(func() { newCopier = old })
}

func TestSetupCopyFlags(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		_, flags := SetupCopyFlags()
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
	})

	t.Run("short flag", func(t *testing.T) {
		fs, flags := SetupCopyFlags()
		require.NoError(t, fs.Parse([]string{"-q", "foo_bar"}))
		assert.True(t, flags.Quiet)
		assert.Equal(t, "foo_bar", fs.Arg(0))
	})

	t.Run("long flag", func(t *testing.T) {
		fs, flags := SetupCopyFlags()
		require.NoError(t, fs.Parse([]string{"--quiet", "foo_bar"}))
		assert.True(t, flags.Quiet)
	})
}

func TestHandleCopy(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCopied string
		wantOut    string
	}{
		{name: "snake", args: []string{"foo_bar"}, wantCopied: "FOO_BAR", wantOut: "FOO_BAR\n"},
		{name: "screaming", args: []string{"FOO_BAR"}, wantCopied: "FooBar", wantOut: "FooBar\n"},
		{name: "camel", args: []string{"FooBar"}, wantCopied: "foo_bar", wantOut: "foo_bar\n"},
		{name: "padded", args: []string{"  user_id \n"}, wantCopied: "USER_ID", wantOut: "USER_ID\n"},
		{name: "no match copies original", args: []string{"fooBar"}, wantCopied: "fooBar", wantOut: "fooBar\n"},
		{name: "blank copies empty", args: []string{"   "}, wantCopied: "", wantOut: "\n"},
		{name: "quiet", args: []string{"-q", "foo_bar"}, wantCopied: "FOO_BAR", wantOut: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{}
			useFakeClipboard(t, sink)

			var err error
			out := captureStdout(t, func() {
				err = HandleCopy(tt.args)
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCopied, sink.text)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}

func TestHandleCopy_Errors(t *testing.T) {
	t.Run("no args", func(t *testing.T) {
		assert.Error(t, HandleCopy([]string{}))
	})

	t.Run("too many args", func(t *testing.T) {
		assert.ErrorContains(t, HandleCopy([]string{"foo", "bar"}), "exactly one variable name")
	})

	t.Run("unknown flag", func(t *testing.T) {
		assert.Error(t, HandleCopy([]string{"--nope", "foo"}))
	})

	t.Run("clipboard failure", func(t *testing.T) {
		useFakeClipboard(t, &fakeSink{err: errors.New("no display")})
		err := HandleCopy([]string{"-q", "foo_bar"})
		assert.ErrorContains(t, err, "no display")
	})
}

func TestHandleCopy_Help(t *testing.T) {
	assert.NoError(t, HandleCopy([]string{"--help"}))
}
