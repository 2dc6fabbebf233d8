package mcpserver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error returns empty string",
			err:  nil,
			want: "",
		},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("open /home/user/project/main.go: no such file or directory"),
			want: "open <path>: no such file or directory",
		},
		{
			name: "preserves non-path content",
			err:  fmt.Errorf("camel parse error in \"2Count\" at position 0"),
			want: "camel parse error in \"2Count\" at position 0",
		},
		{
			name: "strips multiple paths",
			err:  fmt.Errorf("rename /tmp/a.go to /tmp/b.go failed"),
			want: "rename <path> to <path> failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("reading /var/src/lib.rs: permission denied"))

	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "reading <path>: permission denied", text.Text)
}
