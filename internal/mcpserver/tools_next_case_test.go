package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCaseTool(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       nextCaseOutput
	}{
		{
			name:       "snake to screaming",
			identifier: "foo_bar",
			want:       nextCaseOutput{Identifier: "foo_bar", Result: "FOO_BAR", Matched: true, From: "snake", To: "screaming_snake"},
		},
		{
			name:       "screaming to camel",
			identifier: "FOO_BAR",
			want:       nextCaseOutput{Identifier: "FOO_BAR", Result: "FooBar", Matched: true, From: "screaming_snake", To: "camel"},
		},
		{
			name:       "camel to snake",
			identifier: "Item2Count",
			want:       nextCaseOutput{Identifier: "Item2Count", Result: "item_2_count", Matched: true, From: "camel", To: "snake"},
		},
		{
			name:       "digits stay digits",
			identifier: "123",
			want:       nextCaseOutput{Identifier: "123", Result: "123", Matched: true, From: "snake", To: "screaming_snake"},
		},
		{
			name:       "whitespace trimmed",
			identifier: "\tuser_id  ",
			want:       nextCaseOutput{Identifier: "user_id", Result: "USER_ID", Matched: true, From: "snake", To: "screaming_snake"},
		},
		{
			name:       "lower camel is unmatched",
			identifier: "fooBar",
			want:       nextCaseOutput{Identifier: "fooBar", Result: "fooBar"},
		},
		{
			name:       "empty is unmatched",
			identifier: "",
			want:       nextCaseOutput{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleNextCase(context.Background(), &mcp.CallToolRequest{}, nextCaseInput{Identifier: tt.identifier})
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.want, output)
		})
	}
}
