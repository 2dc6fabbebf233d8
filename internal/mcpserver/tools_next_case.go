package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/nextcase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type nextCaseInput struct {
	Identifier string `json:"identifier" jsonschema:"The identifier to rotate, e.g. user_id"`
}

type nextCaseOutput struct {
	Identifier string `json:"identifier"`
	Result     string `json:"result"`
	Matched    bool   `json:"matched"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
}

func handleNextCase(_ context.Context, _ *mcp.CallToolRequest, input nextCaseInput) (*mcp.CallToolResult, nextCaseOutput, error) {
	id := strings.TrimSpace(input.Identifier)
	output := nextCaseOutput{Identifier: id, Result: id}

	style, ok := casing.Detect(id)
	if !ok {
		return nil, output, nil
	}

	next, _, err := casing.Rotate(id)
	if err != nil {
		return errResult(err), nextCaseOutput{}, nil
	}

	output.Result = next
	output.Matched = true
	output.From = style.String()
	output.To = style.Next().String()
	return nil, output, nil
}
