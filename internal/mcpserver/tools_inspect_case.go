package mcpserver

import (
	"context"

	"github.com/erraggy/nextcase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inspectCaseInput struct {
	Identifier string `json:"identifier" jsonschema:"The identifier to classify"`
}

func handleInspectCase(_ context.Context, _ *mcp.CallToolRequest, input inspectCaseInput) (*mcp.CallToolResult, casing.Inspection, error) {
	in, err := casing.Inspect(input.Identifier)
	if err != nil {
		return errResult(err), casing.Inspection{}, nil
	}
	return nil, *in, nil
}
