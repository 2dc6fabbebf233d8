// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes nextcase case rotation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/nextcase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `nextcase MCP server: rotates identifiers through snake_case -> SCREAMING_SNAKE_CASE -> CamelCase -> snake_case.

Identifiers matching none of the three styles (for example lowerCamel or kebab-case) are reported as unmatched and left unchanged. Use inspect_case to see why.

Configuration: set NEXTCASE_* environment variables in your MCP client config.
- NEXTCASE_ALLOW_FILE_EDITS (default: true): when false, rotate_in_file only previews
- NEXTCASE_MAX_FILE_SIZE (default: 10485760): largest file rotate_in_file reads, in bytes`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "nextcase", Version: nextcase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "next_case",
		Description: "Rotate an identifier to the next case style: snake_case becomes SCREAMING_SNAKE_CASE, SCREAMING_SNAKE_CASE becomes CamelCase, CamelCase becomes snake_case. Surrounding whitespace is trimmed. Identifiers in no style are returned unchanged with matched=false.",
	}, handleNextCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect_case",
		Description: "Classify an identifier without changing anything. Returns every matching style in cycle order, the style used for rotation, the parsed words, and the rotated result. Use it to explain why an identifier was not rotated.",
	}, handleInspectCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rotate_in_file",
		Description: "Rotate the identifier at a location of a text file and write the file back. line, start_column and end_column are 1-indexed; the identifier spans [start_column, end_column) counted in characters. Use dry_run=true to preview. The file is not touched when the text at the location matches no case style. Writes are disabled when NEXTCASE_ALLOW_FILE_EDITS=false.",
	}, handleRotateInFile)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
