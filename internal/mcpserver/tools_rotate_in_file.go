package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/erraggy/nextcase/editor"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type rotateInFileInput struct {
	File        string `json:"file"              jsonschema:"Path to the text file to edit"`
	Line        int    `json:"line"              jsonschema:"1-indexed line number"`
	StartColumn int    `json:"start_column"      jsonschema:"1-indexed column of the first character of the identifier"`
	EndColumn   int    `json:"end_column"        jsonschema:"1-indexed column just past the last character of the identifier"`
	DryRun      bool   `json:"dry_run,omitempty" jsonschema:"Preview the change without writing the file"`
}

type rotateInFileOutput struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Original    string `json:"original"`
	Replacement string `json:"replacement,omitempty"`
	Changed     bool   `json:"changed"`
	Written     bool   `json:"written"`
	NewLine     string `json:"new_line,omitempty"`
}

func handleRotateInFile(_ context.Context, _ *mcp.CallToolRequest, input rotateInFileInput) (*mcp.CallToolResult, rotateInFileOutput, error) {
	if input.File == "" {
		return errResult(fmt.Errorf("file is required")), rotateInFileOutput{}, nil
	}
	loc := editor.Location{Line: input.Line, StartColumn: input.StartColumn, EndColumn: input.EndColumn}
	if err := loc.Validate(); err != nil {
		return errResult(err), rotateInFileOutput{}, nil
	}

	info, err := os.Stat(input.File)
	if err != nil {
		return errResult(err), rotateInFileOutput{}, nil
	}
	if info.IsDir() {
		return errResult(fmt.Errorf("%s is a directory", input.File)), rotateInFileOutput{}, nil
	}
	if info.Size() > cfg.MaxFileSize {
		return errResult(fmt.Errorf("file is %d bytes, larger than the %d byte limit (NEXTCASE_MAX_FILE_SIZE)", info.Size(), cfg.MaxFileSize)), rotateInFileOutput{}, nil
	}

	e := editor.New()
	e.DryRun = input.DryRun || !cfg.AllowFileEdits
	result, err := e.Edit(input.File, loc)
	if err != nil {
		return errResult(err), rotateInFileOutput{}, nil
	}

	output := rotateInFileOutput{
		File:        input.File,
		Line:        result.Line,
		Original:    result.Original,
		Replacement: result.Replacement,
		Changed:     result.Changed,
		Written:     result.Written,
	}
	if result.Changed {
		output.NewLine = editedLine(result.Content, result.Line)
	}
	return nil, output, nil
}

// editedLine returns line n (1-indexed) of content without its terminator.
func editedLine(content []byte, n int) string {
	for i := 1; i < n; i++ {
		next := bytes.IndexByte(content, '\n')
		if next < 0 {
			return ""
		}
		content = content[next+1:]
	}
	if end := bytes.IndexByte(content, '\n'); end >= 0 {
		content = content[:end]
	}
	return string(bytes.TrimSuffix(content, []byte("\r")))
}
