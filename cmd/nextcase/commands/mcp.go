package commands

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/erraggy/nextcase/internal/cliutil"
	"github.com/erraggy/nextcase/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It takes no flags;
// configuration comes from NEXTCASE_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: nextcase mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the case rotation tools over MCP on stdio.\n\n")
		cliutil.Writef(fs.Output(), "Tools:\n")
		cliutil.Writef(fs.Output(), "  next_case        rotate one identifier\n")
		cliutil.Writef(fs.Output(), "  inspect_case     classify an identifier and show its words\n")
		cliutil.Writef(fs.Output(), "  rotate_in_file   rotate the identifier at a file location\n")
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  NEXTCASE_ALLOW_FILE_EDITS  (default: true)      false makes rotate_in_file preview only\n")
		cliutil.Writef(fs.Output(), "  NEXTCASE_MAX_FILE_SIZE     (default: 10485760)  largest file rotate_in_file reads, in bytes\n")
	}

	return fs
}

// HandleMCP executes the mcp command and blocks until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
