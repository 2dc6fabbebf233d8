package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/nextcase/clipboard"
	"github.com/erraggy/nextcase/internal/cliutil"
)

// newCopier is replaced in tests to avoid touching the real clipboard.
var newCopier = clipboard.New

// CopyFlags contains flags for the copy command
type CopyFlags struct {
	Quiet bool
}

// SetupCopyFlags creates and configures a FlagSet for the copy command.
// Returns the FlagSet and a CopyFlags struct with bound flag variables.
func SetupCopyFlags() (*flag.FlagSet, *CopyFlags) {
	fs := flag.NewFlagSet("copy", flag.ContinueOnError)
	flags := &CopyFlags{}

	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: do not print the copied text")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: do not print the copied text")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: nextcase copy [flags] <variable_name>\n\n")
		cliutil.Writef(fs.Output(), "Rotate an identifier to its next case style and copy it to the clipboard.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nRotation:\n")
		cliutil.Writef(fs.Output(), "  snake_case -> SCREAMING_SNAKE_CASE -> CamelCase -> snake_case\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Surrounding whitespace is trimmed\n")
		cliutil.Writef(fs.Output(), "  - An identifier in no known style is copied unchanged\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  nextcase copy user_id      # copies USER_ID\n")
		cliutil.Writef(fs.Output(), "  nextcase copy -q UserId    # copies user_id silently\n")
	}

	return fs, flags
}

// HandleCopy executes the copy command
func HandleCopy(args []string) error {
	fs, flags := SetupCopyFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("copy command requires exactly one variable name")
	}

	copied, err := newCopier().Copy(fs.Arg(0))
	if err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Writeln(os.Stdout, copied)
	}
	return nil
}
