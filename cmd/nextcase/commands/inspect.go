package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/nextcase/caseerrors"
	"github.com/erraggy/nextcase/casing"
	"github.com/erraggy/nextcase/internal/cliutil"
)

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	Format string
	Strict bool
}

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
// Returns the FlagSet and an InspectFlags struct with bound flag variables.
func SetupInspectFlags() (*flag.FlagSet, *InspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &InspectFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Strict, "strict", false, "fail when the identifier matches no case style")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: nextcase inspect [flags] <identifier>\n\n")
		cliutil.Writef(fs.Output(), "Show how an identifier is classified, split into words, and rotated.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  nextcase inspect Item2Count\n")
		cliutil.Writef(fs.Output(), "  nextcase inspect --format json 123\n")
		cliutil.Writef(fs.Output(), "  nextcase inspect --strict fooBar   # exits 1\n")
	}

	return fs, flags
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	fs, flags := SetupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one identifier")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	in, err := casing.Inspect(fs.Arg(0))
	if err != nil {
		return err
	}

	if flags.Format == FormatText {
		writeInspection(in)
	} else if err := OutputStructured(in, flags.Format); err != nil {
		return err
	}

	if flags.Strict && !in.Matched {
		return fmt.Errorf("%q: %w", in.Identifier, caseerrors.ErrNoMatch)
	}
	return nil
}

func writeInspection(in *casing.Inspection) {
	cliutil.Writef(os.Stdout, "Identifier: %s\n", in.Identifier)
	if len(in.Candidates) > 0 {
		cliutil.Writef(os.Stdout, "Candidates: %s\n", strings.Join(in.Candidates, ", "))
	}
	if !in.Matched {
		cliutil.Writef(os.Stdout, "Style: none (left unchanged)\n")
		return
	}
	cliutil.Writef(os.Stdout, "Style: %s\n", in.Style)
	cliutil.Writef(os.Stdout, "Words: %q\n", []string(in.Words))
	cliutil.Writef(os.Stdout, "Next: %s (%s)\n", in.Next, in.NextStyle)
}
