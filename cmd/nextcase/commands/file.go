package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/nextcase/caseerrors"
	"github.com/erraggy/nextcase/editor"
	"github.com/erraggy/nextcase/internal/cliutil"
	"go.uber.org/zap"
)

// FileFlags contains flags for the file command
type FileFlags struct {
	DryRun    bool
	Verbose   bool
	LogFormat string
}

// SetupFileFlags creates and configures a FlagSet for the file command.
// Returns the FlagSet and a FileFlags struct with bound flag variables.
func SetupFileFlags() (*flag.FlagSet, *FileFlags) {
	fs := flag.NewFlagSet("file", flag.ContinueOnError)
	flags := &FileFlags{}

	fs.BoolVar(&flags.DryRun, "dry-run", false, "print the edited line instead of writing the file")
	fs.BoolVar(&flags.DryRun, "n", false, "print the edited line instead of writing the file")
	fs.BoolVar(&flags.Verbose, "v", false, "log each step to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log each step to stderr")
	fs.StringVar(&flags.LogFormat, "log-format", FormatText, "verbose log format: text or json")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: nextcase file [flags] <file> <line_number> <start_column> <end_column>\n\n")
		cliutil.Writef(fs.Output(), "Rotate the identifier at a location of a text file, in place.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nLocation:\n")
		cliutil.Writef(fs.Output(), "  Line and columns are 1-indexed. The identifier spans columns\n")
		cliutil.Writef(fs.Output(), "  [start_column, end_column), counted in characters.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  nextcase file main.go 12 5 12\n")
		cliutil.Writef(fs.Output(), "  nextcase file --dry-run -v lib.rs 3 9 20\n")
		cliutil.Writef(fs.Output(), "  nextcase file -v --log-format json main.go 12 5 12 2> edit.log\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Identifier rotated, or left alone because it matched no style\n")
		cliutil.Writef(fs.Output(), "  1    Bad location, unreadable file, or failed write\n")
	}

	return fs, flags
}

// HandleFile executes the file command
func HandleFile(args []string) error {
	fs, flags := SetupFileFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 4 {
		fs.Usage()
		return fmt.Errorf("file command requires a file path, line number, start column, and end column")
	}

	loc, err := parseLocation(fs.Arg(1), fs.Arg(2), fs.Arg(3))
	if err != nil {
		return err
	}

	e := editor.New()
	e.DryRun = flags.DryRun
	if flags.Verbose {
		logger, sync, err := newVerboseLogger(flags.LogFormat)
		if err != nil {
			return err
		}
		defer sync()
		e.Logger = logger
	}

	result, err := e.Edit(fs.Arg(0), loc)
	if err != nil {
		return err
	}

	if flags.DryRun {
		if result.Changed {
			cliutil.Writef(os.Stdout, "%s:%d: %s -> %s\n", result.Path, result.Line, result.Original, result.Replacement)
		} else {
			cliutil.Writef(os.Stdout, "%s:%d: %q matches no case style\n", result.Path, result.Line, result.Original)
		}
	}
	return nil
}

func parseLocation(line, start, end string) (editor.Location, error) {
	var loc editor.Location
	var err error
	if loc.Line, err = ParsePositiveInt("line_number", line); err != nil {
		return loc, err
	}
	if loc.StartColumn, err = ParsePositiveInt("start_column", start); err != nil {
		return loc, err
	}
	if loc.EndColumn, err = ParsePositiveInt("end_column", end); err != nil {
		return loc, err
	}
	return loc, loc.Validate()
}

// newVerboseLogger builds the debug-level stderr logger for -v. Text output
// goes through log/slog and JSON output through zap. The returned func
// flushes buffered entries.
func newVerboseLogger(format string) (editor.Logger, func(), error) {
	switch format {
	case FormatText:
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		return editor.NewSlogAdapter(slog.New(handler)), func() {}, nil
	case FormatJSON:
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.Sampling = nil
		logger, err := cfg.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("building json logger: %w", err)
		}
		return editor.NewZapAdapter(logger), func() { _ = logger.Sync() }, nil
	default:
		return nil, nil, &caseerrors.ConfigError{
			Option:  "log-format",
			Value:   format,
			Message: fmt.Sprintf("valid formats: %s, %s", FormatText, FormatJSON),
		}
	}
}
