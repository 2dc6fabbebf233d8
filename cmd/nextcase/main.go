package main

import (
	"fmt"
	"os"

	"github.com/erraggy/nextcase"
	"github.com/erraggy/nextcase/cmd/nextcase/commands"
	"github.com/erraggy/nextcase/internal/cliutil"
)

// validCommands is checked for typo suggestions.
var validCommands = []string{"copy", "file", "inspect", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		if nextcase.IsRelease() {
			fmt.Printf("nextcase %s\n", nextcase.Version())
		} else {
			fmt.Printf("nextcase %s (development build)\n", nextcase.Version())
		}
		fmt.Println(nextcase.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "copy":
		run(commands.HandleCopy)
	case "file":
		run(commands.HandleFile)
	case "inspect":
		run(commands.HandleInspect)
	case "mcp":
		run(commands.HandleMCP)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func run(handler func(args []string) error) {
	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest valid command, or "" if nothing is close.
func suggestCommand(input string) string {
	return cliutil.Suggest(input, validCommands)
}

func printUsage() {
	fmt.Println(`nextcase - rotate identifiers through case styles

Rotation:
  snake_case -> SCREAMING_SNAKE_CASE -> CamelCase -> snake_case

Usage:
  nextcase <command> [options]

Commands:
  copy        Rotate an identifier and copy the result to the clipboard
  file        Rotate the identifier at a line and column range of a file
  inspect     Show how an identifier is classified and rotated
  mcp         Serve the rotation tools over MCP (stdio)
  version     Show version information
  help        Show this help message

Examples:
  nextcase copy user_id
  nextcase file main.go 12 5 12
  nextcase inspect --format json UserId
  nextcase mcp

Run 'nextcase <command> --help' for more information on a command.`)
}
