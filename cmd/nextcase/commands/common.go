// Package commands provides CLI command handlers for nextcase.
package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/erraggy/nextcase/caseerrors"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return &caseerrors.ConfigError{
			Option:  "format",
			Value:   format,
			Message: fmt.Sprintf("valid formats: %s, %s, %s", FormatText, FormatJSON, FormatYAML),
		}
	}
	return nil
}

// MarshalStructured encodes data as indented JSON or as YAML.
func MarshalStructured(data any, format string) ([]byte, error) {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return out, nil
}

// OutputStructured writes data in the specified format (json or yaml) to stdout.
func OutputStructured(data any, format string) error {
	out, err := MarshalStructured(data, format)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// ParsePositiveInt parses a 1-indexed positional argument.
func ParsePositiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &caseerrors.ConfigError{Option: name, Value: value, Message: "must be an integer", Cause: err}
	}
	if n < 1 {
		return 0, &caseerrors.ConfigError{Option: name, Value: value, Message: "must be at least 1"}
	}
	return n, nil
}
