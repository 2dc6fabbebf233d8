package editor

import (
	"fmt"

	"github.com/erraggy/nextcase/internal/options"
)

// Option is a function that configures an edit operation.
type Option func(*editConfig) error

// editConfig holds configuration for an edit operation
type editConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	bytes    []byte

	location *Location
	dryRun   bool
	logger   Logger
}

// EditWithOptions rotates an identifier using functional options.
//
// Example:
//
//	result, err := editor.EditWithOptions(
//	    editor.WithFilePath("main.go"),
//	    editor.WithLocation(editor.Location{Line: 3, StartColumn: 5, EndColumn: 12}),
//	)
//
// With WithBytes the edit is computed in memory and returned in
// Result.Content; nothing is written.
func EditWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("editor: invalid options: %w", err)
	}

	e := &Editor{
		DryRun: cfg.dryRun,
		Logger: cfg.logger,
	}

	if cfg.filePath != nil {
		return e.Edit(*cfg.filePath, *cfg.location)
	}
	return e.Apply(cfg.bytes, *cfg.location)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*editConfig, error) {
	cfg := &editConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.RequireSingleSource(
		options.Source{Option: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Option: "WithBytes", Set: cfg.bytes != nil},
	); err != nil {
		return nil, err
	}
	if cfg.location == nil {
		return nil, fmt.Errorf("editor: must specify a location (use WithLocation)")
	}

	return cfg, nil
}

// WithFilePath specifies the file to edit.
func WithFilePath(path string) Option {
	return func(cfg *editConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies in-memory content to edit.
func WithBytes(data []byte) Option {
	return func(cfg *editConfig) error {
		if data == nil {
			return fmt.Errorf("editor: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLocation specifies the identifier location.
func WithLocation(loc Location) Option {
	return func(cfg *editConfig) error {
		if err := loc.Validate(); err != nil {
			return err
		}
		cfg.location = &loc
		return nil
	}
}

// WithDryRun computes the edit without writing the file.
func WithDryRun(enabled bool) Option {
	return func(cfg *editConfig) error {
		cfg.dryRun = enabled
		return nil
	}
}

// WithLogger sets the logger for the edit.
func WithLogger(l Logger) Option {
	return func(cfg *editConfig) error {
		cfg.logger = l
		return nil
	}
}
