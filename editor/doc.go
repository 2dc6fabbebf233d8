// Package editor rotates an identifier in place inside a text file.
//
// A [Location] names a 1-indexed line and a 1-indexed column range on that
// line. The text in the range is rotated with [casing.Rotate]; when it
// matches a case style the line is rewritten and the whole file is replaced
// atomically, otherwise the file is left byte-for-byte unchanged.
//
// # Quick Start
//
//	e := editor.New()
//	result, err := e.Edit("main.go", editor.Location{Line: 3, StartColumn: 5, EndColumn: 12})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Original, "->", result.Replacement)
//
// Or with functional options:
//
//	result, err := editor.EditWithOptions(
//		editor.WithFilePath("main.go"),
//		editor.WithLocation(editor.Location{Line: 3, StartColumn: 5, EndColumn: 12}),
//		editor.WithDryRun(true),
//	)
//
// # Logging
//
// Set Editor.Logger (or pass WithLogger) to a [Logger]. [NewSlogAdapter]
// and [NewZapAdapter] wrap log/slog and zap loggers. The default discards
// everything.
//
// # Errors
//
// Malformed locations and lines past the end of the file are reported as
// *[caseerrors.LocationError]. I/O errors are wrapped and returned as is;
// no partial write ever happens.
package editor
