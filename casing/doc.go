// Package casing detects, parses, and formats identifiers in three case
// styles and rotates an identifier to the next style of a fixed cycle.
//
// Import path: github.com/erraggy/nextcase/casing
//
// # Styles
//
// The package supports exactly three styles, exposed as [Style] values:
//
//   - [Snake]: lower-case words joined by underscores, e.g. "foo_bar"
//   - [ScreamingSnake]: upper-case words joined by underscores, e.g. "FOO_BAR"
//   - [Camel]: capitalized words with no separator, e.g. "FooBar"
//
// Every style can test membership ([Style.Matches]), split an identifier into
// a normalized lower-case [Words] sequence ([Style.Parse]), and join words back
// into an identifier ([Style.Format]).
//
// # Rotation
//
// [Cycle] fixes the order Snake → ScreamingSnake → Camel → Snake. [Rotate]
// finds the first style in that order matching the input, parses it, and
// formats the words with the successor style:
//
//	next, ok, err := casing.Rotate("foo_bar")
//	// next == "FOO_BAR", ok == true, err == nil
//
// Identifiers with no letters ("123", "4_2") satisfy both snake predicates;
// the earlier style in the cycle wins, so they always rotate as Snake.
//
// An identifier that matches no style is not an error: Rotate reports it
// with ok == false. Parse failures (only possible when calling
// [Camel].Parse directly on input without a leading uppercase letter) are
// returned as *[caseerrors.ParseError].
//
// # Concurrency
//
// All functions are pure and safe for concurrent use.
package casing
