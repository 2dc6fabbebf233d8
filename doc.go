// Package nextcase rotates identifiers through a fixed cycle of case styles.
//
// The cycle is snake_case, then SCREAMING_SNAKE_CASE, then CamelCase, then
// back to snake_case:
//
//	foo_bar -> FOO_BAR -> FooBar -> foo_bar
//
// # Packages
//
//   - casing: style detection, word parsing, formatting, and rotation
//   - editor: rotate the identifier at a line and column range of a file
//   - clipboard: rotate an identifier and copy the result to the clipboard
//   - caseerrors: structured error types shared by the packages above
//
// # Quick Start
//
// Rotate a single identifier:
//
//	import "github.com/erraggy/nextcase/casing"
//
//	next, ok, err := casing.Rotate("user_id")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if ok {
//		fmt.Println(next) // USER_ID
//	}
//
// Rotate an identifier in place inside a source file:
//
//	import "github.com/erraggy/nextcase/editor"
//
//	result, err := editor.New().Edit("main.go", editor.Location{Line: 12, StartColumn: 5, EndColumn: 12})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Original, "->", result.Replacement)
//
// Identifiers that match none of the styles are left unchanged. No style
// is ever guessed for them.
//
// # Command Line
//
// The nextcase binary exposes the same operations:
//
//	nextcase copy user_id
//	nextcase file main.go 12 5 12
//	nextcase inspect --format json UserId
//	nextcase mcp
package nextcase
