package casing

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Style is one of the supported identifier case styles.
type Style int

const (
	// Snake is lower-case words joined by underscores ("foo_bar").
	Snake Style = iota
	// ScreamingSnake is upper-case words joined by underscores ("FOO_BAR").
	ScreamingSnake
	// Camel is capitalized words with no separator ("FooBar").
	Camel
)

// Cycle is the rotation order. Detection walks it front to back, so earlier
// styles win when an identifier matches more than one.
var Cycle = [...]Style{Snake, ScreamingSnake, Camel}

// Words is the normalized, lower-case word sequence every style parses into
// and formats from.
type Words []string

var (
	snakePattern = regexp.MustCompile(`^[\p{L}\p{N}_]+$`)
	camelPattern = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// String returns the style name used in CLI and tool output.
func (s Style) String() string {
	switch s {
	case Snake:
		return "snake"
	case ScreamingSnake:
		return "screaming_snake"
	case Camel:
		return "camel"
	default:
		return "unknown"
	}
}

// Next returns the successor of s in [Cycle]. Styles outside the cycle
// restart it at Snake.
func (s Style) Next() Style {
	i := s.index()
	if i < 0 {
		return Snake
	}
	return Cycle[(i+1)%len(Cycle)]
}

func (s Style) index() int {
	for i, c := range Cycle {
		if c == s {
			return i
		}
	}
	return -1
}

// Matches reports whether identifier is written in style s.
//
// Snake and ScreamingSnake accept letters, digits, and underscores; Snake
// rejects any upper-case letter and ScreamingSnake any lower-case letter, so
// an identifier without letters satisfies both. Camel accepts letters and
// digits only and requires an upper-case first letter.
func (s Style) Matches(identifier string) bool {
	if identifier == "" {
		return false
	}
	switch s {
	case Snake:
		return snakePattern.MatchString(identifier) && !containsRune(identifier, isUpperish)
	case ScreamingSnake:
		return snakePattern.MatchString(identifier) && !containsRune(identifier, isLowerish)
	case Camel:
		if !camelPattern.MatchString(identifier) {
			return false
		}
		first, _ := utf8.DecodeRuneInString(identifier)
		return unicode.IsUpper(first)
	}
	return false
}

// Detect returns the first style in [Cycle] that identifier matches.
func Detect(identifier string) (Style, bool) {
	for _, s := range Cycle {
		if s.Matches(identifier) {
			return s, true
		}
	}
	return Snake, false
}

// Candidates returns every style identifier matches, in cycle order.
func Candidates(identifier string) []Style {
	var styles []Style
	for _, s := range Cycle {
		if s.Matches(identifier) {
			styles = append(styles, s)
		}
	}
	return styles
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}

// Title-case letters count as both upper and lower so neither snake style
// claims them.
func isUpperish(r rune) bool { return unicode.IsUpper(r) || unicode.IsTitle(r) }

func isLowerish(r rune) bool { return unicode.IsLower(r) || unicode.IsTitle(r) }
