package casing

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format joins words into an identifier written in style s.
//
// Snake lower-cases every word and ScreamingSnake upper-cases every word;
// both join with underscores. Camel upper-cases the first character of every
// word, lower-cases the rest, and joins without a separator, so ["id"] and
// ["iD"] both become "Id". A word starting with a digit keeps its letters
// lower-case: ["1bar"] becomes "1bar" and ["a1b"] becomes "A1b".
func (s Style) Format(words Words) string {
	switch s {
	case Snake:
		return joinWith(words, cases.Lower(language.Und).String, "_")
	case ScreamingSnake:
		return joinWith(words, cases.Upper(language.Und).String, "_")
	case Camel:
		return joinWith(words, capitalize, "")
	default:
		return strings.Join(words, "")
	}
}

func joinWith(words Words, conv func(string) string, sep string) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(conv(w))
	}
	return b.String()
}

// capitalize title-cases the first rune of word and lower-cases the rest.
func capitalize(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return ""
	}
	return cases.Title(language.Und).String(word[:size]) + cases.Lower(language.Und).String(word[size:])
}
