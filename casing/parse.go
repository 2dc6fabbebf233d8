package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/nextcase/caseerrors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Parse splits identifier into lower-case words according to style s.
//
// Snake and ScreamingSnake split on underscores and lower-case every
// fragment. Empty fragments produced by leading, trailing, or repeated
// underscores are kept, so "a__b" parses to ["a", "", "b"].
//
// Camel starts a new word at every upper-case letter and at the first digit
// of a run of digits; any other rune extends the current word, lower-cased.
// Input with no
// word to extend (a leading digit or lower-case rune) yields a
// *caseerrors.ParseError matching caseerrors.ErrMalformedCamel.
//
// Parse does not check membership first; call [Style.Matches] for that.
func (s Style) Parse(identifier string) (Words, error) {
	switch s {
	case Snake, ScreamingSnake:
		return splitUnderscores(identifier), nil
	case Camel:
		return parseCamel(identifier)
	default:
		return nil, &caseerrors.ParseError{
			Style:      s.String(),
			Identifier: identifier,
			Message:    "unsupported case style",
		}
	}
}

func splitUnderscores(identifier string) Words {
	lower := cases.Lower(language.Und)
	parts := strings.Split(identifier, "_")
	words := make(Words, len(parts))
	for i, p := range parts {
		words[i] = lower.String(p)
	}
	return words
}

func parseCamel(identifier string) (Words, error) {
	var words Words
	pos := 0
	for _, r := range identifier {
		switch {
		case unicode.IsUpper(r):
			words = append(words, string(unicode.ToLower(r)))
		case len(words) == 0 && unicode.IsDigit(r):
			return nil, malformedCamel(identifier, pos, "identifier starts with a digit")
		case len(words) == 0:
			return nil, malformedCamel(identifier, pos, "no uppercase letter starts the first word")
		case unicode.IsDigit(r) && !endsWithDigit(words[len(words)-1]):
			words = append(words, string(r))
		default:
			words[len(words)-1] += string(unicode.ToLower(r))
		}
		pos++
	}
	return words, nil
}

func endsWithDigit(word string) bool {
	r, size := utf8.DecodeLastRuneInString(word)
	return size > 0 && unicode.IsDigit(r)
}

func malformedCamel(identifier string, pos int, msg string) error {
	return &caseerrors.ParseError{
		Style:      Camel.String(),
		Identifier: identifier,
		Position:   pos,
		Message:    msg,
	}
}
