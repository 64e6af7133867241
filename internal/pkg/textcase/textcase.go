package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title upper-cases the first letter of every word and lower-cases the rest.
// A new Caser is built per call because cases.Caser is stateful.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// Capitalize upper-cases the first rune of s and lower-cases the remainder,
// e.g. "b" -> "B", "a+" -> "A+", "pASS" -> "Pass".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
