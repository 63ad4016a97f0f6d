package common

import (
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the fallback label returned by String methods for
// unrecognized enum values.
const UnknownStr = "unknown"

// Capitalize upper-cases the first rune of s and leaves the rest unchanged.
// This matches the accessor naming of the schema compiler's generated C++
// (field "count" is reached via getCount), so resolved field and enumerant
// names are stored in this form.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
