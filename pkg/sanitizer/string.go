package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ellipsis separates the kept head and tail of a middle-truncated string.
const ellipsis = "..."

var titleCaser = cases.Title(language.English)

// TruncateMiddle keeps the first startLen and last endLen characters of s
// and replaces the middle with "...". Strings that already fit are returned
// unchanged. Useful for shortening identifiers, hashes and addresses while
// keeping both ends recognizable.
func TruncateMiddle(s string, startLen, endLen int) string {
	if startLen < 0 {
		startLen = 0
	}
	if endLen < 0 {
		endLen = 0
	}

	runes := []rune(s)
	if len(runes) <= startLen+endLen {
		return s
	}

	return string(runes[:startLen]) + ellipsis + string(runes[len(runes)-endLen:])
}

// TruncateWords keeps the first maxWords words of s and appends "...".
// Strings with maxWords or fewer words are returned unchanged.
func TruncateWords(s string, maxWords int) string {
	if maxWords <= 0 {
		return s
	}

	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}

	return strings.Join(words[:maxWords], " ") + ellipsis
}

// CapitalizeFirst uppercases the first character of s and leaves the rest
// untouched.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Title converts s to English title case.
func Title(s string) string {
	return titleCaser.String(s)
}

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// StripWhitespace removes every whitespace character from s, including
// interior ones.
func StripWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, "")
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
