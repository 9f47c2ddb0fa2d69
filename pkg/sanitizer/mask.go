package sanitizer

import "strings"

// maskCap limits how many mask characters MaskEmail emits so that very long
// local parts do not leak their length.
const maskCap = 5

// MaskEmail hides the middle of the local part of an email address, keeping
// visibleStart leading and visibleEnd trailing characters. The mask is
// capped at 5 characters regardless of how much is hidden. Inputs that do
// not look like an email, or local parts too short to hide anything, are
// returned unchanged.
func MaskEmail(email string, visibleStart, visibleEnd int) string {
	if visibleStart < 0 {
		visibleStart = 0
	}
	if visibleEnd < 0 {
		visibleEnd = 0
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return email
	}

	local := []rune(parts[0])
	hidden := len(local) - visibleStart - visibleEnd
	if hidden <= 0 {
		return email
	}

	maskLen := hidden
	if maskLen > maskCap {
		maskLen = maskCap
	}

	masked := string(local[:visibleStart]) + strings.Repeat("*", maskLen) + string(local[len(local)-visibleEnd:])
	return masked + "@" + parts[1]
}

// MaskString hides the middle of s, keeping visibleChars at each end.
// Strings too short to hide anything are fully masked.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 0
	}

	runes := []rune(s)
	if len(runes) <= visibleChars*2 {
		return strings.Repeat("*", len(runes))
	}

	start := string(runes[:visibleChars])
	end := string(runes[len(runes)-visibleChars:])
	return start + strings.Repeat("*", len(runes)-visibleChars*2) + end
}
