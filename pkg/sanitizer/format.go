package sanitizer

// FormatPhone renders a phone number in a display format chosen by the
// number of digits it contains:
//
//	10 digits             -> (123) 456-7890
//	11 digits, leading 1  -> +1 (123) 456-7890
//	12 digits, leading 91 -> +91 12345 67890
//
// Any other shape is returned unchanged to avoid data loss.
func FormatPhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")

	switch {
	case len(digits) == 10:
		return "(" + digits[0:3] + ") " + digits[3:6] + "-" + digits[6:10]
	case len(digits) == 11 && digits[0] == '1':
		return "+1 (" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:11]
	case len(digits) == 12 && digits[0:2] == "91":
		return "+91 " + digits[2:7] + " " + digits[7:12]
	default:
		return phone
	}
}

// NormalizePhone strips formatting to enable consistent storage and comparison.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}
