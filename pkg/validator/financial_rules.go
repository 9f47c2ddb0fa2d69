package validator

import (
	"regexp"
	"strings"
)

var digitsOnlyRegex = regexp.MustCompile(`^\d+$`)

// IsCreditCard reports whether value is a plausible card number: after
// stripping spaces and dashes it must be 13-19 digits and pass the Luhn
// checksum.
func IsCreditCard(value string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")

	if !digitsOnlyRegex.MatchString(cleaned) {
		return false
	}

	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	return luhnChecksum(cleaned)
}

// luhnChecksum doubles every second digit from the rightmost, subtracting 9
// when the doubled value exceeds 9, and requires the sum to be divisible by 10.
func luhnChecksum(digits string) bool {
	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')

		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}

		sum += d
		double = !double
	}

	return sum%10 == 0
}

// ValidCreditCard validates a credit card number using the Luhn algorithm.
func ValidCreditCard(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCreditCard(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "invalid credit card number",
		},
	}
}
