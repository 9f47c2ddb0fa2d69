package validator

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ssnDigitsRegex = regexp.MustCompile(`^\d{9}$`)
	zipCodeRegex   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// IsSSN reports whether value is a valid US Social Security Number.
// Spaces and dashes are stripped first. Area numbers 000, 666 and 900-999
// were never issued; group 00 and serial 0000 are likewise invalid.
func IsSSN(value string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")

	if !ssnDigitsRegex.MatchString(cleaned) {
		return false
	}

	area := cleaned[0:3]
	group := cleaned[3:5]
	serial := cleaned[5:9]

	if area == "000" || area == "666" || area[0] == '9' {
		return false
	}
	if group == "00" {
		return false
	}
	if serial == "0000" {
		return false
	}

	return true
}

// ValidSSN validates that a string is a valid US Social Security Number.
func ValidSSN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsSSN(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid Social Security Number",
		},
	}
}

// IsZipCode reports whether value is a valid US ZIP code, either the 5-digit
// or the ZIP+4 form.
func IsZipCode(value string) bool {
	return zipCodeRegex.MatchString(value)
}

// ValidZipCode validates that a string is a valid US ZIP code.
func ValidZipCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsZipCode(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid ZIP code",
		},
	}
}

// IsUUID reports whether value is a canonically formatted UUID.
func IsUUID(value string) bool {
	// Fast rejection: check length and hyphen positions before parsing
	if len(value) != 36 {
		return false
	}

	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}

	_, err := uuid.Parse(value)
	return err == nil
}

// ValidUUID validates standard UUID format.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsUUID(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid UUID",
		},
	}
}
