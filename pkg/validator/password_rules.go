package validator

import (
	"fmt"
	"regexp"
)

var (
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	symbolRegex    = regexp.MustCompile(`[@$!%*?&]`)
)

// DefaultMinPasswordLength is used when a policy does not set a minimum.
const DefaultMinPasswordLength = 8

// PasswordPolicy configures password strength requirements. All four
// character classes (lowercase, uppercase, digit, symbol from @$!%*?&) are
// always required; only the minimum length is configurable. Characters
// outside those classes are allowed and simply do not count toward any
// class.
type PasswordPolicy struct {
	MinLength int
}

// DefaultPasswordPolicy returns the default 8-character minimum policy.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: DefaultMinPasswordLength}
}

// IsStrongPassword reports whether value satisfies the policy: minimum
// length plus at least one lowercase letter, one uppercase letter, one
// digit and one symbol from @$!%*?&.
func IsStrongPassword(value string, policy PasswordPolicy) bool {
	minLength := policy.MinLength
	if minLength <= 0 {
		minLength = DefaultMinPasswordLength
	}

	if len(value) < minLength {
		return false
	}

	return lowercaseRegex.MatchString(value) &&
		uppercaseRegex.MatchString(value) &&
		digitRegex.MatchString(value) &&
		symbolRegex.MatchString(value)
}

// StrongPassword validates password strength against the given policy.
func StrongPassword(field, value string, policy PasswordPolicy) Rule {
	minLength := policy.MinLength
	if minLength <= 0 {
		minLength = DefaultMinPasswordLength
	}

	return Rule{
		Check: func() bool {
			return IsStrongPassword(value, policy)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("password must be at least %d characters with lowercase, uppercase, digit and special characters", minLength),
		},
	}
}

// PasswordLowercase validates that a password contains a lowercase letter.
func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one lowercase letter",
		},
	}
}

// PasswordUppercase validates that a password contains an uppercase letter.
func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one uppercase letter",
		},
	}
}

// PasswordDigit validates that a password contains a digit.
func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one digit",
		},
	}
}

// PasswordSymbol validates that a password contains a symbol from @$!%*?&.
func PasswordSymbol(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return symbolRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one special character",
		},
	}
}
