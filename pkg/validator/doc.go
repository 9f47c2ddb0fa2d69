// Package validator provides composable validation rules for common
// client-application input: email addresses, URLs, IP addresses, credit
// card numbers, Social Security Numbers, ZIP codes, UUIDs and password
// strength.
//
// Every format is exposed two ways. The Is* predicates answer a plain
// yes/no question:
//
//	if !validator.IsEmail(input) {
//	    // reject
//	}
//
// The rule constructors wrap the same checks for form-style validation of
// multiple fields at once, collecting every failure into a single error:
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", form.Email),
//	    validator.ValidZipCode("zip", form.Zip),
//	    validator.StrongPassword("password", form.Password, validator.DefaultPasswordPolicy()),
//	)
//	if err != nil {
//	    errs := validator.ExtractValidationErrors(err)
//	    // errs.Get("email"), errs.Fields(), ...
//	}
//
// The grammars are deliberately fixed. The email check is permissive (one @,
// no whitespace, dotted domain) rather than RFC 5322 conformant, the IP
// checks are strict regex grammars, and the credit card check is the Luhn
// checksum over 13-19 digits. Callers that need stricter or looser rules
// should compose their own on top rather than expect these to change.
//
// Validation failure is never an error in the Go sense for the predicates:
// they return false. Apply returns ValidationErrors, which callers can
// inspect per field.
package validator
