// Package clientkit is a collection of small, independent utility packages
// for common client-application tasks: input validation, text
// transformation, identifier and secret generation, call-rate control and
// simple formatting.
//
// Each concern lives in its own package under pkg/ and can be imported in
// isolation; the packages share no state and almost no dependencies on one
// another:
//
//   - pkg/validator – format predicates and composable validation rules
//     (email, URL, IP, credit card, SSN, ZIP, UUID, password strength)
//   - pkg/sanitizer – pure string transforms (truncation, masking,
//     capitalization, phone formatting, filter-map cleaning)
//   - pkg/debounce – trailing-edge call-rate wrapper
//   - pkg/throttle – leading-edge call-rate wrapper
//   - pkg/coupon – policy-driven coupon code generation
//   - pkg/password – four-class random password generation
//   - pkg/uniqueid – UUID v4 identifiers
//   - pkg/currency – ISO 4217 code to symbol lookup
//   - pkg/daterange – relative date-range computation and formatting
//   - pkg/config – env-based loading of generation policies
//
// Design rules shared across the packages: validation failure is a boolean
// or a ValidationErrors value, never a panic; generators fail only on
// impossible configuration; formatting helpers degrade to pass-through on
// malformed input rather than erroring.
package clientkit
