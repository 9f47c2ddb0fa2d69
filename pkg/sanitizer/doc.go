// Package sanitizer provides small, focused helpers for cleaning and
// reshaping user-facing strings.
//
// The functions are grouped conceptually into several areas:
//
//   - Strings – middle-ellipsis and word-count truncation, capitalization,
//     title casing, trimming and whitespace stripping.
//
//   - Masking – hiding the middle of email addresses and other sensitive
//     strings before they are logged or rendered.
//
//   - Format – phone number display formatting keyed on digit count.
//
//   - Collections – filter-map cleaning for query parameters.
//
// Every helper is a pure function: malformed input is tolerated silently
// and returned unchanged (or as an empty value) rather than reported as an
// error. The helpers never panic and can be freely combined.
package sanitizer
