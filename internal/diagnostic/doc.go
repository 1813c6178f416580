// Package diagnostic provides structured errors, warnings and notes
// produced while validating shapes and flattening them.
//
// Key capabilities:
//   - Error codes that identify the failing rule (e.g. "duplicate_field")
//   - The dotted path of the offending field
//   - A combined error value for callers that only need pass/fail
package diagnostic
