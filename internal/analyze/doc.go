// Package analyze derives shapes from Go struct types.
//
// It uses golang.org/x/tools/go/packages with go/types to load packages and
// walks a named struct type field by field:
//   - struct fields become branches, pointer-to-struct fields optional branches
//   - slices, arrays and maps become excluded list fields
//   - basic types become leaves (string, number, boolean)
//   - named string or integer types with declared constants become literal unions
//   - types from packages that were not loaded (e.g. time.Time) are opaque leaves
//
// Field names follow the json tag when present. Recursive types are rejected.
package analyze
