// Package shape describes nested record shapes and resolves dotted paths
// against them.
//
// A Shape is an ordered list of named fields. Each field is one of:
//   - a leaf: a primitive value (string, number, boolean), a literal union
//     such as 'asc' | 'desc', or an opaque named type
//   - a branch: a nested Shape
//   - an excluded field: a list-valued field that is never traversed
//
// Branches and leaves may be optional. Shapes are trees: the same *Shape
// must not be reachable from itself.
//
// Shapes are usually authored as YAML documents (see Parse and LoadFile)
// or derived from Go struct types by package analyze.
package shape
