// Package flatten computes the flattened path map of a shape.
//
// Every path reachable by walking a shape (root excluded, list-valued
// fields and everything beneath them skipped) is mapped to a value kind:
//
//   - Mapper: a function from the resource state to the value at that path
//   - BooleanOrMapper: either a plain boolean flag or such a mapper
//
// Only a branch that is itself optional gets BooleanOrMapper. Optionality
// is not inherited by descendants, and leaves are always Mapper even when
// they are optional.
//
// Entries are ordered parents first, following field declaration order.
// A Map is immutable; flattening a changed shape produces a new Map.
package flatten
