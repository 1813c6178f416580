// Package dotpath parses and formats dot-separated field paths.
//
// A path such as "pagination.filters.search" is split into its ordered
// segments ["pagination", "filters", "search"]. Every segment must be
// non-empty, so "", ".a", "a." and "a..b" are all rejected with
// ErrMalformedPath. Join is the exact inverse of Parse.
package dotpath
