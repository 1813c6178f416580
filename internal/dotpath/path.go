package dotpath

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Separator delimits segments in the string form of a Path.
const Separator = "."

// ErrMalformedPath is returned for empty paths and paths with empty segments.
var ErrMalformedPath = errors.New("malformed path")

// Path is an ordered list of field names from the root of a shape
// down to one of its descendants.
type Path struct {
	segments []string
}

// New builds a Path from already split segments.
// Segments are copied; an empty segment yields ErrMalformedPath.
func New(segments ...string) (Path, error) {
	for i, s := range segments {
		if s == "" {
			return Path{}, fmt.Errorf("%w: empty segment at position %d", ErrMalformedPath, i)
		}
	}

	return Path{segments: slices.Clone(segments)}, nil
}

// Parse splits a dot-separated path string into its segments.
// Supports: "Field", "Nested.Field", "a.b.c".
func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrMalformedPath)
	}

	segments := strings.Split(s, Separator)

	for i, part := range segments {
		if part == "" {
			return Path{}, fmt.Errorf("%w: %q has an empty segment at position %d", ErrMalformedPath, s, i)
		}
	}

	return Path{segments: segments}, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for fixtures and package-level constants.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// ParseAll parses multiple path strings, stopping at the first failure.
func ParseAll(paths []string) ([]Path, error) {
	result := make([]Path, 0, len(paths))

	for _, s := range paths {
		p, err := Parse(s)
		if err != nil {
			return nil, err
		}

		result = append(result, p)
	}

	return result, nil
}

// Join renders segments back into the dotted string form.
func Join(p Path) string {
	return strings.Join(p.segments, Separator)
}

// String returns the dotted string form of the path.
func (p Path) String() string {
	return Join(p)
}

// Segments returns a copy of the path segments.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

// Segment returns the i-th segment.
func (p Path) Segment(i int) string {
	return p.segments[i]
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// IsEmpty reports whether the path has no segments (the shape root).
func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// Last returns the final segment, or "" for the root path.
func (p Path) Last() string {
	if p.IsEmpty() {
		return ""
	}

	return p.segments[len(p.segments)-1]
}

// Parent returns the path without its final segment.
// The parent of the root path is the root path.
func (p Path) Parent() Path {
	if len(p.segments) <= 1 {
		return Path{}
	}

	return Path{segments: slices.Clone(p.segments[:len(p.segments)-1])}
}

// Append returns a new path extended by name. The receiver is not modified.
func (p Path) Append(name string) Path {
	segments := make([]string, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)

	return Path{segments: append(segments, name)}
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.segments, other.segments)
}

// HasPrefix reports whether prefix is a leading part of p (or equal to it).
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.segments) > len(p.segments) {
		return false
	}

	return slices.Equal(p.segments[:len(prefix.segments)], prefix.segments)
}

// Contains reports whether name appears as any segment of the path.
func (p Path) Contains(name string) bool {
	return slices.Contains(p.segments, name)
}
