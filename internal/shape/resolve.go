package shape

import (
	"errors"
	"fmt"
	"strings"

	"path-flattener/internal/dotpath"
	"path-flattener/internal/match"
)

// maxSuggestions bounds the "did you mean" list of a PathError.
const maxSuggestions = 3

var (
	// ErrPathNotFound is returned when a segment does not name a field of its parent.
	ErrPathNotFound = errors.New("path not found")
	// ErrTraversalIntoLeaf is returned when a non-final segment names a leaf
	// or an excluded list field.
	ErrTraversalIntoLeaf = errors.New("traversal into leaf")
)

// Node describes what a path resolves to.
type Node struct {
	Path     dotpath.Path
	Kind     Kind
	Optional bool
	// Type is set for leaves and excluded fields.
	Type TypeRef
	// Shape is set for branches.
	Shape *Shape
}

// TypeString renders the node's value type.
func (n Node) TypeString() string {
	return n.field().TypeString()
}

func (n Node) field() Field {
	return Field{
		Name:     n.Path.Last(),
		Kind:     n.Kind,
		Optional: n.Optional,
		Type:     n.Type,
		Shape:    n.Shape,
	}
}

func nodeOf(f Field, p dotpath.Path) Node {
	return Node{
		Path:     p,
		Kind:     f.Kind,
		Optional: f.Optional,
		Type:     f.Type,
		Shape:    f.Shape,
	}
}

// PathError records a resolution failure at a specific segment.
type PathError struct {
	Path  dotpath.Path
	Index int // index of the failing segment
	Err   error
	// Suggestions holds sibling field names close to the failing segment.
	Suggestions []string
}

func (e *PathError) Error() string {
	msg := fmt.Sprintf("resolve %q: segment %q: %v", e.Path.String(), e.Path.Segment(e.Index), e.Err)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Resolve walks p from the root of s and returns the node it names.
// Excluded list fields are opaque: they can be the final segment but
// cannot be descended into.
func Resolve(s *Shape, p dotpath.Path) (Node, error) {
	if p.IsEmpty() {
		return Node{}, fmt.Errorf("resolve: %w: empty path", dotpath.ErrMalformedPath)
	}

	current := s
	last := p.Len() - 1

	for i := 0; i <= last; i++ {
		seg := p.Segment(i)

		f, ok := current.Field(seg)
		if !ok {
			return Node{}, &PathError{
				Path:        p,
				Index:       i,
				Err:         ErrPathNotFound,
				Suggestions: match.Suggest(seg, current.FieldNames(), maxSuggestions),
			}
		}

		if i == last {
			return nodeOf(f, p), nil
		}

		if f.Kind != KindBranch {
			return Node{}, &PathError{Path: p, Index: i, Err: ErrTraversalIntoLeaf}
		}

		current = f.Shape
	}

	// unreachable: the loop always returns on the last segment
	return Node{}, &PathError{Path: p, Index: last, Err: ErrPathNotFound}
}

// ResolveString parses a dotted path and resolves it against s.
func ResolveString(s *Shape, path string) (Node, error) {
	p, err := dotpath.Parse(path)
	if err != nil {
		return Node{}, err
	}

	return Resolve(s, p)
}
