package shape

import (
	"errors"
	"fmt"

	"path-flattener/internal/dotpath"
)

// ErrCycle is returned when a shape is reachable from itself.
var ErrCycle = errors.New("shape cycle")

// WalkFunc is called once per field below the root, parents before children.
type WalkFunc func(n Node) error

// Walk visits every field of s in pre-order, following declaration order.
// Excluded fields are visited but never descended into. The root itself is
// not visited. Walking stops at the first error returned by fn.
func (s *Shape) Walk(fn WalkFunc) error {
	return walk(s, dotpath.Path{}, map[*Shape]bool{}, fn)
}

func walk(s *Shape, prefix dotpath.Path, onStack map[*Shape]bool, fn WalkFunc) error {
	if s == nil {
		return nil
	}

	if onStack[s] {
		return fmt.Errorf("%w at %q", ErrCycle, prefix.String())
	}

	onStack[s] = true
	defer delete(onStack, s)

	for _, f := range s.Fields {
		p := prefix.Append(f.Name)

		if err := fn(nodeOf(f, p)); err != nil {
			return err
		}

		if f.Kind != KindBranch {
			continue
		}

		if err := walk(f.Shape, p, onStack, fn); err != nil {
			return err
		}
	}

	return nil
}

// Paths returns the dotted form of every walkable path in pre-order,
// excluded fields omitted.
func (s *Shape) Paths() ([]string, error) {
	var out []string

	err := s.Walk(func(n Node) error {
		if n.Kind != KindExcluded {
			out = append(out, n.Path.String())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
