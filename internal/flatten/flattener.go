package flatten

import (
	"fmt"

	"github.com/go-logr/logr"

	"path-flattener/internal/shape"
)

// Option configures a Flattener.
type Option func(*Flattener)

// WithLogger sets the logger. Per-entry details are logged at V(1).
func WithLogger(log logr.Logger) Option {
	return func(f *Flattener) {
		f.log = log
	}
}

// WithCache makes the Flattener reuse maps of unchanged shapes.
func WithCache(c *Cache) Option {
	return func(f *Flattener) {
		f.cache = c
	}
}

// Flattener produces flattened maps for shapes against a fixed resource
// state and params type. It holds no mutable state of its own and can be
// used from several goroutines.
type Flattener struct {
	resourceState shape.TypeRef
	params        shape.TypeRef
	log           logr.Logger
	cache         *Cache
}

// New creates a Flattener. resourceState is the domain of every mapper;
// params is recorded on produced maps but does not change their entries.
func New(resourceState, params shape.TypeRef, opts ...Option) *Flattener {
	f := &Flattener{
		resourceState: resourceState,
		params:        params,
		log:           logr.Discard(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Flatten computes the map of s. Invalid shapes fail as a whole.
func (f *Flattener) Flatten(s *shape.Shape) (*Map, error) {
	if diags := s.Validate(); diags.HasErrors() {
		return nil, fmt.Errorf("invalid shape: %w", diags.Error())
	}

	var key string
	if f.cache != nil {
		key = f.cache.key(s, f.resourceState, f.params)
		if m, ok := f.cache.get(key); ok {
			f.log.V(1).Info("flattened map served from cache", "shape", s.Name, "entries", m.Len())
			return m, nil
		}
	}

	var entries []Entry

	err := s.Walk(func(n shape.Node) error {
		if n.Kind == shape.KindExcluded {
			f.log.V(1).Info("skipping list field", "path", n.Path.String())
			return nil
		}

		e := f.entryFor(n)
		f.log.V(1).Info("flattened path", "path", e.Key, "kind", e.Kind.String(), "signature", e.Signature)
		entries = append(entries, e)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("flatten shape %q: %w", s.Name, err)
	}

	m := newMap(s.Name, f.resourceState, f.params, entries)

	if f.cache != nil {
		f.cache.add(key, m)
	}

	f.log.Info("flattened shape", "shape", s.Name, "entries", m.Len())

	return m, nil
}

func (f *Flattener) entryFor(n shape.Node) Entry {
	kind := ValueKindMapper
	if n.Kind == shape.KindBranch && n.Optional {
		kind = ValueKindBooleanOrMapper
	}

	valueType := n.TypeString()

	return Entry{
		Key:       n.Path.String(),
		Path:      n.Path,
		Kind:      kind,
		NodeKind:  n.Kind,
		Optional:  n.Optional,
		ValueType: valueType,
		Signature: Signature(kind, f.resourceState, signatureType(n)),
	}
}

// signatureType is the value type as written after a mapper's parameter list.
// Unions are parenthesized so the mapper's result is not read as one member.
func signatureType(n shape.Node) string {
	if n.Kind == shape.KindLeaf && n.Type.IsUnion() {
		return "(" + n.TypeString() + ")"
	}

	return n.TypeString()
}

// Signature renders the value accepted for a path of the given kind.
func Signature(kind ValueKind, resourceState shape.TypeRef, valueType string) string {
	mapper := fmt.Sprintf("func(%s) %s", resourceState.String(), valueType)
	if kind.AllowsBoolean() {
		return shape.PrimitiveBoolean + " | " + mapper
	}

	return mapper
}
