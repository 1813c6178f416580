package flatten

import (
	"slices"

	"github.com/samber/lo"

	"path-flattener/internal/dotpath"
	"path-flattener/internal/shape"
)

// Entry is one flattened path and what it maps to.
type Entry struct {
	// Key is the dotted string form of Path.
	Key  string
	Path dotpath.Path
	Kind ValueKind
	// NodeKind is the kind of the field at Path (leaf or branch).
	NodeKind shape.Kind
	// Optional reports whether the field at Path is optional.
	Optional bool
	// ValueType renders the type of the value at Path.
	ValueType string
	// Signature renders the accepted value, e.g. "func(ResourceState) number"
	// or "boolean | func(ResourceState) Filters".
	Signature string
}

// Map is the ordered result of flattening a shape.
type Map struct {
	shapeName     string
	resourceState shape.TypeRef
	params        shape.TypeRef
	entries       []Entry
	index         map[string]int
}

func newMap(shapeName string, resourceState, params shape.TypeRef, entries []Entry) *Map {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Key] = i
	}

	return &Map{
		shapeName:     shapeName,
		resourceState: resourceState,
		params:        params,
		entries:       entries,
		index:         index,
	}
}

// ShapeName returns the name of the flattened shape.
func (m *Map) ShapeName() string {
	return m.shapeName
}

// ResourceState returns the domain type of every mapper.
func (m *Map) ResourceState() shape.TypeRef {
	return m.resourceState
}

// Params returns the params type the map was computed for.
func (m *Map) Params() shape.TypeRef {
	return m.params
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Keys returns the dotted paths in pre-order.
func (m *Map) Keys() []string {
	return lo.Map(m.entries, func(e Entry, _ int) string {
		return e.Key
	})
}

// Entries returns a copy of all entries in pre-order.
func (m *Map) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Get returns the entry for a dotted path.
func (m *Map) Get(key string) (Entry, bool) {
	i, ok := m.index[key]
	if !ok {
		return Entry{}, false
	}

	return m.entries[i], true
}

// Lookup returns the entry for a parsed path.
func (m *Map) Lookup(p dotpath.Path) (Entry, bool) {
	return m.Get(p.String())
}

// Kind returns the value kind at key, or the zero ValueKind if absent.
func (m *Map) Kind(key string) ValueKind {
	e, _ := m.Get(key)
	return e.Kind
}

// Filter returns the entries whose kind is k, in pre-order.
func (m *Map) Filter(k ValueKind) []Entry {
	return lo.Filter(m.entries, func(e Entry, _ int) bool {
		return e.Kind == k
	})
}

// Equal reports whether both maps have the same keys in the same order
// with the same kinds and signatures.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}

	if !m.resourceState.Equal(other.resourceState) || !m.params.Equal(other.params) {
		return false
	}

	return slices.EqualFunc(m.entries, other.entries, func(a, b Entry) bool {
		return a.Key == b.Key && a.Kind == b.Kind && a.Signature == b.Signature
	})
}
