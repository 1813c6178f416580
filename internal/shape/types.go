package shape

import (
	"strings"

	"github.com/samber/lo"
)

// Primitive type names used by leaves.
const (
	PrimitiveString  = "string"
	PrimitiveNumber  = "number"
	PrimitiveBoolean = "boolean"
)

// Common leaf types.
var (
	String  = TypeRef{Name: PrimitiveString}
	Number  = TypeRef{Name: PrimitiveNumber}
	Boolean = TypeRef{Name: PrimitiveBoolean}
)

// TypeRef describes the value type of a leaf or the element type of a list.
// Either Name is set (primitive or named type) or Literals holds the members
// of a string-literal union.
type TypeRef struct {
	Name     string
	Literals []string
}

// Named returns a TypeRef for an opaque named type such as "time.Time".
func Named(name string) TypeRef {
	return TypeRef{Name: name}
}

// Union returns a TypeRef for a string-literal union.
func Union(literals ...string) TypeRef {
	return TypeRef{Literals: append([]string(nil), literals...)}
}

// IsUnion reports whether t is a literal union.
func (t TypeRef) IsUnion() bool {
	return len(t.Literals) > 0
}

// IsZero reports whether t carries no type information.
func (t TypeRef) IsZero() bool {
	return t.Name == "" && len(t.Literals) == 0
}

// Equal reports whether both refs describe the same type.
func (t TypeRef) Equal(other TypeRef) bool {
	if t.Name != other.Name || len(t.Literals) != len(other.Literals) {
		return false
	}

	for i := range t.Literals {
		if t.Literals[i] != other.Literals[i] {
			return false
		}
	}

	return true
}

// String renders the type, e.g. "number" or "'asc' | 'desc'".
func (t TypeRef) String() string {
	if t.IsUnion() {
		quoted := lo.Map(t.Literals, func(l string, _ int) string {
			return "'" + l + "'"
		})

		return strings.Join(quoted, " | ")
	}

	return t.Name
}

// Field is a named member of a Shape.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
	// Type is the value type for leaves and the element type for excluded lists.
	Type TypeRef
	// Shape is the nested shape for branches.
	Shape *Shape
}

// Leaf returns a required leaf field.
func Leaf(name string, typ TypeRef) Field {
	return Field{Name: name, Kind: KindLeaf, Type: typ}
}

// OptionalLeaf returns an optional leaf field.
func OptionalLeaf(name string, typ TypeRef) Field {
	return Field{Name: name, Kind: KindLeaf, Type: typ, Optional: true}
}

// Branch returns a required branch field.
func Branch(name string, s *Shape) Field {
	return Field{Name: name, Kind: KindBranch, Shape: s}
}

// OptionalBranch returns an optional branch field.
func OptionalBranch(name string, s *Shape) Field {
	return Field{Name: name, Kind: KindBranch, Shape: s, Optional: true}
}

// List returns an excluded list-valued field with the given element type.
func List(name string, elem TypeRef) Field {
	return Field{Name: name, Kind: KindExcluded, Type: elem}
}

// TypeString renders the field's value type.
func (f Field) TypeString() string {
	switch f.Kind {
	case KindBranch:
		return f.Shape.TypeString()
	case KindExcluded:
		elem := f.Type.String()
		if f.Type.IsUnion() {
			elem = "(" + elem + ")"
		}

		return elem + "[]"
	default:
		return f.Type.String()
	}
}

// Shape is an ordered set of named fields.
type Shape struct {
	// Name is the type name of the record, may be empty for anonymous shapes.
	Name   string
	Fields []Field
}

// New creates a Shape with the given fields in declaration order.
func New(name string, fields ...Field) *Shape {
	return &Shape{Name: name, Fields: fields}
}

// Field returns the field with the given name.
func (s *Shape) Field(name string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}

	return lo.Find(s.Fields, func(f Field) bool {
		return f.Name == name
	})
}

// FieldNames returns field names in declaration order.
func (s *Shape) FieldNames() []string {
	if s == nil {
		return nil
	}

	return lo.Map(s.Fields, func(f Field, _ int) string {
		return f.Name
	})
}

// TypeString returns the type used for this shape in mapper signatures:
// the shape name when set, otherwise the inline record literal.
func (s *Shape) TypeString() string {
	if s == nil {
		return "{}"
	}

	if s.Name != "" {
		return s.Name
	}

	return s.Literal()
}

// Literal renders the shape as an inline record literal, e.g.
// "{ page: number; filters?: { sort: string } }". Named nested shapes are
// referenced by name.
func (s *Shape) Literal() string {
	if s == nil || len(s.Fields) == 0 {
		return "{}"
	}

	var b strings.Builder

	b.WriteString("{ ")

	for i, f := range s.Fields {
		if i > 0 {
			b.WriteString("; ")
		}

		b.WriteString(f.Name)

		if f.Optional {
			b.WriteByte('?')
		}

		b.WriteString(": ")
		b.WriteString(f.TypeString())
	}

	b.WriteString(" }")

	return b.String()
}
