package flatten

//go:generate go tool stringer -type=ValueKind -linecomment -output=kind_string.go

// ValueKind is what a flattened path maps to.
type ValueKind int

const (
	_ ValueKind = iota // zero value is invalid

	ValueKindMapper          // mapper
	ValueKindBooleanOrMapper // boolean_or_mapper
)

// AllowsBoolean reports whether a plain boolean flag is accepted.
func (k ValueKind) AllowsBoolean() bool {
	return k == ValueKindBooleanOrMapper
}
