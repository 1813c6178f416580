package shape

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind classifies a field of a Shape.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindLeaf     // leaf
	KindBranch   // branch
	KindExcluded // excluded
)

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k >= KindLeaf && k <= KindExcluded
}
