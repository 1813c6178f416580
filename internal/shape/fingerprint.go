package shape

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Fingerprint returns a stable content hash of s. Two shapes with the same
// fields, kinds, optionality and types in the same order share a fingerprint.
// Shapes containing cycles get a fingerprint of their acyclic prefix.
func (s *Shape) Fingerprint() string {
	var b strings.Builder

	writeCanonical(&b, s, map[*Shape]bool{})

	sum := sha256.Sum256([]byte(b.String()))

	return hex.EncodeToString(sum[:])
}

func writeCanonical(b *strings.Builder, s *Shape, onStack map[*Shape]bool) {
	if s == nil {
		b.WriteString("nil")
		return
	}

	if onStack[s] {
		b.WriteString("cycle")
		return
	}

	onStack[s] = true
	defer delete(onStack, s)

	b.WriteString(strconv.Quote(s.Name))
	b.WriteByte('{')

	for _, f := range s.Fields {
		b.WriteString(strconv.Quote(f.Name))
		b.WriteByte(':')
		b.WriteString(f.Kind.String())

		if f.Optional {
			b.WriteByte('?')
		}

		b.WriteByte(':')

		if f.Kind == KindBranch {
			writeCanonical(b, f.Shape, onStack)
		} else {
			b.WriteString(strconv.Quote(f.Type.Name))

			for _, l := range f.Type.Literals {
				b.WriteByte('|')
				b.WriteString(strconv.Quote(l))
			}
		}

		b.WriteByte(';')
	}

	b.WriteByte('}')
}
