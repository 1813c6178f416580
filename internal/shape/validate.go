package shape

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"path-flattener/internal/diagnostic"
	"path-flattener/internal/dotpath"
)

// Diagnostic codes reported by Validate.
const (
	CodeNilShape       = "shape_is_nil"
	CodeEmptyName      = "empty_name"
	CodeInvalidName    = "invalid_name"
	CodeDuplicateField = "duplicate_field"
	CodeInvalidKind    = "invalid_kind"
	CodeMissingType    = "missing_type"
	CodeMissingShape   = "missing_shape"
	CodeCycle          = "cycle"
	CodeEmptyBranch    = "empty_branch"
	CodeOptionalList   = "optional_list"
)

// Validate checks that s is a well-formed tree of fields.
// All problems are collected; nothing stops at the first error.
func (s *Shape) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError(CodeNilShape, "shape is nil", "", "")
		return res
	}

	validateShape(s, s.Name, dotpath.Path{}, map[*Shape]bool{}, res)

	return res
}

func validateShape(s *Shape, root string, prefix dotpath.Path, onStack map[*Shape]bool, res *diagnostic.Diagnostics) {
	if onStack[s] {
		res.AddError(CodeCycle, "shape is reachable from itself", root, prefix.String())
		return
	}

	onStack[s] = true
	defer delete(onStack, s)

	dups := lo.FindDuplicatesBy(s.Fields, func(f Field) string {
		return f.Name
	})
	for _, d := range dups {
		res.AddError(CodeDuplicateField, fmt.Sprintf("duplicate field %q", d.Name), root, prefix.String())
	}

	for i, f := range s.Fields {
		if f.Name == "" {
			res.AddError(CodeEmptyName, fmt.Sprintf("field #%d has an empty name", i), root, prefix.String())
			continue
		}

		if strings.Contains(f.Name, dotpath.Separator) {
			res.AddError(CodeInvalidName, fmt.Sprintf("field name %q contains %q", f.Name, dotpath.Separator),
				root, prefix.String())

			continue
		}

		p := prefix.Append(f.Name)

		switch f.Kind {
		case KindLeaf:
			if f.Type.IsZero() {
				res.AddError(CodeMissingType, "leaf has no type", root, p.String())
			}

		case KindExcluded:
			if f.Type.IsZero() {
				res.AddError(CodeMissingType, "list has no element type", root, p.String())
			}

			if f.Optional {
				res.AddInfo(CodeOptionalList, "optional list is excluded like any other list", root, p.String())
			}

		case KindBranch:
			if f.Shape == nil {
				res.AddError(CodeMissingShape, "branch has no nested shape", root, p.String())
				continue
			}

			if len(f.Shape.Fields) == 0 {
				res.AddWarning(CodeEmptyBranch, "branch has no fields", root, p.String())
			}

			validateShape(f.Shape, root, p, onStack, res)

		default:
			res.AddError(CodeInvalidKind, fmt.Sprintf("invalid field kind %s", f.Kind), root, p.String())
		}
	}
}
