package shape

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"path-flattener/internal/diagnostic"
	"path-flattener/internal/dotpath"
)

// Defaults applied to documents that omit them.
const (
	DefaultVersion       = "1"
	DefaultResourceState = "ResourceState"
	DefaultParams        = "Params"
)

// Diagnostic codes reported while converting a Document.
const (
	CodeAmbiguousField = "ambiguous_field"
	CodeEmptyField     = "empty_field"
)

var validate = validator.New()

// LoadFile loads and parses a YAML shape document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shape file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse shape YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&doc)

	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid shape document: %w", err)
	}

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = DefaultVersion
	}

	if doc.ResourceState == "" {
		doc.ResourceState = DefaultResourceState
	}

	if doc.Params == "" {
		doc.Params = DefaultParams
	}
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// WriteFile writes a Document to the given path.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal shape: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write shape file %s: %w", path, err)
	}

	return nil
}

// ResourceStateType returns the resource state as a TypeRef.
func (d *Document) ResourceStateType() TypeRef {
	return Named(d.ResourceState)
}

// ParamsType returns the params as a TypeRef.
func (d *Document) ParamsType() TypeRef {
	return Named(d.Params)
}

// Shape converts the document into a validated Shape.
func (d *Document) Shape() (*Shape, error) {
	res := &diagnostic.Diagnostics{}
	s := buildShape(d.Name, d.Fields, d.Name, dotpath.Path{}, res)

	res.Merge(*s.Validate())

	if res.HasErrors() {
		return nil, fmt.Errorf("shape %q: %w", d.Name, res.Error())
	}

	return s, nil
}

func buildShape(name string, specs FieldList, root string, prefix dotpath.Path, res *diagnostic.Diagnostics) *Shape {
	s := &Shape{Name: name, Fields: make([]Field, 0, len(specs))}

	for _, spec := range specs {
		s.Fields = append(s.Fields, buildField(spec, root, prefix, res))
	}

	return s
}

func buildField(spec FieldSpec, root string, prefix dotpath.Path, res *diagnostic.Diagnostics) Field {
	p := prefix.Append(spec.Name)

	forms := 0
	for _, set := range []bool{spec.Type != "", len(spec.Union) > 0, spec.List != nil, spec.Fields != nil} {
		if set {
			forms++
		}
	}

	switch {
	case forms == 0:
		res.AddError(CodeEmptyField, "field needs one of type, union, list or fields", root, p.String())
	case forms > 1:
		res.AddError(CodeAmbiguousField, "field sets more than one of type, union, list and fields", root, p.String())
	}

	f := Field{Name: spec.Name, Optional: spec.Optional}

	switch {
	case spec.Fields != nil:
		f.Kind = KindBranch
		f.Shape = buildShape(spec.TypeName, spec.Fields, root, p, res)
	case spec.List != nil:
		f.Kind = KindExcluded
		f.Type = spec.List.TypeRef()
	case len(spec.Union) > 0:
		f.Kind = KindLeaf
		f.Type = Union(spec.Union...)
	default:
		f.Kind = KindLeaf
		f.Type = Named(spec.Type)
	}

	return f
}

// NewDocument builds a Document describing s.
func NewDocument(s *Shape, resourceState, params TypeRef) *Document {
	return &Document{
		Version:       DefaultVersion,
		Name:          s.Name,
		ResourceState: resourceState.String(),
		Params:        params.String(),
		Fields:        specsOf(s),
	}
}

func specsOf(s *Shape) FieldList {
	if s == nil {
		return nil
	}

	out := make(FieldList, 0, len(s.Fields))

	for _, f := range s.Fields {
		spec := FieldSpec{Name: f.Name, Optional: f.Optional}

		switch f.Kind {
		case KindBranch:
			spec.Fields = specsOf(f.Shape)
			if f.Shape != nil {
				spec.TypeName = f.Shape.Name
			}
		case KindExcluded:
			spec.List = ElemOf(f.Type)
		default:
			if f.Type.IsUnion() {
				spec.Union = append([]string(nil), f.Type.Literals...)
			} else {
				spec.Type = f.Type.Name
			}
		}

		out = append(out, spec)
	}

	return out
}
