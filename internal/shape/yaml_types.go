package shape

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a shape description.
//
//	version: "1"
//	name: Query
//	resource_state: ResourceState
//	params: Params
//	fields:
//	  pagination:
//	    optional: true
//	    fields:
//	      page: number
//	      filters:
//	        optional: true
//	        fields:
//	          search: { type: string, optional: true }
//	          order: { union: [asc, desc] }
//	  tags: { list: string }
type Document struct {
	Version       string    `yaml:"version"                  validate:"oneof=1"`
	Name          string    `yaml:"name"                     validate:"required"`
	ResourceState string    `yaml:"resource_state,omitempty"`
	Params        string    `yaml:"params,omitempty"`
	Fields        FieldList `yaml:"fields"                   validate:"required,min=1,dive"`
}

// FieldList keeps fields in document order.
type FieldList []FieldSpec

// IsZero lets `omitempty` drop only an absent list, not an empty mapping.
func (l FieldList) IsZero() bool {
	return l == nil
}

// FieldSpec is a single field entry. The key of the YAML mapping becomes Name.
// Exactly one of Type, Union, List or Fields describes the field. A present
// but empty fields mapping (`fields: {}`) describes a branch with no fields.
type FieldSpec struct {
	Name     string    `yaml:"-"                  validate:"required"`
	Type     string    `yaml:"type,omitempty"`
	Union    []string  `yaml:"union,omitempty"    validate:"omitempty,min=1,dive,required"`
	List     *ElemSpec `yaml:"list,omitempty"`
	Optional bool      `yaml:"optional,omitempty"`
	// TypeName names the nested shape of a branch.
	TypeName string    `yaml:"name,omitempty"`
	Fields   FieldList `yaml:"fields,omitempty"   validate:"omitempty,dive"`
}

// ElemSpec is the element type of a list field: a bare type name
// (`list: string`) or a mapping with a union (`list: { union: [a, b] }`).
type ElemSpec struct {
	Type  string   `yaml:"type,omitempty"`
	Union []string `yaml:"union,omitempty" validate:"omitempty,min=1,dive,required"`
}

type elemSpecBody ElemSpec

// ElemOf returns the ElemSpec describing t.
func ElemOf(t TypeRef) *ElemSpec {
	if t.IsUnion() {
		return &ElemSpec{Union: append([]string(nil), t.Literals...)}
	}

	return &ElemSpec{Type: t.Name}
}

// TypeRef converts the element spec back into a TypeRef.
func (e *ElemSpec) TypeRef() TypeRef {
	if len(e.Union) > 0 {
		return Union(e.Union...)
	}

	return Named(e.Type)
}

// UnmarshalYAML accepts a bare type name or a mapping.
func (e *ElemSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*e = ElemSpec{}

		return node.Decode(&e.Type)

	case yaml.MappingNode:
		var body elemSpecBody

		if err := node.Decode(&body); err != nil {
			return err
		}

		*e = ElemSpec(body)

		return nil

	default:
		return fmt.Errorf("line %d: expected list element type or mapping, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML writes plain element types in the short scalar form.
func (e ElemSpec) MarshalYAML() (any, error) {
	if len(e.Union) == 0 {
		return e.Type, nil
	}

	return elemSpecBody(e), nil
}

// fieldSpecBody is FieldSpec without YAML methods, used to decode and encode the
// mapping form without recursing into FieldSpec.UnmarshalYAML.
type fieldSpecBody FieldSpec

// UnmarshalYAML decodes a mapping of field name to field spec, keeping order.
func (l *FieldList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of fields, got %v", node.Line, kindName(node.Kind))
	}

	out := make(FieldList, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var spec FieldSpec

		if err := valueNode.Decode(&spec); err != nil {
			return fmt.Errorf("field %q: %w", keyNode.Value, err)
		}

		spec.Name = keyNode.Value
		out = append(out, spec)
	}

	*l = out

	return nil
}

// MarshalYAML encodes the list as an ordered mapping.
func (l FieldList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, spec := range l {
		var value yaml.Node

		if err := value.Encode(spec); err != nil {
			return nil, fmt.Errorf("field %q: %w", spec.Name, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: spec.Name},
			&value,
		)
	}

	return node, nil
}

// UnmarshalYAML accepts either a bare type name ("number") or a mapping.
func (s *FieldSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var typ string

		if err := node.Decode(&typ); err != nil {
			return err
		}

		*s = FieldSpec{Type: typ}

		return nil

	case yaml.MappingNode:
		var body fieldSpecBody

		if err := node.Decode(&body); err != nil {
			return err
		}

		*s = FieldSpec(body)

		return nil

	default:
		return fmt.Errorf("line %d: expected type name or mapping, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML writes required plain leaves in the short scalar form.
func (s FieldSpec) MarshalYAML() (any, error) {
	if s.Type != "" && !s.Optional && s.TypeName == "" && len(s.Union) == 0 && s.List == nil && s.Fields == nil {
		return s.Type, nil
	}

	return fieldSpecBody(s), nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
