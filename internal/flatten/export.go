package flatten

import (
	"gopkg.in/yaml.v3"
)

// ExportDocument is the YAML form of a flattened map.
type ExportDocument struct {
	Shape         string     `yaml:"shape"`
	ResourceState string     `yaml:"resource_state"`
	Params        string     `yaml:"params"`
	Paths         exportList `yaml:"paths"`
}

// ExportEntry describes one path in an ExportDocument.
type ExportEntry struct {
	Kind      string `yaml:"kind"`
	Node      string `yaml:"node"`
	Optional  bool   `yaml:"optional,omitempty"`
	Type      string `yaml:"type"`
	Signature string `yaml:"signature"`
}

type exportList struct {
	keys    []string
	entries []ExportEntry
}

// MarshalYAML writes paths as an ordered mapping.
func (l exportList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for i, key := range l.keys {
		var value yaml.Node

		if err := value.Encode(l.entries[i]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&value,
		)
	}

	return node, nil
}

// Export converts m into its YAML document form.
func Export(m *Map) *ExportDocument {
	doc := &ExportDocument{
		Shape:         m.ShapeName(),
		ResourceState: m.ResourceState().String(),
		Params:        m.Params().String(),
	}

	for _, e := range m.entries {
		doc.Paths.keys = append(doc.Paths.keys, e.Key)
		doc.Paths.entries = append(doc.Paths.entries, ExportEntry{
			Kind:      e.Kind.String(),
			Node:      e.NodeKind.String(),
			Optional:  e.Optional,
			Type:      e.ValueType,
			Signature: e.Signature,
		})
	}

	return doc
}

// ExportYAML renders m as a YAML document.
func ExportYAML(m *Map) ([]byte, error) {
	return yaml.Marshal(Export(m))
}
