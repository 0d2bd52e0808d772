package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeRoster renders the roster as a YAML document.
// Employees keep their roster order and fields are written in form order.
// If selected is non-empty it is recorded under "selected".
func EncodeRoster(employees []Employee, selected string) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	if selected != "" {
		addStringField(doc, "selected", selected)
	}

	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range employees {
		seq.Content = append(seq.Content, buildEmployeeNode(e.Form()))
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "employees"},
		seq,
	)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode roster: %w", err)
	}
	return data, nil
}

// EncodeForm renders the form fields as a YAML mapping, for editing.
func EncodeForm(f Form) ([]byte, error) {
	data, err := yaml.Marshal(buildEmployeeNode(f))
	if err != nil {
		return nil, fmt.Errorf("failed to encode form: %w", err)
	}
	return data, nil
}

// DecodeForm parses a YAML mapping of form fields. Unknown keys are rejected
// so a mistyped field name doesn't silently leave the field empty.
func DecodeForm(data []byte) (Form, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Form{}, fmt.Errorf("invalid YAML: %w", err)
	}

	var f Form
	for key, value := range raw {
		if !f.Set(key, value) {
			return Form{}, fmt.Errorf("unknown field %q", key)
		}
	}
	return f, nil
}

// buildEmployeeNode creates a mapping node with every field present.
// Values are tagged as strings so ids and salaries like 1000 stay quoted.
func buildEmployeeNode(f Form) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range Fields {
		addStringField(node, name, f.Get(name))
	}
	return node
}

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}
