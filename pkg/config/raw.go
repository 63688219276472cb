package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// rawDocument is a decoded document before typing: generic values plus the
// order in which each table's keys were declared.
type rawDocument struct {
	data  map[string]interface{}
	order map[string][]string
}

func newRawDocument() *rawDocument {
	return &rawDocument{
		data:  map[string]interface{}{},
		order: map[string][]string{},
	}
}

func tableID(path []string) string {
	return strings.Join(path, "\x00")
}

// record notes that the last element of key was declared inside the table
// named by the rest of key.
func (d *rawDocument) record(key []string) {
	if len(key) == 0 {
		return
	}
	parent := tableID(key[:len(key)-1])
	name := key[len(key)-1]
	for _, seen := range d.order[parent] {
		if seen == name {
			return
		}
	}
	d.order[parent] = append(d.order[parent], name)
}

// keys returns the keys of table, the table found at path, in declaration
// order. Keys the decoder did not report are appended sorted.
func (d *rawDocument) keys(table map[string]interface{}, path ...string) []string {
	out := make([]string, 0, len(table))
	seen := make(map[string]bool, len(table))
	for _, k := range d.order[tableID(path)] {
		if _, ok := table[k]; ok && !seen[k] {
			out = append(out, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range table {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func decodeTOML(data []byte) (*rawDocument, error) {
	doc := newRawDocument()
	md, err := toml.Decode(string(data), &doc.data)
	if err != nil {
		return nil, err
	}
	for _, key := range md.Keys() {
		doc.record(key)
	}
	return doc, nil
}

func decodeYAML(data []byte) (*rawDocument, error) {
	doc := newRawDocument()

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		// empty input
		return doc, nil
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return doc, nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: document root must be a mapping", node.Line)
	}

	value, err := doc.fromNode(node, nil)
	if err != nil {
		return nil, err
	}
	doc.data = value.(map[string]interface{})
	return doc, nil
}

func (d *rawDocument) fromNode(node *yaml.Node, path []string) (interface{}, error) {
	switch node.Kind {
	case yaml.MappingNode:
		table := make(map[string]interface{}, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			key := append(append([]string{}, path...), keyNode.Value)
			d.record(key)
			value, err := d.fromNode(valueNode, key)
			if err != nil {
				return nil, err
			}
			table[keyNode.Value] = value
		}
		return table, nil
	case yaml.SequenceNode:
		list := make([]interface{}, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := d.fromNode(item, path)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	case yaml.AliasNode:
		return d.fromNode(node.Alias, path)
	case yaml.ScalarNode:
		var value interface{}
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("line %d: unexpected yaml node", node.Line)
	}
}
