package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	// maxDepth bounds nesting, including nesting reached through aliases.
	maxDepth = 256
	// maxNodes bounds the number of values a document may expand to.
	maxNodes = 1_000_000
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse decodes a JSON or YAML document into a Value tree. Empty input yields null.
//
// Documents opening with '{' or '[' are decoded as JSON. Flow-style YAML that
// is not valid JSON, such as {name: App}, falls back to the YAML decoder.
func Parse(data []byte) (*Value, error) {
	return parse(data, maxNodes)
}

func parse(data []byte, limit int) (*Value, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if !looksLikeJSON(data) {
		return parseYAML(data, limit)
	}

	v, err := parseJSON(data, limit)
	var syntaxErr *json.SyntaxError
	if err == nil || !errors.As(err, &syntaxErr) {
		return v, err
	}
	if v, yamlErr := parseYAML(data, limit); yamlErr == nil {
		return v, nil
	}
	return nil, err
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// builder counts the values created for one document.
type builder struct {
	nodes int
	limit int
}

func (b *builder) count(line int) error {
	b.nodes++
	if b.nodes > b.limit {
		return fmt.Errorf("line %d: document expands to more than %d values", line, b.limit)
	}
	return nil
}

func parseYAML(data []byte, limit int) (*Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Null(), nil
		}
		return nil, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("line %d: multiple documents are not supported", extra.Line)
	}

	b := &builder{limit: limit}
	return b.fromNode(&doc, 0)
}

func (b *builder) fromNode(node *yaml.Node, depth int) (*Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("line %d: document nested deeper than %d levels", node.Line, maxDepth)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return &Value{kind: KindNull, line: node.Line}, nil
		}
		return b.fromNode(node.Content[0], depth)
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, fmt.Errorf("line %d: unresolved alias %q", node.Line, node.Value)
		}
		// Every expansion of an alias is a fresh subtree and counts again.
		return b.fromNode(node.Alias, depth+1)
	}

	if err := b.count(node.Line); err != nil {
		return nil, err
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return fromScalar(node)
	case yaml.SequenceNode:
		items := make([]*Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := b.fromNode(child, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return &Value{kind: KindArray, items: items, line: node.Line}, nil
	case yaml.MappingNode:
		members := make([]Member, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
				keyNode = keyNode.Alias
			}
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: object keys must be scalars", keyNode.Line)
			}
			child, err := b.fromNode(node.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			members = append(members, Member{Key: keyNode.Value, Value: child})
		}
		return &Value{kind: KindObject, members: members, line: node.Line}, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", node.Line, node.Kind)
	}
}

func fromScalar(node *yaml.Node) (*Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return &Value{kind: KindNull, line: node.Line}, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return &Value{kind: KindBool, b: b, line: node.Line}, nil
	case "!!int", "!!float":
		var n float64
		if err := node.Decode(&n); err != nil {
			return nil, err
		}
		return &Value{kind: KindNumber, n: n, line: node.Line}, nil
	default:
		// !!str, !!timestamp, !!binary and custom tags keep their source text.
		return &Value{kind: KindString, s: node.Value, line: node.Line}, nil
	}
}
