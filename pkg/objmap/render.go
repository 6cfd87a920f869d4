package objmap

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON writes the value back as JSON, keeping map key order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		if v.b {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case KindNumber:
		return []byte(v.num), nil
	case KindString:
		return json.Marshal(v.str)
	case KindList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindMap:
		return v.m.MarshalJSON()
	default:
		return []byte("null"), nil
	}
}

// MarshalJSON writes the map as a JSON object in insertion order.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		data, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.node(), nil
}

// MarshalYAML implements yaml.Marshaler, keeping key order.
func (m Map) MarshalYAML() (any, error) {
	return m.node(), nil
}

// YAML renders the map as a YAML document.
func (m Map) YAML() ([]byte, error) {
	return yaml.Marshal(m)
}

func (m Map) node() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			v.node(),
		)
	}
	return n
}

func (v Value) node() *yaml.Node {
	switch v.kind {
	case KindBool:
		val := "false"
		if v.b {
			val = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: val}
	case KindNumber:
		tag := "!!float"
		if v.isIntegerLiteral() {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.num}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.str}
	case KindList:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.list {
			n.Content = append(n.Content, item.node())
		}
		return n
	case KindMap:
		return v.m.node()
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
