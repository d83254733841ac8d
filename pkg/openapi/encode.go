package openapi

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects the textual encoding of a document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat parses a case-insensitive format name. "yml" is accepted as yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want yaml or json)", s)
	}
}

// Encode writes d to w in the given format.
func Encode(w io.Writer, d *Document, format Format) error {
	switch format {
	case FormatJSON:
		return EncodeJSON(w, d)
	case FormatYAML, "":
		return EncodeYAML(w, d)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Marshal renders d in the given format.
func Marshal(d *Document, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, d, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeYAML writes d as a YAML document with two-space indentation.
func EncodeYAML(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.Node()); err != nil {
		return err
	}
	return enc.Close()
}

// EncodeJSON writes d as indented JSON.
func EncodeJSON(w io.Writer, d *Document) error {
	data, err := gojson.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// MarshalYAML implements yaml.Marshaler.
func (d *Document) MarshalYAML() (interface{}, error) {
	return d.Node(), nil
}

// MarshalJSON implements json.Marshaler. Key order follows the YAML node tree.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, d.Node()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (s *Schema) MarshalYAML() (interface{}, error) {
	return s.Node(), nil
}

// MarshalJSON implements json.Marshaler.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, s.Node()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Node builds the ordered YAML tree of the document.
func (d *Document) Node() *yaml.Node {
	info := mapping()
	appendPair(info, "title", strNode(d.Info.Title))
	appendPair(info, "version", strNode(d.Info.Version))
	if d.Info.Description != "" {
		appendPair(info, "description", strNode(d.Info.Description))
	}

	schemas := mapping()
	for _, ns := range d.Schemas {
		appendPair(schemas, ns.Name, ns.Schema.Node())
	}
	components := mapping()
	appendPair(components, "schemas", schemas)

	version := d.OpenAPI
	if version == "" {
		version = Version
	}
	root := mapping()
	appendPair(root, "openapi", strNode(version))
	appendPair(root, "info", info)
	appendPair(root, "paths", mapping())
	appendPair(root, "components", components)
	return root
}

// Node builds the ordered YAML tree of the schema. Absent fields are
// omitted; a reference renders as a single "$ref" key.
func (s *Schema) Node() *yaml.Node {
	n := mapping()
	if s == nil {
		return n
	}
	if s.IsRef() {
		appendPair(n, "$ref", strNode(s.RefPointer()))
		return n
	}
	if s.Kind != KindNone {
		appendPair(n, "type", strNode(string(s.Kind)))
	}
	if s.Format != "" {
		appendPair(n, "format", strNode(s.Format))
	}
	if s.Title != "" {
		appendPair(n, "title", strNode(s.Title))
	}
	if s.Description != "" {
		appendPair(n, "description", strNode(s.Description))
	}
	if s.Enum != nil {
		enum := sequence()
		for _, v := range s.Enum {
			enum.Content = append(enum.Content, valueNode(v))
		}
		appendPair(n, "enum", enum)
	}
	if s.Default != nil {
		appendPair(n, "default", valueNode(s.Default))
	}
	if s.Minimum != nil {
		appendPair(n, "minimum", numberNode(*s.Minimum))
	}
	if s.Maximum != nil {
		appendPair(n, "maximum", numberNode(*s.Maximum))
	}
	if s.ExclusiveMinimum {
		appendPair(n, "exclusiveMinimum", boolNode(true))
	}
	if s.ExclusiveMaximum {
		appendPair(n, "exclusiveMaximum", boolNode(true))
	}
	if s.MultipleOf != nil {
		appendPair(n, "multipleOf", numberNode(*s.MultipleOf))
	}
	if s.MinLength != nil {
		appendPair(n, "minLength", intNode(*s.MinLength))
	}
	if s.MaxLength != nil {
		appendPair(n, "maxLength", intNode(*s.MaxLength))
	}
	if s.Pattern != "" {
		appendPair(n, "pattern", strNode(s.Pattern))
	}
	if s.MinItems != nil {
		appendPair(n, "minItems", intNode(*s.MinItems))
	}
	if s.MaxItems != nil {
		appendPair(n, "maxItems", intNode(*s.MaxItems))
	}
	if s.Items != nil {
		appendPair(n, "items", s.Items.Node())
	}
	if len(s.Properties) > 0 {
		props := mapping()
		for _, p := range s.Properties {
			appendPair(props, p.Name, p.Schema.Node())
		}
		appendPair(n, "properties", props)
	}
	if len(s.Required) > 0 {
		req := sequence()
		for _, r := range s.Required {
			req.Content = append(req.Content, strNode(r))
		}
		appendPair(n, "required", req)
	}
	appendComposition(n, "allOf", s.AllOf)
	appendComposition(n, "anyOf", s.AnyOf)
	appendComposition(n, "oneOf", s.OneOf)
	if s.Nullable {
		appendPair(n, "nullable", boolNode(true))
	}
	if x := s.XML.node(); x != nil {
		appendPair(n, "xml", x)
	}
	return n
}

func (x *XML) node() *yaml.Node {
	if x == nil {
		return nil
	}
	n := mapping()
	if x.Name != "" {
		appendPair(n, "name", strNode(x.Name))
	}
	if x.Namespace != "" {
		appendPair(n, "namespace", strNode(x.Namespace))
	}
	if x.Prefix != "" {
		appendPair(n, "prefix", strNode(x.Prefix))
	}
	if x.Attribute {
		appendPair(n, "attribute", boolNode(true))
	}
	if x.Wrapped {
		appendPair(n, "wrapped", boolNode(true))
	}
	if x.Nillable {
		appendPair(n, "x-nillable", boolNode(true))
	}
	if len(n.Content) == 0 {
		return nil
	}
	return n
}

func appendComposition(n *yaml.Node, key string, list []*Schema) {
	if len(list) == 0 {
		return
	}
	seq := sequence()
	for _, s := range list {
		seq.Content = append(seq.Content, s.Node())
	}
	appendPair(n, key, seq)
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func appendPair(n *yaml.Node, key string, value *yaml.Node) {
	n.Content = append(n.Content, strNode(key), value)
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func boolNode(v bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}
}

func intNode(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}

// floatNode renders integral values without a fractional part so that
// bounds such as 120 or -99999 read as integers.
func floatNode(v float64) *yaml.Node {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strNode(strconv.FormatFloat(v, 'g', -1, 64))
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

// numberNode renders an exact decimal; integral values carry no
// fractional part.
func numberNode(v Number) *yaml.Node {
	tag := "!!float"
	if v.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.String()}
}

func valueNode(v any) *yaml.Node {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case string:
		return strNode(t)
	case bool:
		return boolNode(t)
	case int:
		return intNode(t)
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(t, 10)}
	case float64:
		return floatNode(t)
	default:
		return strNode(fmt.Sprint(t))
	}
}

func writeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, n.Content[0])
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := gojson.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!int", "!!float", "!!bool", "!!null":
			buf.WriteString(n.Value)
		default:
			s, err := gojson.Marshal(n.Value)
			if err != nil {
				return err
			}
			buf.Write(s)
		}
	default:
		return fmt.Errorf("openapi: cannot encode yaml node kind %d as json", n.Kind)
	}
	return nil
}
