package openapi

import (
	"strings"

	"github.com/mohae/deepcopy"
)

// RefPrefix is the JSON pointer prefix of component schema references.
const RefPrefix = "#/components/schemas/"

// Kind represents the primitive "type" keyword of a schema
type Kind string

const (
	KindNone    Kind = ""
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// Schema is one OpenAPI schema object. A schema is either a reference
// (Ref set, every structural field empty) or an inline definition.
type Schema struct {
	// Ref is the component name this schema points at.
	Ref string

	Kind        Kind
	Format      string
	Title       string
	Description string
	Enum        []any
	Default     any

	// Numeric constraints
	Minimum          *Number
	Maximum          *Number
	ExclusiveMinimum bool
	ExclusiveMaximum bool
	MultipleOf       *Number

	// String constraints
	MinLength *int
	MaxLength *int
	Pattern   string

	// Array
	Items    *Schema
	MinItems *int
	MaxItems *int

	// Object
	Properties []Property
	Required   []string

	// Compositions
	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema

	Nullable bool
	XML      *XML
}

// Property is a named entry of an object schema. Properties keep the
// order in which they were declared.
type Property struct {
	Name   string
	Schema *Schema
}

// XML carries the XML binding of a schema.
type XML struct {
	Name      string
	Namespace string
	Prefix    string
	Attribute bool
	Wrapped   bool
	// Nillable mirrors xsi:nil support on the element.
	Nillable bool
}

// NewRef returns a pure reference to the named component.
func NewRef(name string) *Schema {
	return &Schema{Ref: name}
}

// NewObject returns an empty object schema.
func NewObject() *Schema {
	return &Schema{Kind: KindObject}
}

// NewArray wraps items in an array schema.
func NewArray(items *Schema) *Schema {
	return &Schema{Kind: KindArray, Items: items}
}

// IsRef reports whether s is a reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// RefPointer returns the "$ref" value of a reference schema.
func (s *Schema) RefPointer() string {
	if !s.IsRef() {
		return ""
	}
	if strings.HasPrefix(s.Ref, "#/") {
		return s.Ref
	}
	return RefPrefix + s.Ref
}

// Clone returns a deep copy of s.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	return deepcopy.Copy(s).(*Schema)
}

// Property returns the schema of the named property.
func (s *Schema) Property(name string) (*Schema, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}

// SetProperty adds a property, or replaces it in place when the name
// already exists.
func (s *Schema) SetProperty(name string, prop *Schema) {
	for i := range s.Properties {
		if s.Properties[i].Name == name {
			s.Properties[i].Schema = prop
			return
		}
	}
	s.Properties = append(s.Properties, Property{Name: name, Schema: prop})
}

// PropertyNames returns property names in declaration order.
func (s *Schema) PropertyNames() []string {
	names := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		names = append(names, p.Name)
	}
	return names
}

// AddRequired marks a property as required; duplicates are ignored.
func (s *Schema) AddRequired(name string) {
	if s.IsRequired(name) {
		return
	}
	s.Required = append(s.Required, name)
}

// IsRequired reports whether name is in the required list.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Ptr returns a pointer to v. Handy for the optional bound fields.
func Ptr[T any](v T) *T {
	return &v
}
