package openapi

// Version is the OpenAPI version written into every document.
const Version = "3.0.3"

// Info is the info object of a document.
type Info struct {
	Title       string
	Version     string
	Description string
}

// NamedSchema is one entry of components.schemas.
type NamedSchema struct {
	Name   string
	Schema *Schema
}

// Document is a schema-only OpenAPI document: paths are always empty and
// components.schemas keeps insertion order.
type Document struct {
	OpenAPI string
	Info    Info
	Schemas []NamedSchema
}

// NewDocument creates an empty document for the given info.
func NewDocument(info Info) *Document {
	return &Document{OpenAPI: Version, Info: info}
}

// AddSchema adds a component schema. An existing entry with the same name
// is replaced in place.
func (d *Document) AddSchema(name string, s *Schema) {
	for i := range d.Schemas {
		if d.Schemas[i].Name == name {
			d.Schemas[i].Schema = s
			return
		}
	}
	d.Schemas = append(d.Schemas, NamedSchema{Name: name, Schema: s})
}

// Schema looks up a component schema by name.
func (d *Document) Schema(name string) (*Schema, bool) {
	for _, ns := range d.Schemas {
		if ns.Name == name {
			return ns.Schema, true
		}
	}
	return nil, false
}

// SchemaNames returns component names in insertion order.
func (d *Document) SchemaNames() []string {
	names := make([]string, 0, len(d.Schemas))
	for _, ns := range d.Schemas {
		names = append(names, ns.Name)
	}
	return names
}
