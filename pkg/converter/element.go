package converter

import (
	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/utils"
	"github.com/blimu-dev/xsd2oas/pkg/xsd"
)

// shouldReference reports whether an occurrence of the named type becomes
// a $ref: the name is declared in the schema or already known to the
// registry.
func (c *converter) shouldReference(name string) bool {
	clean := utils.CleanName(name)
	return c.schema.HasType(clean) || c.registry.State(clean) != Unseen
}

// convertElement converts one element occurrence: the type is referenced
// or converted inline, then the occurrence bounds decide between the
// singular schema and an array of it.
func (c *converter) convertElement(e *xsd.Element) *openapi.Schema {
	s := c.elementValue(e)
	if !s.IsRef() {
		if e.Doc != "" {
			s.Description = e.Doc
		}
		if s.XML == nil {
			s.XML = &openapi.XML{}
		}
		s.XML.Name = e.Name.Local
		s.XML.Namespace = e.Name.Space
		if s.XML.Namespace == "" {
			s.XML.Namespace = c.schema.TargetNamespace
		}
		if e.Nillable {
			s.XML.Nillable = true
		}
		if e.MinOccurs == 0 {
			s.Nullable = true
		}
		if lit := firstNonEmpty(e.Default, e.Fixed); lit != "" {
			s.Default = coerce(lit, s.Kind)
		}
	}

	if !e.Repeatable() {
		return s
	}
	arr := openapi.NewArray(s)
	if !e.MaxOccurs.IsUnbounded() {
		arr.MaxItems = openapi.Ptr(int(e.MaxOccurs))
	}
	if e.MinOccurs > 0 {
		arr.MinItems = openapi.Ptr(e.MinOccurs)
	}
	return arr
}

func (c *converter) elementValue(e *xsd.Element) *openapi.Schema {
	t := e.Type
	// A reference to a global element with an inline complex type points
	// at the element's own component, which also ends recursion through
	// the element.
	if g := e.Ref; g != nil {
		if key, ok := c.elementKeys[g]; ok {
			return openapi.NewRef(key)
		}
	}
	switch {
	case t == nil:
		return MapBuiltin("string")
	case t.Builtin:
		return c.valueSchema(t)
	case !t.IsAnonymous() && c.shouldReference(t.Name.Local):
		return openapi.NewRef(utils.CleanName(t.Name.Local))
	case t.IsComplex():
		return c.convertComplexType(t)
	}
	return c.convertSimpleType(t, false)
}
