package converter

import (
	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/xsd"
)

// convertSimpleType converts a simple type definition. A domain overlay
// for the type's name wins over everything else, then union analysis,
// then list item conversion, then the built-in base with its facets and
// enumeration. When binding is set the named type gets its XML block.
func (c *converter) convertSimpleType(t *xsd.Type, binding bool) *openapi.Schema {
	s := c.simpleBody(t)
	if t.Doc != "" {
		s.Description = t.Doc
	}
	if binding && !t.IsAnonymous() {
		s.XML = c.typeBinding(t.Name.Local)
	}
	return s
}

func (c *converter) simpleBody(t *xsd.Type) *openapi.Schema {
	if !t.IsAnonymous() {
		if s, ok := MapDomain(t.Name.Local); ok {
			return s
		}
	}
	if t.Builtin {
		return MapBuiltin(t.Name.Local)
	}
	if t.IsUnion() {
		if s := AnalyzeUnion(t.Members); s != nil {
			return s
		}
	}
	if t.IsList() {
		arr := openapi.NewArray(c.valueSchema(t.ItemType))
		applyListFacets(arr, t.EffectiveFacets())
		return arr
	}

	s := &openapi.Schema{Kind: openapi.KindString}
	if prim := t.Primitive(); prim != nil {
		s = MapBuiltin(prim.Name.Local)
	}
	ApplyFacets(s, t.EffectiveFacets())
	s.Enum = coerceAll(t.EffectiveEnumeration(), s.Kind)
	return s
}

// valueSchema converts a simple type used as a value (list item,
// attribute, element of built-in type). Named types are referenced.
func (c *converter) valueSchema(t *xsd.Type) *openapi.Schema {
	switch {
	case t == nil:
		return MapBuiltin("string")
	case t.Builtin:
		if s, ok := MapDomain(t.Name.Local); ok {
			return s
		}
		return MapBuiltin(t.Name.Local)
	case !t.IsAnonymous() && c.shouldReference(t.Name.Local):
		return openapi.NewRef(t.Name.Local)
	case t.IsComplex():
		return c.convertComplexType(t)
	}
	return c.convertSimpleType(t, false)
}

// applyListFacets maps length facets of a list type onto item counts.
func applyListFacets(arr *openapi.Schema, facets []xsd.Facet) {
	var lengths openapi.Schema
	ApplyFacets(&lengths, facets)
	arr.MinItems = lengths.MinLength
	arr.MaxItems = lengths.MaxLength
}
