package converter

import (
	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/xsd"
)

// AnalyzeUnion converts the member types of a union. It returns nil for
// no members, the member schema itself for a single member and a oneOf
// over all members, in declaration order, otherwise.
func AnalyzeUnion(members []*xsd.Type) *openapi.Schema {
	var out []*openapi.Schema
	for _, m := range members {
		if m == nil {
			continue
		}
		out = append(out, memberSchema(m))
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}
	return &openapi.Schema{OneOf: out}
}

// memberSchema derives a union member from its built-in base plus its
// own facets and enumeration.
func memberSchema(m *xsd.Type) *openapi.Schema {
	switch {
	case m.IsUnion() && !m.Builtin:
		if s := AnalyzeUnion(m.Members); s != nil {
			return s
		}
	case m.IsList() && !m.Builtin:
		return openapi.NewArray(memberSchema(m.ItemType))
	}
	s := &openapi.Schema{}
	if prim := m.Primitive(); prim != nil {
		base := MapBuiltin(prim.Name.Local)
		s.Kind, s.Format = base.Kind, base.Format
	} else {
		s.Kind = openapi.KindString
	}
	ApplyFacets(s, m.EffectiveFacets())
	s.Enum = coerceAll(m.EffectiveEnumeration(), s.Kind)
	return s
}
