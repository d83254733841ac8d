package converter

import (
	"fmt"

	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/xsd"
)

// convertComplexType converts a complex type into an object schema.
// Named types get their XML binding; registration in the registry is
// left to the caller so self-references inside the content still see the
// type as pending.
func (c *converter) convertComplexType(t *xsd.Type) *openapi.Schema {
	s := openapi.NewObject()
	s.Description = t.Doc
	if !t.IsAnonymous() {
		s.XML = c.typeBinding(t.Name.Local)
	}
	if t.Content != nil {
		c.processParticle(t, t.Content, s, false)
	}
	for _, a := range t.Attributes {
		c.addAttribute(a, s)
	}
	return s
}

// processParticle walks a content particle depth first. Elements inside
// an optional group never become required.
func (c *converter) processParticle(owner *xsd.Type, p *xsd.Particle, s *openapi.Schema, optional bool) {
	optional = optional || p.MinOccurs == 0
	switch p.Kind {
	case xsd.ParticleElement:
		c.addElement(p.Element, s, optional)
	case xsd.ParticleSequence, xsd.ParticleAll:
		for _, child := range p.Children {
			if child.Kind == xsd.ParticleElement {
				c.addElement(child.Element, s, optional)
				continue
			}
			c.processParticle(owner, child, s, optional)
		}
	case xsd.ParticleChoice:
		c.processChoice(owner, p, s, optional)
	}
}

func (c *converter) addElement(e *xsd.Element, s *openapi.Schema, optional bool) {
	if e == nil || e.MaxOccurs == 0 {
		return
	}
	name := e.Name.Local
	s.SetProperty(name, c.convertElement(e))
	if e.MinOccurs > 0 && !optional {
		s.AddRequired(name)
	}
}

// processChoice applies the choice rule: a single effective option merges
// into the parent, two or more become oneOf. A type with several such
// choices keeps the first as oneOf and adds the others under allOf.
func (c *converter) processChoice(owner *xsd.Type, p *xsd.Particle, s *openapi.Schema, optional bool) {
	var options []*openapi.Schema
	for _, child := range p.Children {
		if child.Kind == xsd.ParticleElement {
			e := child.Element
			if e == nil || e.MaxOccurs == 0 {
				continue
			}
			opt := openapi.NewObject()
			opt.SetProperty(e.Name.Local, c.convertElement(e))
			if e.MinOccurs > 0 {
				opt.AddRequired(e.Name.Local)
			}
			options = append(options, opt)
			continue
		}

		opt := openapi.NewObject()
		c.processParticle(owner, child, opt, false)
		if len(opt.Properties) == 0 && len(opt.OneOf) == 0 && len(opt.AllOf) == 0 {
			continue
		}
		c.warn(fmt.Sprintf("Choice option in %s is a nested %s group; converted as an inline object", ownerName(owner), child.Kind),
			"type", ownerName(owner))
		options = append(options, opt)
	}

	switch len(options) {
	case 0:
		return
	case 1:
		merge(s, options[0], optional)
		return
	}
	if len(s.OneOf) == 0 {
		s.OneOf = options
		return
	}
	s.AllOf = append(s.AllOf, &openapi.Schema{OneOf: options})
}

// merge folds an object schema into dst.
func merge(dst, src *openapi.Schema, optional bool) {
	for _, p := range src.Properties {
		dst.SetProperty(p.Name, p.Schema)
	}
	if !optional {
		for _, r := range src.Required {
			dst.AddRequired(r)
		}
	}
	switch {
	case len(src.OneOf) == 0:
	case len(dst.OneOf) == 0:
		dst.OneOf = src.OneOf
	default:
		dst.AllOf = append(dst.AllOf, &openapi.Schema{OneOf: src.OneOf})
	}
	dst.AllOf = append(dst.AllOf, src.AllOf...)
}

func (c *converter) addAttribute(a *xsd.Attribute, s *openapi.Schema) {
	if a == nil || a.Name.Local == "" {
		return
	}
	name := a.Name.Local
	var prop *openapi.Schema
	if a.Type == nil || (a.Type.IsComplex() && !a.Type.Builtin) {
		prop = MapBuiltin("string")
	} else {
		prop = c.convertSimpleType(a.Type, false)
	}
	if a.Doc != "" {
		prop.Description = a.Doc
	}
	prop.XML = &openapi.XML{Name: name, Namespace: a.Name.Space, Attribute: true}
	if lit := firstNonEmpty(a.Default, a.Fixed); lit != "" {
		prop.Default = coerce(lit, prop.Kind)
	}
	s.SetProperty(name, prop)
	if a.Required() {
		s.AddRequired(name)
	}
}

func ownerName(t *xsd.Type) string {
	if t == nil || t.IsAnonymous() {
		return "an anonymous type"
	}
	return t.Name.Local
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
