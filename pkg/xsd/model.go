// Package xsd loads XML Schema documents into a resolved, read-only type
// graph: named and anonymous types, content particles, global elements,
// attributes and restriction facets.
//
// Named model groups and attribute groups are expanded where they are
// referenced, element references point at their global declaration and
// complex types derived by extension carry their base content. Consumers
// never need to resolve a QName themselves.
package xsd

import (
	"encoding/xml"
	"strconv"

	"github.com/blimu-dev/xsd2oas/pkg/utils"
)

// Namespace is the XML Schema namespace.
const Namespace = "http://www.w3.org/2001/XMLSchema"

// TypeKind discriminates simple from complex types.
type TypeKind int

const (
	SimpleKind TypeKind = iota
	ComplexKind
)

// Variety is the variety of a simple type.
type Variety int

const (
	Atomic Variety = iota
	List
	Union
)

// Derivation records how a complex type was derived from its base.
type Derivation int

const (
	DerivationNone Derivation = iota
	DerivationRestriction
	DerivationExtension
)

func (d Derivation) String() string {
	switch d {
	case DerivationRestriction:
		return "restriction"
	case DerivationExtension:
		return "extension"
	default:
		return "none"
	}
}

// Type is a simple or complex type definition. Anonymous types have a
// zero Name.
type Type struct {
	Name    xml.Name
	Kind    TypeKind
	Builtin bool
	Doc     string

	// Simple types.
	Variety     Variety
	Base        *Type
	Facets      []Facet
	Enumeration []string
	Members     []*Type
	ItemType    *Type

	// Complex types.
	Content       *Particle
	Attributes    []*Attribute
	Derivation    Derivation
	BaseType      *Type
	SimpleContent bool
	Mixed         bool
	Abstract      bool
}

// IsSimple reports whether t is a simple type.
func (t *Type) IsSimple() bool { return t.Kind == SimpleKind }

// IsComplex reports whether t is a complex type.
func (t *Type) IsComplex() bool { return t.Kind == ComplexKind }

// IsAnonymous reports whether t was declared inline.
func (t *Type) IsAnonymous() bool { return t.Name.Local == "" }

// IsUnion reports whether t is a union simple type.
func (t *Type) IsUnion() bool { return t.Variety == Union }

// IsList reports whether t is a list simple type.
func (t *Type) IsList() bool { return t.Variety == List }

// QualifiedName returns the name in Clark notation, "{ns}Local".
func (t *Type) QualifiedName() string {
	return utils.QualifiedName(t.Name.Space, t.Name.Local)
}

// Primitive returns the nearest built-in ancestor of a simple type, or nil.
func (t *Type) Primitive() *Type {
	for cur := t; cur != nil; cur = cur.Base {
		if cur.Builtin {
			return cur
		}
	}
	return nil
}

// EffectiveFacets returns the facets that apply to t: those inherited
// from its base chain overridden by its own. Pattern facets accumulate in
// declaration order.
func (t *Type) EffectiveFacets() []Facet {
	var chain []*Type
	for cur := t; cur != nil && !cur.Builtin; cur = cur.Base {
		chain = append(chain, cur)
	}
	var out []Facet
	index := map[string]int{}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, f := range chain[i].Facets {
			if pos, ok := index[f.Name]; ok && f.Name != "pattern" {
				out[pos] = f
				continue
			}
			index[f.Name] = len(out)
			out = append(out, f)
		}
	}
	return out
}

// EffectiveEnumeration returns the nearest non-empty enumeration on the
// base chain.
func (t *Type) EffectiveEnumeration() []string {
	for cur := t; cur != nil && !cur.Builtin; cur = cur.Base {
		if len(cur.Enumeration) > 0 {
			return cur.Enumeration
		}
	}
	return nil
}

// Facet is a restriction facet with its literal value, keyed by the
// facet's local name ("maxLength", "totalDigits", ...).
type Facet struct {
	Name  string
	Value string
}

// Occurs is a maxOccurs value; Unbounded stands for "unbounded".
type Occurs int

// Unbounded is maxOccurs="unbounded".
const Unbounded Occurs = -1

// IsUnbounded reports whether o is unbounded.
func (o Occurs) IsUnbounded() bool { return o < 0 }

func (o Occurs) String() string {
	if o.IsUnbounded() {
		return "unbounded"
	}
	return strconv.Itoa(int(o))
}

// ParticleKind is the closed set of content particle variants.
type ParticleKind int

const (
	ParticleElement ParticleKind = iota
	ParticleSequence
	ParticleChoice
	ParticleAll
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleElement:
		return "element"
	case ParticleSequence:
		return "sequence"
	case ParticleChoice:
		return "choice"
	case ParticleAll:
		return "all"
	default:
		return "particle(" + strconv.Itoa(int(k)) + ")"
	}
}

// Particle is a node of a content model: an element occurrence or a
// sequence/choice/all group.
type Particle struct {
	Kind      ParticleKind
	Element   *Element
	Children  []*Particle
	MinOccurs int
	MaxOccurs Occurs
}

// IsGroup reports whether p is a model group.
func (p *Particle) IsGroup() bool { return p.Kind != ParticleElement }

// Element is an element declaration or occurrence.
type Element struct {
	Name              xml.Name
	Type              *Type
	Doc               string
	MinOccurs         int
	MaxOccurs         Occurs
	Nillable          bool
	Default           string
	Fixed             string
	Abstract          bool
	Global            bool
	SubstitutionGroup xml.Name
	// Ref is the global declaration an <element ref="..."> points at.
	Ref *Element
}

// Repeatable reports whether the element may occur more than once.
func (e *Element) Repeatable() bool {
	return e.MaxOccurs.IsUnbounded() || e.MaxOccurs > 1
}

// QualifiedName returns the name in Clark notation.
func (e *Element) QualifiedName() string {
	return utils.QualifiedName(e.Name.Space, e.Name.Local)
}

// Attribute is an attribute use of a complex type.
type Attribute struct {
	Name    xml.Name
	Type    *Type
	Use     string
	Doc     string
	Default string
	Fixed   string
}

// Required reports whether use="required".
func (a *Attribute) Required() bool { return a.Use == "required" }

// Schema is a loaded schema set. Types and Elements keep declaration
// order across every loaded document.
type Schema struct {
	TargetNamespace      string
	ElementFormDefault   string
	AttributeFormDefault string
	Doc                  string

	Types    []*Type
	Elements []*Element

	// Imports lists imported namespaces (or locations when no namespace
	// is given); Includes lists included locations.
	Imports  []string
	Includes []string

	typeIndex    map[xml.Name]*Type
	localTypes   map[string]*Type
	elementIndex map[xml.Name]*Element
}

// LookupType returns the named type.
func (s *Schema) LookupType(name xml.Name) (*Type, bool) {
	t, ok := s.typeIndex[name]
	return t, ok
}

// HasType reports whether a named type with the given local (cleaned)
// name is declared.
func (s *Schema) HasType(local string) bool {
	_, ok := s.localTypes[local]
	return ok
}

// LookupElement returns the named global element.
func (s *Schema) LookupElement(name xml.Name) (*Element, bool) {
	e, ok := s.elementIndex[name]
	return e, ok
}

// SubstitutionGroups returns the heads of every substitution group in
// declaration order.
func (s *Schema) SubstitutionGroups() []xml.Name {
	var out []xml.Name
	seen := map[xml.Name]bool{}
	for _, e := range s.Elements {
		if e.SubstitutionGroup.Local == "" || seen[e.SubstitutionGroup] {
			continue
		}
		seen[e.SubstitutionGroup] = true
		out = append(out, e.SubstitutionGroup)
	}
	return out
}

func (s *Schema) index() {
	s.typeIndex = make(map[xml.Name]*Type, len(s.Types))
	s.localTypes = make(map[string]*Type, len(s.Types))
	for _, t := range s.Types {
		s.typeIndex[t.Name] = t
		if _, ok := s.localTypes[t.Name.Local]; !ok {
			s.localTypes[t.Name.Local] = t
		}
	}
	s.elementIndex = make(map[xml.Name]*Element, len(s.Elements))
	for _, e := range s.Elements {
		s.elementIndex[e.Name] = e
	}
}
