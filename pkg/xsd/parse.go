package xsd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aqwari.net/xml/xmltree"
)

var (
	// ErrNotSchema is returned when a document's root is not xs:schema.
	ErrNotSchema = errors.New("document root is not an XML Schema")
	// ErrUnresolvedReference is returned when a type, element, group or
	// attribute reference names nothing declared in the loaded documents.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrCircularGroup is returned when a model group or attribute group
	// contains itself.
	ErrCircularGroup = errors.New("circular group reference")
)

// document is one parsed schema file.
type document struct {
	root     *xmltree.Element
	location string
	targetNS string

	elementQualified   bool
	attributeQualified bool
}

type decl struct {
	el  *xmltree.Element
	doc *document
}

// declKey identifies a redefinable declaration: kind is "type" or "group".
type declKey struct {
	kind string
	name xml.Name
}

type derivation struct {
	base    *Type
	content *Particle
	attrs   []*Attribute
}

type parser struct {
	docs []*document

	typeDecls      map[xml.Name]decl
	elementDecls   map[xml.Name]decl
	groupDecls     map[xml.Name]decl
	attrGroupDecls map[xml.Name]decl
	attrDecls      map[xml.Name]decl
	typeOrder      []xml.Name
	elementOrder   []xml.Name

	types       map[xml.Name]*Type
	elements    map[xml.Name]*Element
	builtins    map[string]*Type
	derivations map[*Type]*derivation
	refs        []*Element

	groupStack     map[xml.Name]bool
	attrGroupStack map[xml.Name]bool

	// Declarations replaced by xs:redefine, and the state needed to resolve
	// a redefinition's reference to itself.
	redefined          map[declKey]bool
	originals          map[declKey]decl
	originalTypes      map[xml.Name]*Type
	originalGroupStack map[xml.Name]bool
	redefining         xml.Name
}

func newParser(docs []*document) *parser {
	return &parser{
		docs:           docs,
		typeDecls:      map[xml.Name]decl{},
		elementDecls:   map[xml.Name]decl{},
		groupDecls:     map[xml.Name]decl{},
		attrGroupDecls: map[xml.Name]decl{},
		attrDecls:      map[xml.Name]decl{},
		types:          map[xml.Name]*Type{},
		elements:       map[xml.Name]*Element{},
		builtins:       map[string]*Type{},
		derivations:    map[*Type]*derivation{},
		groupStack:     map[xml.Name]bool{},
		attrGroupStack: map[xml.Name]bool{},

		redefined:          map[declKey]bool{},
		originals:          map[declKey]decl{},
		originalTypes:      map[xml.Name]*Type{},
		originalGroupStack: map[xml.Name]bool{},
	}
}

func isXSD(el *xmltree.Element, local string) bool {
	return el.Name.Space == Namespace && el.Name.Local == local
}

func newDocument(root *xmltree.Element, location, chameleonNS string) (*document, error) {
	if !isXSD(root, "schema") {
		return nil, fmt.Errorf("%s: %w (found <%s>)", location, ErrNotSchema, root.Name.Local)
	}
	d := &document{
		root:               root,
		location:           location,
		targetNS:           root.Attr("", "targetNamespace"),
		elementQualified:   root.Attr("", "elementFormDefault") == "qualified",
		attributeQualified: root.Attr("", "attributeFormDefault") == "qualified",
	}
	if d.targetNS == "" {
		d.targetNS = chameleonNS
	}
	return d, nil
}

// build collects every top-level declaration, resolves them and returns
// the finished schema.
func (p *parser) build() (*Schema, error) {
	for _, d := range p.docs {
		p.collect(d)
	}
	for _, name := range p.typeOrder {
		if _, err := p.namedType(name); err != nil {
			return nil, err
		}
	}
	for _, name := range p.elementOrder {
		if _, err := p.globalElement(name); err != nil {
			return nil, err
		}
	}
	if err := p.link(); err != nil {
		return nil, err
	}

	main := p.docs[0]
	s := &Schema{
		TargetNamespace:      main.root.Attr("", "targetNamespace"),
		ElementFormDefault:   formDefault(main.root.Attr("", "elementFormDefault")),
		AttributeFormDefault: formDefault(main.root.Attr("", "attributeFormDefault")),
		Doc:                  annotation(main.root),
	}
	for _, c := range children(main.root) {
		switch {
		case isXSD(c, "import"):
			ns := c.Attr("", "namespace")
			if ns == "" {
				ns = c.Attr("", "schemaLocation")
			}
			s.Imports = append(s.Imports, ns)
		case isXSD(c, "include"), isXSD(c, "redefine"):
			s.Includes = append(s.Includes, c.Attr("", "schemaLocation"))
		}
	}
	for _, name := range p.typeOrder {
		s.Types = append(s.Types, p.types[name])
	}
	for _, name := range p.elementOrder {
		s.Elements = append(s.Elements, p.elements[name])
	}
	s.index()
	return s, nil
}

func formDefault(v string) string {
	if v == "" {
		return "unqualified"
	}
	return v
}

func children(el *xmltree.Element) []*xmltree.Element {
	out := make([]*xmltree.Element, 0, len(el.Children))
	for i := range el.Children {
		if el.Children[i].Name.Space == Namespace {
			out = append(out, &el.Children[i])
		}
	}
	return out
}

func (p *parser) collect(d *document) {
	for _, c := range children(d.root) {
		if c.Name.Local == "redefine" {
			// Redefinitions override declarations of the included document.
			for _, r := range children(c) {
				p.declare(r, d, true)
			}
			continue
		}
		p.declare(c, d, false)
	}
}

func (p *parser) declare(c *xmltree.Element, d *document, override bool) {
	local := c.Attr("", "name")
	if local == "" {
		return
	}
	name := xml.Name{Space: d.targetNS, Local: local}
	var (
		decls map[xml.Name]decl
		order *[]xml.Name
		key   = declKey{name: name}
	)
	switch c.Name.Local {
	case "simpleType", "complexType":
		decls, order = p.typeDecls, &p.typeOrder
		key.kind = "type"
	case "element":
		decls, order = p.elementDecls, &p.elementOrder
	case "group":
		decls = p.groupDecls
		key.kind = "group"
	case "attributeGroup":
		decls = p.attrGroupDecls
	case "attribute":
		decls = p.attrDecls
	default:
		return
	}
	redefinable := override && key.kind != ""
	if prev, exists := decls[name]; exists {
		switch {
		case redefinable:
			p.originals[key] = prev
			p.redefined[key] = true
			decls[name] = decl{el: c, doc: d}
		case override:
			decls[name] = decl{el: c, doc: d}
		case p.redefined[key]:
			// The redefined document is read after the redefining one.
			p.originals[key] = decl{el: c, doc: d}
		}
		return
	}
	decls[name] = decl{el: c, doc: d}
	if redefinable {
		p.redefined[key] = true
	}
	if order != nil {
		*order = append(*order, name)
	}
}

// resolveName turns a QName attribute value into an expanded name.
func resolveName(el *xmltree.Element, qname string) xml.Name {
	return el.Resolve(strings.TrimSpace(qname))
}

// lookupName finds a declaration, falling back to the document's target
// namespace for unqualified references.
func lookupName[T any](m map[xml.Name]T, name xml.Name, d *document) (xml.Name, bool) {
	if _, ok := m[name]; ok {
		return name, true
	}
	if name.Space == "" || name.Space == Namespace {
		alt := xml.Name{Space: d.targetNS, Local: name.Local}
		if _, ok := m[alt]; ok {
			return alt, true
		}
	}
	return name, false
}

func (p *parser) typeRef(el *xmltree.Element, d *document, qname string) (*Type, error) {
	name := resolveName(el, qname)
	if name.Space == Namespace && IsBuiltin(name.Local) {
		return p.builtin(name.Local), nil
	}
	if found, ok := lookupName(p.typeDecls, name, d); ok {
		return p.namedType(found)
	}
	if name.Space == Namespace {
		return p.builtin(name.Local), nil
	}
	return nil, fmt.Errorf("%s: type %q: %w", d.location, qname, ErrUnresolvedReference)
}

func (p *parser) namedType(name xml.Name) (*Type, error) {
	if t, ok := p.types[name]; ok {
		return t, nil
	}
	dc, ok := p.typeDecls[name]
	if !ok {
		return nil, fmt.Errorf("type %s: %w", name.Local, ErrUnresolvedReference)
	}
	t := &Type{Name: name}
	p.types[name] = t

	prev := p.redefining
	p.redefining = xml.Name{}
	if p.redefined[declKey{kind: "type", name: name}] {
		p.redefining = name
	}
	defer func() { p.redefining = prev }()

	if err := p.fillType(t, dc.el, dc.doc); err != nil {
		return nil, err
	}
	return t, nil
}

// originalType returns the declaration a redefined type replaced. It is
// the base of the redefinition and is not listed in the schema.
func (p *parser) originalType(name xml.Name) (*Type, error) {
	if t, ok := p.originalTypes[name]; ok {
		return t, nil
	}
	dc, ok := p.originals[declKey{kind: "type", name: name}]
	if !ok {
		return nil, fmt.Errorf("redefined type %s: original declaration: %w", name.Local, ErrUnresolvedReference)
	}
	t := &Type{Name: name}
	p.originalTypes[name] = t

	prev := p.redefining
	p.redefining = xml.Name{}
	defer func() { p.redefining = prev }()

	if err := p.fillType(t, dc.el, dc.doc); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *parser) fillType(t *Type, el *xmltree.Element, d *document) error {
	if isXSD(el, "simpleType") {
		return p.parseSimpleType(t, el, d)
	}
	return p.parseComplexType(t, el, d)
}

func (p *parser) anonymousType(el *xmltree.Element, d *document) (*Type, error) {
	prev := p.redefining
	p.redefining = xml.Name{}
	defer func() { p.redefining = prev }()

	t := &Type{}
	if err := p.fillType(t, el, d); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *parser) parseSimpleType(t *Type, el *xmltree.Element, d *document) error {
	t.Kind = SimpleKind
	t.Doc = annotation(el)
	for _, c := range children(el) {
		switch c.Name.Local {
		case "restriction":
			base, err := p.restrictionBase(c, d)
			if err != nil {
				return err
			}
			t.Base = base
			t.Variety = base.Variety
			t.ItemType = base.ItemType
			t.Members = base.Members
			t.Facets, t.Enumeration = facets(c)
		case "list":
			t.Variety = List
			if item := c.Attr("", "itemType"); item != "" {
				it, err := p.typeRef(c, d, item)
				if err != nil {
					return err
				}
				t.ItemType = it
			}
			for _, inner := range children(c) {
				if inner.Name.Local == "simpleType" {
					it, err := p.anonymousType(inner, d)
					if err != nil {
						return err
					}
					t.ItemType = it
				}
			}
			if t.ItemType == nil {
				t.ItemType = p.builtin("anySimpleType")
			}
		case "union":
			t.Variety = Union
			for _, member := range strings.Fields(c.Attr("", "memberTypes")) {
				mt, err := p.typeRef(c, d, member)
				if err != nil {
					return err
				}
				t.Members = append(t.Members, mt)
			}
			for _, inner := range children(c) {
				if inner.Name.Local == "simpleType" {
					mt, err := p.anonymousType(inner, d)
					if err != nil {
						return err
					}
					t.Members = append(t.Members, mt)
				}
			}
		}
	}
	return nil
}

func (p *parser) restrictionBase(el *xmltree.Element, d *document) (*Type, error) {
	if base := el.Attr("", "base"); base != "" {
		if p.redefining.Local != "" {
			// Inside xs:redefine a type derives from its own original.
			if name, ok := lookupName(p.typeDecls, resolveName(el, base), d); ok && name == p.redefining {
				return p.originalType(name)
			}
		}
		return p.typeRef(el, d, base)
	}
	for _, c := range children(el) {
		if c.Name.Local == "simpleType" {
			return p.anonymousType(c, d)
		}
	}
	return p.builtin("anySimpleType"), nil
}

func facets(el *xmltree.Element) ([]Facet, []string) {
	var (
		out  []Facet
		enum []string
	)
	for _, c := range children(el) {
		switch c.Name.Local {
		case "annotation", "simpleType", "attribute", "attributeGroup", "anyAttribute",
			"sequence", "choice", "all", "group":
		case "enumeration":
			enum = append(enum, c.Attr("", "value"))
		default:
			out = append(out, Facet{Name: c.Name.Local, Value: strings.TrimSpace(c.Attr("", "value"))})
		}
	}
	return out, enum
}

func (p *parser) parseComplexType(t *Type, el *xmltree.Element, d *document) error {
	t.Kind = ComplexKind
	t.Doc = annotation(el)
	t.Mixed = el.Attr("", "mixed") == "true"
	t.Abstract = el.Attr("", "abstract") == "true"
	for _, c := range children(el) {
		switch c.Name.Local {
		case "complexContent", "simpleContent":
			t.SimpleContent = c.Name.Local == "simpleContent"
			if c.Attr("", "mixed") == "true" {
				t.Mixed = true
			}
			for _, dc := range children(c) {
				switch dc.Name.Local {
				case "extension":
					t.Derivation = DerivationExtension
				case "restriction":
					t.Derivation = DerivationRestriction
				default:
					continue
				}
				base, err := p.restrictionBase(dc, d)
				if err != nil {
					return err
				}
				content, attrs, err := p.contentModel(dc, d)
				if err != nil {
					return err
				}
				t.BaseType = base
				p.derivations[t] = &derivation{base: base, content: content, attrs: attrs}
			}
		}
	}
	if t.Derivation != DerivationNone {
		return nil
	}
	content, attrs, err := p.contentModel(el, d)
	if err != nil {
		return err
	}
	t.Content = content
	t.Attributes = attrs
	return nil
}

// contentModel reads the particle and attribute uses directly below el.
func (p *parser) contentModel(el *xmltree.Element, d *document) (*Particle, []*Attribute, error) {
	var (
		content *Particle
		attrs   []*Attribute
	)
	for _, c := range children(el) {
		switch c.Name.Local {
		case "sequence", "choice", "all", "group":
			part, err := p.particle(c, d)
			if err != nil {
				return nil, nil, err
			}
			if part != nil {
				content = part
			}
		case "attribute", "attributeGroup":
			more, err := p.attributes(c, d)
			if err != nil {
				return nil, nil, err
			}
			attrs = append(attrs, more...)
		}
	}
	return content, attrs, nil
}

func parseOccurs(el *xmltree.Element) (int, Occurs, error) {
	minOccurs, maxOccurs := 1, Occurs(1)
	if v := strings.TrimSpace(el.Attr("", "minOccurs")); v != "" {
		n, err := strconv.ParseUint(v, 10, 31)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid minOccurs attribute value %q", v)
		}
		minOccurs = int(n)
	}
	if v := strings.TrimSpace(el.Attr("", "maxOccurs")); v != "" {
		if v == "unbounded" {
			maxOccurs = Unbounded
		} else {
			n, err := strconv.ParseUint(v, 10, 31)
			if err != nil {
				return 0, 0, fmt.Errorf("invalid maxOccurs attribute value %q", v)
			}
			maxOccurs = Occurs(n)
		}
	}
	return minOccurs, maxOccurs, nil
}

func (p *parser) particle(el *xmltree.Element, d *document) (*Particle, error) {
	minOccurs, maxOccurs, err := parseOccurs(el)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.location, err)
	}
	part := &Particle{MinOccurs: minOccurs, MaxOccurs: maxOccurs}
	switch el.Name.Local {
	case "element":
		e, err := p.localElement(el, d, minOccurs, maxOccurs)
		if err != nil {
			return nil, err
		}
		part.Kind = ParticleElement
		part.Element = e
		return part, nil
	case "group":
		return p.groupRef(el, d, minOccurs, maxOccurs)
	case "sequence":
		part.Kind = ParticleSequence
	case "choice":
		part.Kind = ParticleChoice
	case "all":
		part.Kind = ParticleAll
	default:
		return nil, nil
	}
	for _, c := range children(el) {
		child, err := p.particle(c, d)
		if err != nil {
			return nil, err
		}
		if child != nil {
			part.Children = append(part.Children, child)
		}
	}
	return part, nil
}

func (p *parser) groupRef(el *xmltree.Element, d *document, minOccurs int, maxOccurs Occurs) (*Particle, error) {
	ref := el.Attr("", "ref")
	if ref == "" {
		return nil, nil
	}
	name, ok := lookupName(p.groupDecls, resolveName(el, ref), d)
	if !ok {
		return nil, fmt.Errorf("%s: group %q: %w", d.location, ref, ErrUnresolvedReference)
	}
	dc := p.groupDecls[name]
	if p.groupStack[name] {
		// A redefined group may include its original once.
		orig, ok := p.originals[declKey{kind: "group", name: name}]
		if !ok || p.originalGroupStack[name] {
			return nil, fmt.Errorf("%s: group %q: %w", d.location, ref, ErrCircularGroup)
		}
		p.originalGroupStack[name] = true
		defer delete(p.originalGroupStack, name)
		dc = orig
	} else {
		p.groupStack[name] = true
		defer delete(p.groupStack, name)
	}
	for _, c := range children(dc.el) {
		switch c.Name.Local {
		case "sequence", "choice", "all":
			part, err := p.particle(c, dc.doc)
			if err != nil {
				return nil, err
			}
			part.MinOccurs, part.MaxOccurs = minOccurs, maxOccurs
			return part, nil
		}
	}
	return nil, nil
}

func (p *parser) localElement(el *xmltree.Element, d *document, minOccurs int, maxOccurs Occurs) (*Element, error) {
	if ref := el.Attr("", "ref"); ref != "" {
		name, ok := lookupName(p.elementDecls, resolveName(el, ref), d)
		if !ok {
			return nil, fmt.Errorf("%s: element %q: %w", d.location, ref, ErrUnresolvedReference)
		}
		target, err := p.globalElement(name)
		if err != nil {
			return nil, err
		}
		e := &Element{
			Name:      target.Name,
			Doc:       annotation(el),
			MinOccurs: minOccurs,
			MaxOccurs: maxOccurs,
			Ref:       target,
		}
		p.refs = append(p.refs, e)
		return e, nil
	}

	e := &Element{
		Name:      xml.Name{Local: el.Attr("", "name")},
		Doc:       annotation(el),
		MinOccurs: minOccurs,
		MaxOccurs: maxOccurs,
		Nillable:  el.Attr("", "nillable") == "true",
		Default:   el.Attr("", "default"),
		Fixed:     el.Attr("", "fixed"),
	}
	switch form := el.Attr("", "form"); {
	case form == "qualified", form == "" && d.elementQualified:
		e.Name.Space = d.targetNS
	}
	typ, err := p.elementType(el, d)
	if err != nil {
		return nil, fmt.Errorf("element %s: %w", e.Name.Local, err)
	}
	e.Type = typ
	return e, nil
}

func (p *parser) globalElement(name xml.Name) (*Element, error) {
	if e, ok := p.elements[name]; ok {
		return e, nil
	}
	dc, ok := p.elementDecls[name]
	if !ok {
		return nil, fmt.Errorf("element %s: %w", name.Local, ErrUnresolvedReference)
	}
	el := dc.el
	e := &Element{
		Name:      name,
		Doc:       annotation(el),
		MinOccurs: 1,
		MaxOccurs: 1,
		Nillable:  el.Attr("", "nillable") == "true",
		Default:   el.Attr("", "default"),
		Fixed:     el.Attr("", "fixed"),
		Abstract:  el.Attr("", "abstract") == "true",
		Global:    true,
	}
	if sg := el.Attr("", "substitutionGroup"); sg != "" {
		e.SubstitutionGroup = resolveName(el, sg)
	}
	p.elements[name] = e
	typ, err := p.elementType(el, dc.doc)
	if err != nil {
		return nil, fmt.Errorf("element %s: %w", name.Local, err)
	}
	e.Type = typ
	return e, nil
}

func (p *parser) elementType(el *xmltree.Element, d *document) (*Type, error) {
	if typ := el.Attr("", "type"); typ != "" {
		return p.typeRef(el, d, typ)
	}
	for _, c := range children(el) {
		if c.Name.Local == "simpleType" || c.Name.Local == "complexType" {
			return p.anonymousType(c, d)
		}
	}
	return p.builtin("anyType"), nil
}

func (p *parser) attributes(el *xmltree.Element, d *document) ([]*Attribute, error) {
	if el.Name.Local == "attribute" {
		a, err := p.attribute(el, d)
		if err != nil || a == nil {
			return nil, err
		}
		return []*Attribute{a}, nil
	}

	ref := el.Attr("", "ref")
	if ref == "" {
		return nil, nil
	}
	name, ok := lookupName(p.attrGroupDecls, resolveName(el, ref), d)
	if !ok {
		return nil, fmt.Errorf("%s: attributeGroup %q: %w", d.location, ref, ErrUnresolvedReference)
	}
	if p.attrGroupStack[name] {
		return nil, fmt.Errorf("%s: attributeGroup %q: %w", d.location, ref, ErrCircularGroup)
	}
	p.attrGroupStack[name] = true
	defer delete(p.attrGroupStack, name)

	dc := p.attrGroupDecls[name]
	var out []*Attribute
	for _, c := range children(dc.el) {
		if c.Name.Local != "attribute" && c.Name.Local != "attributeGroup" {
			continue
		}
		more, err := p.attributes(c, dc.doc)
		if err != nil {
			return nil, err
		}
		out = append(out, more...)
	}
	return out, nil
}

func (p *parser) attribute(el *xmltree.Element, d *document) (*Attribute, error) {
	use := el.Attr("", "use")
	if use == "" {
		use = "optional"
	}
	if ref := el.Attr("", "ref"); ref != "" {
		name, ok := lookupName(p.attrDecls, resolveName(el, ref), d)
		if !ok {
			return nil, fmt.Errorf("%s: attribute %q: %w", d.location, ref, ErrUnresolvedReference)
		}
		dc := p.attrDecls[name]
		a, err := p.attribute(dc.el, dc.doc)
		if err != nil {
			return nil, err
		}
		a.Name = name
		a.Use = use
		if doc := annotation(el); doc != "" {
			a.Doc = doc
		}
		return a, nil
	}

	a := &Attribute{
		Name:    xml.Name{Local: el.Attr("", "name")},
		Use:     use,
		Doc:     annotation(el),
		Default: el.Attr("", "default"),
		Fixed:   el.Attr("", "fixed"),
	}
	if a.Name.Local == "" {
		return nil, nil
	}
	if el.Attr("", "form") == "qualified" || (el.Attr("", "form") == "" && d.attributeQualified) {
		a.Name.Space = d.targetNS
	}
	if typ := el.Attr("", "type"); typ != "" {
		t, err := p.typeRef(el, d, typ)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", a.Name.Local, err)
		}
		a.Type = t
		return a, nil
	}
	for _, c := range children(el) {
		if c.Name.Local == "simpleType" {
			t, err := p.anonymousType(c, d)
			if err != nil {
				return nil, err
			}
			a.Type = t
			return a, nil
		}
	}
	a.Type = p.builtin("anySimpleType")
	return a, nil
}

// link completes element references and flattens derived complex types.
func (p *parser) link() error {
	for _, e := range p.refs {
		target := e.Ref
		e.Type = target.Type
		e.Nillable = target.Nillable
		e.Default = target.Default
		e.Fixed = target.Fixed
		e.Abstract = target.Abstract
		if e.Doc == "" {
			e.Doc = target.Doc
		}
	}
	done := map[*Type]bool{}
	visiting := map[*Type]bool{}
	for t := range p.derivations {
		if err := p.flatten(t, done, visiting); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) flatten(t *Type, done, visiting map[*Type]bool) error {
	drv, ok := p.derivations[t]
	if !ok || done[t] {
		return nil
	}
	if visiting[t] {
		return fmt.Errorf("type %s derives from itself: %w", t.Name.Local, ErrCircularGroup)
	}
	visiting[t] = true
	defer delete(visiting, t)

	base := drv.base
	if err := p.flatten(base, done, visiting); err != nil {
		return err
	}
	done[t] = true

	if base.IsComplex() && base.SimpleContent {
		t.SimpleContent = true
	}
	if t.SimpleContent || base.IsSimple() {
		t.Attributes = mergeAttributes(base.Attributes, drv.attrs)
		return nil
	}
	switch t.Derivation {
	case DerivationExtension:
		t.Content = appendContent(base.Content, drv.content)
	default:
		t.Content = drv.content
	}
	t.Attributes = mergeAttributes(base.Attributes, drv.attrs)
	return nil
}

func appendContent(base, own *Particle) *Particle {
	switch {
	case base == nil:
		return own
	case own == nil:
		return base
	}
	return &Particle{
		Kind:      ParticleSequence,
		Children:  []*Particle{base, own},
		MinOccurs: 1,
		MaxOccurs: 1,
	}
}

// mergeAttributes overlays own attribute uses on the inherited ones by
// name; use="prohibited" removes an inherited attribute.
func mergeAttributes(base, own []*Attribute) []*Attribute {
	out := make([]*Attribute, 0, len(base)+len(own))
	out = append(out, base...)
	for _, a := range own {
		replaced := false
		for i, b := range out {
			if b.Name == a.Name {
				out[i] = a
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, a)
		}
	}
	kept := out[:0]
	for _, a := range out {
		if a.Use != "prohibited" {
			kept = append(kept, a)
		}
	}
	return kept
}
