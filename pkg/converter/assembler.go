// Package converter turns a loaded XML Schema into the components section
// of an OpenAPI document.
//
// Conversion runs in two passes. Every named type becomes a component
// schema first; global elements follow and may reference those
// components. Occurrences of named types are always emitted as $ref, which
// keeps recursive type graphs finite.
package converter

import (
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/utils"
	"github.com/blimu-dev/xsd2oas/pkg/xsd"
)

// DefaultVersion is the info version used when none is given.
const DefaultVersion = "1.0.0"

var (
	// ErrAssemblerReused is returned when Convert is called twice on the
	// same Assembler.
	ErrAssemblerReused = errors.New("assembler has already converted a schema")
	// ErrNilSchema is returned when Convert receives no schema.
	ErrNilSchema = errors.New("no schema to convert")
)

// Options configure a conversion.
type Options struct {
	// Title overrides the title derived from the target namespace.
	Title string
	// Version is the info version, DefaultVersion when empty.
	Version string
	// Description overrides the description derived from the target
	// namespace.
	Description string
	// Logger receives debug and warning records. Nil discards them.
	Logger *slog.Logger
}

// Assembler converts one schema into one document. It owns the registry
// of emitted types and is not safe for concurrent or repeated use; create
// one per conversion.
type Assembler struct {
	opts Options
	conv *converter
	used bool
}

// converter is the state threaded through every recursive call.
type converter struct {
	schema   *xsd.Schema
	registry *Registry
	log      *slog.Logger
	warnings []string

	// elementKeys holds the component names of global elements with an
	// inline complex type.
	elementKeys map[*xsd.Element]string
}

// NewAssembler creates an Assembler.
func NewAssembler(opts Options) *Assembler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Assembler{
		opts: opts,
		conv: &converter{registry: NewRegistry(), log: logger},
	}
}

// Convert builds the document for s.
func (a *Assembler) Convert(s *xsd.Schema) (*openapi.Document, error) {
	if a.used {
		return nil, ErrAssemblerReused
	}
	if s == nil {
		return nil, ErrNilSchema
	}
	a.used = true

	c := a.conv
	c.schema = s
	c.elementKeys = elementKeys(s)
	for _, w := range xsd.Check(s) {
		c.warn(w)
	}

	doc := openapi.NewDocument(openapi.Info{
		Title:       firstNonEmpty(a.opts.Title, Title(s.TargetNamespace)),
		Version:     firstNonEmpty(a.opts.Version, DefaultVersion),
		Description: firstNonEmpty(a.opts.Description, Description(s.TargetNamespace)),
	})

	for _, t := range s.Types {
		name := utils.CleanName(t.Name.Local)
		if c.registry.State(name) != Unseen {
			c.log.Debug("skipping duplicate type", "type", t.QualifiedName())
			continue
		}
		c.registry.Begin(name)
		var out *openapi.Schema
		if t.IsComplex() {
			out = c.convertComplexType(t)
		} else {
			out = c.convertSimpleType(t, true)
		}
		c.registry.Finish(name)
		doc.AddSchema(name, out)
		c.log.Debug("converted type", "type", name)
	}

	for _, e := range s.Elements {
		name := utils.CleanName(e.Name.Local)
		if key, ok := c.elementKeys[e]; ok {
			name = key
		} else if c.registry.State(name) != Unseen {
			c.log.Debug("skipping element named like a type", "element", name)
			continue
		}
		doc.AddSchema(name, c.convertElement(e))
		c.log.Debug("converted element", "element", name)
	}
	return doc, nil
}

// Warnings returns the advisory warnings collected by Convert.
func (a *Assembler) Warnings() []string {
	return append([]string(nil), a.conv.warnings...)
}

// Registry exposes the type registry, mainly for inspection in tests.
func (a *Assembler) Registry() *Registry {
	return a.conv.registry
}

// Convert converts s with a fresh Assembler and returns the document and
// its warnings.
func Convert(s *xsd.Schema, opts Options) (*openapi.Document, []string, error) {
	a := NewAssembler(opts)
	doc, err := a.Convert(s)
	if err != nil {
		return nil, nil, err
	}
	return doc, a.Warnings(), nil
}

// elementKeys names the components of global elements whose type is an
// inline complex type. References to such elements always point at this
// component. An element whose name is taken by a type is published as
// "<Name>Element".
func elementKeys(s *xsd.Schema) map[*xsd.Element]string {
	taken := map[string]bool{}
	for _, e := range s.Elements {
		taken[utils.CleanName(e.Name.Local)] = true
	}
	keys := map[*xsd.Element]string{}
	for _, e := range s.Elements {
		if e.Type == nil || !e.Type.IsAnonymous() || !e.Type.IsComplex() {
			continue
		}
		name := utils.CleanName(e.Name.Local)
		if !s.HasType(name) {
			keys[e] = name
			continue
		}
		key := name + "Element"
		for i := 2; s.HasType(key) || taken[key]; i++ {
			key = name + "Element" + strconv.Itoa(i)
		}
		taken[key] = true
		keys[e] = key
	}
	return keys
}

// Title derives the document title from a target namespace.
func Title(ns string) string {
	if title := utils.TitleFromNamespace(ns); title != "" {
		return title
	}
	return "Generated API"
}

// Description derives the document description from a target namespace.
func Description(ns string) string {
	if ns == "" {
		return "API generated from XSD schema"
	}
	return "API generated from XSD schema: " + ns
}

func (c *converter) warn(msg string, args ...any) {
	c.warnings = append(c.warnings, msg)
	c.log.Warn(msg, args...)
}

func (c *converter) typeBinding(name string) *openapi.XML {
	return &openapi.XML{Name: utils.CleanName(name), Namespace: c.schema.TargetNamespace}
}
