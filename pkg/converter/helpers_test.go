package converter

import (
	"testing"

	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/xsd"
)

const testNS = "http://example.com/test"

const schemaHeader = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns:tns="http://example.com/test"
    targetNamespace="http://example.com/test"
    elementFormDefault="qualified">
`

func parseSchema(t *testing.T, body string) *xsd.Schema {
	t.Helper()
	s, err := xsd.Parse([]byte(schemaHeader + body + "\n</xs:schema>"))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return s
}

func convertSchema(t *testing.T, body string) (*openapi.Document, *Assembler) {
	t.Helper()
	a := NewAssembler(Options{})
	doc, err := a.Convert(parseSchema(t, body))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	return doc, a
}

func component(t *testing.T, doc *openapi.Document, name string) *openapi.Schema {
	t.Helper()
	s, ok := doc.Schema(name)
	if !ok {
		t.Fatalf("component %q missing, have %v", name, doc.SchemaNames())
	}
	return s
}

func binding(name string) *openapi.XML {
	return &openapi.XML{Name: name, Namespace: testNS}
}

func stringProp(name string) *openapi.Schema {
	return &openapi.Schema{Kind: openapi.KindString, XML: binding(name)}
}
