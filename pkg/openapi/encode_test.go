package openapi

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestSchemaJSON_RefRendersAlone(t *testing.T) {
	s := NewRef("Order")
	s.Description = "ignored"
	s.Nullable = true
	s.XML = &XML{Name: "order"}

	got, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"$ref":"#/components/schemas/Order"}`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestSchemaJSON_FieldOrderAndOmission(t *testing.T) {
	s := &Schema{
		Kind:      KindString,
		Pattern:   `^\d{5}$`,
		MinLength: Ptr(5),
		MaxLength: Ptr(5),
	}
	got, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"string","minLength":5,"maxLength":5,"pattern":"^\\d{5}$"}`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestSchemaJSON_Numbers(t *testing.T) {
	s := &Schema{
		Kind:       KindNumber,
		Minimum:    MustNumber("-999.99"),
		Maximum:    MustNumber("999.99"),
		MultipleOf: MustNumber("0.01"),
	}
	got, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"number","minimum":-999.99,"maximum":999.99,"multipleOf":0.01}`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	s = &Schema{Kind: KindInteger, Minimum: MustNumber("0"), Maximum: MustNumber("120.0")}
	got, _ = s.MarshalJSON()
	if want := `{"type":"integer","minimum":0,"maximum":120}`; string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	s = &Schema{Kind: KindNumber, Minimum: MustNumber("-9999999999999.99999"), Maximum: MustNumber("9999999999999.99999")}
	got, _ = s.MarshalJSON()
	if want := `{"type":"number","minimum":-9999999999999.99999,"maximum":9999999999999.99999}`; string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestSchemaJSON_EnumAndXML(t *testing.T) {
	s := &Schema{
		Kind:    KindString,
		Enum:    []any{"active", "inactive"},
		Default: "active",
		XML:     &XML{Name: "status", Attribute: true, Nillable: true},
	}
	got, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"string","enum":["active","inactive"],"default":"active","xml":{"name":"status","attribute":true,"x-nillable":true}}`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestSchemaJSON_EmptyXMLOmitted(t *testing.T) {
	s := &Schema{Kind: KindBoolean, XML: &XML{}}
	got, _ := s.MarshalJSON()
	if want := `{"type":"boolean"}`; string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func sampleDocument() *Document {
	doc := NewDocument(Info{Title: "Orders", Version: "1.0.0", Description: "sample"})
	order := NewObject()
	order.SetProperty("zeta", &Schema{Kind: KindString})
	order.SetProperty("alpha", &Schema{Kind: KindInteger, Format: "int32"})
	order.SetProperty("status", NewRef("Status"))
	order.AddRequired("zeta")
	order.XML = &XML{Name: "Order", Namespace: "http://example.com/orders"}
	doc.AddSchema("Order", order)
	doc.AddSchema("Status", &Schema{Kind: KindString, Enum: []any{"open", "closed"}})
	return doc
}

func TestDocumentJSON_Shape(t *testing.T) {
	data, err := Marshal(sampleDocument(), FormatJSON)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["openapi"] != Version {
		t.Fatalf("openapi = %v", decoded["openapi"])
	}
	if diff := cmp.Diff(map[string]any{}, decoded["paths"]); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	schemas := decoded["components"].(map[string]any)["schemas"].(map[string]any)
	status := schemas["Order"].(map[string]any)["properties"].(map[string]any)["status"]
	if diff := cmp.Diff(map[string]any{"$ref": "#/components/schemas/Status"}, status); diff != "" {
		t.Fatalf("ref mismatch (-want +got):\n%s", diff)
	}

	text := string(data)
	if strings.Index(text, `"zeta"`) > strings.Index(text, `"alpha"`) {
		t.Fatalf("property order not preserved:\n%s", text)
	}
}

func TestDocumentYAML_RoundTrip(t *testing.T) {
	data, err := Marshal(sampleDocument(), FormatYAML)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "paths: {}") {
		t.Fatalf("expected empty paths mapping:\n%s", data)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	schemas := decoded["components"].(map[string]any)["schemas"].(map[string]any)
	want := map[string]any{"type": "string", "enum": []any{"open", "closed"}}
	if diff := cmp.Diff(want, schemas["Status"]); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
	if strings.Index(string(data), "zeta:") > strings.Index(string(data), "alpha:") {
		t.Fatalf("property order not preserved:\n%s", data)
	}
}

func TestDocumentEncodingIsDeterministic(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		a, err := Marshal(sampleDocument(), format)
		if err != nil {
			t.Fatalf("marshal %s: %v", format, err)
		}
		b, _ := Marshal(sampleDocument(), format)
		if string(a) != string(b) {
			t.Fatalf("%s output differs between runs", format)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(context.Background(), sampleDocument()); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}

	doc := sampleDocument()
	doc.Info.Title = ""
	if err := Validate(context.Background(), doc); err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatYAML, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
	}
	for _, test := range tests {
		got, err := ParseFormat(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", test.input, err)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseFormat(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
