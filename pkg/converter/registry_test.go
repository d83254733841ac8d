package converter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryStates(t *testing.T) {
	r := NewRegistry()
	if got := r.State("Order"); got != Unseen {
		t.Fatalf("initial state = %s, expected %s", got, Unseen)
	}
	r.Begin("Order")
	if got := r.State("Order"); got != Pending {
		t.Fatalf("state after Begin = %s, expected %s", got, Pending)
	}
	r.Finish("Order")
	r.Begin("Order")
	if got := r.State("Order"); got != Done {
		t.Fatalf("Begin after Finish = %s, expected %s", got, Done)
	}
	r.Begin("Item")
	r.Finish("Item")
	r.Finish("Item")
	if diff := cmp.Diff([]string{"Order", "Item"}, r.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestShouldReferenceFollowsRegistry(t *testing.T) {
	s := parseSchema(t, `
  <xs:complexType name="Declared">
    <xs:sequence>
      <xs:element name="id" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>`)
	c := &converter{schema: s, registry: NewRegistry()}

	if !c.shouldReference("{http://example.com/test}Declared") {
		t.Errorf("declared type should always be referenced")
	}
	if c.shouldReference("Synthetic") {
		t.Errorf("unknown name should not be referenced on first encounter")
	}
	c.registry.Begin("Synthetic")
	if !c.shouldReference("Synthetic") {
		t.Errorf("pending name should be referenced")
	}
	c.registry.Finish("Synthetic")
	if !c.shouldReference("{urn:other}Synthetic") {
		t.Errorf("finished name should be referenced")
	}
}

func TestNamedTypeExpandsOnceThenReferences(t *testing.T) {
	doc, a := convertSchema(t, `
  <xs:complexType name="Line">
    <xs:sequence>
      <xs:element name="next" type="tns:Line" minOccurs="0"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="Sheet">
    <xs:sequence>
      <xs:element name="first" type="tns:Line"/>
      <xs:element name="last" type="tns:Line"/>
    </xs:sequence>
  </xs:complexType>`)

	line := component(t, doc, "Line")
	if line.IsRef() {
		t.Fatalf("first encounter of Line should be expanded")
	}
	next, _ := line.Property("next")
	if diff := cmp.Diff(`#/components/schemas/Line`, next.RefPointer()); diff != "" {
		t.Errorf("self reference mismatch (-want +got):\n%s", diff)
	}
	sheet := component(t, doc, "Sheet")
	for _, name := range []string{"first", "last"} {
		p, _ := sheet.Property(name)
		if !p.IsRef() {
			t.Errorf("Sheet.%s should be a reference, got %+v", name, p)
		}
	}
	if diff := cmp.Diff([]string{"Line", "Sheet"}, a.Registry().Names()); diff != "" {
		t.Errorf("registry order mismatch (-want +got):\n%s", diff)
	}
}
