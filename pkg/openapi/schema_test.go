package openapi

import "testing"

func TestSetPropertyKeepsPosition(t *testing.T) {
	s := NewObject()
	s.SetProperty("a", &Schema{Kind: KindString})
	s.SetProperty("b", &Schema{Kind: KindString})
	s.SetProperty("a", &Schema{Kind: KindInteger})

	names := s.PropertyNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v", names)
	}
	a, _ := s.Property("a")
	if a.Kind != KindInteger {
		t.Fatalf("a was not replaced: %v", a.Kind)
	}
}

func TestAddRequiredDeduplicates(t *testing.T) {
	s := NewObject()
	s.AddRequired("id")
	s.AddRequired("id")
	if len(s.Required) != 1 || !s.IsRequired("id") {
		t.Fatalf("required = %v", s.Required)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := &Schema{Kind: KindNumber, Maximum: MustNumber("100"), Enum: []any{"x"}}
	c := orig.Clone()
	if c.Maximum == orig.Maximum || !c.Maximum.Equal(*orig.Maximum) {
		t.Fatalf("clone maximum = %v", c.Maximum)
	}
	*c.Maximum = *MustNumber("5")
	c.Enum[0] = "y"
	if orig.Maximum.String() != "100" || orig.Enum[0] != "x" {
		t.Fatalf("clone shares state with original: %+v", orig)
	}
}

func TestRefPointer(t *testing.T) {
	if got := NewRef("Order").RefPointer(); got != "#/components/schemas/Order" {
		t.Fatalf("RefPointer = %q", got)
	}
	if got := (&Schema{Kind: KindString}).RefPointer(); got != "" {
		t.Fatalf("inline RefPointer = %q", got)
	}
}
