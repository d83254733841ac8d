package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blimu-dev/xsd2oas/pkg/openapi"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("..", "..", "testdata", name))
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	return p
}

func readComponents(t *testing.T, path string) map[string]json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc struct {
		OpenAPI    string `json:"openapi"`
		Components struct {
			Schemas map[string]json.RawMessage `json:"schemas"`
		} `json:"components"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.OpenAPI != openapi.Version {
		t.Errorf("openapi = %q, expected %q", doc.OpenAPI, openapi.Version)
	}
	return doc.Components.Schemas
}

func TestRunConvertFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "orders.json")
	var stdout bytes.Buffer
	err := RunConvert(context.Background(), RunConvertParams{
		Fallback: FallbackParams{
			Input:    fixture(t, "orders.xsd"),
			Output:   out,
			Validate: true,
		},
		Out: &stdout,
	})
	if err != nil {
		t.Fatalf("RunConvert: %v", err)
	}

	schemas := readComponents(t, out)
	for _, name := range []string{"StatusType", "Money", "PaymentMethod", "LineItem", "Order", "Guid", "Code", "OrderBatch"} {
		if _, ok := schemas[name]; !ok {
			t.Errorf("component %q missing", name)
		}
	}
	if got := string(schemas["Guid"]); !strings.Contains(got, `"format":"uuid"`) {
		t.Errorf("Guid = %s, expected the uuid domain mapping", got)
	}
	if !strings.Contains(stdout.String(), "Conversion complete: "+out) {
		t.Errorf("unexpected output %q", stdout.String())
	}
	if err := openapi.ValidateFile(context.Background(), out); err != nil {
		t.Errorf("written document does not validate: %v", err)
	}
}

func TestRunConvertRequiresInputAndOutput(t *testing.T) {
	err := RunConvert(context.Background(), RunConvertParams{Fallback: FallbackParams{Input: "a.xsd"}})
	if err == nil {
		t.Fatal("expected an error without output")
	}
}

func TestRunConvertConfigOnly(t *testing.T) {
	dir := t.TempDir()
	cfg := "conversions:\n" +
		"  - name: orders\n    input: " + fixture(t, "orders.xsd") + "\n    output: out/orders.yaml\n" +
		"  - name: shapes\n    input: " + fixture(t, "substitution.xsd") + "\n    output: out/shapes.json\n"
	cfgPath := filepath.Join(dir, "xsd2oas.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	err := RunConvert(context.Background(), RunConvertParams{ConfigPath: cfgPath, Only: "shapes", Out: &stdout})
	if err != nil {
		t.Fatalf("RunConvert: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "orders.yaml")); !os.IsNotExist(err) {
		t.Errorf("orders conversion should not have run")
	}
	schemas := readComponents(t, filepath.Join(dir, "out", "shapes.json"))
	for _, name := range []string{"Shape", "Circle", "shape", "circle"} {
		if _, ok := schemas[name]; !ok {
			t.Errorf("component %q missing", name)
		}
	}
	if !strings.Contains(stdout.String(), "warning: Substitution groups found") {
		t.Errorf("expected substitution warning in %q", stdout.String())
	}

	if err := RunConvert(context.Background(), RunConvertParams{ConfigPath: cfgPath, Only: "missing"}); err == nil {
		t.Error("expected an error for an unknown conversion name")
	}
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer
	if err := RunValidate(fixture(t, "substitution.xsd"), &out); err != nil {
		t.Fatalf("RunValidate: %v", err)
	}
	for _, want := range []string{
		"XSD file is valid",
		"Substitution groups found - may not convert perfectly",
		"Complex type extension found in Circle",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output %q does not contain %q", out.String(), want)
		}
	}

	out.Reset()
	err := RunValidate(fixture(t, "broken.xsd"), &out)
	if !errors.Is(err, ErrSchemaInvalid) {
		t.Errorf("RunValidate(broken) = %v, expected %v", err, ErrSchemaInvalid)
	}
	if !strings.Contains(out.String(), "unresolved reference") {
		t.Errorf("output %q does not name the load error", out.String())
	}
}

func TestRunInfo(t *testing.T) {
	var out bytes.Buffer
	if err := RunInfo(fixture(t, "orders.xsd"), "text", &out); err != nil {
		t.Fatalf("RunInfo: %v", err)
	}
	for _, want := range []string{
		"Target Namespace: http://example.com/order-service",
		"Element Form Default: qualified",
		"Complex Types: 3",
		"Simple Types: 5",
		"Global Elements: 2",
		"Choice Elements: 1",
		"Includes: 1",
		"  - common.xsd",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := RunInfo(fixture(t, "orders.xsd"), "json", &out); err != nil {
		t.Fatalf("RunInfo json: %v", err)
	}
	var info struct {
		ComplexTypes []string `json:"complex_types"`
	}
	if err := json.Unmarshal(out.Bytes(), &info); err != nil {
		t.Fatalf("info json: %v", err)
	}
	if len(info.ComplexTypes) != 3 {
		t.Errorf("complex_types = %v, expected 3 entries", info.ComplexTypes)
	}

	if err := RunInfo(fixture(t, "orders.xsd"), "xml", &out); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
