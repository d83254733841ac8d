package xsd2oas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertSchemaFile(t *testing.T) {
	r := require.New(t)

	res, err := ConvertSchemaFile(filepath.Join("testdata", "orders.xsd"), Options{})
	r.NoError(err)
	r.Equal("3.0.3", res.Document.OpenAPI)
	r.Equal("1.0.0", res.Document.Info.Version)

	names := res.Document.SchemaNames()
	r.Contains(names, "Order")
	r.Contains(names, "PaymentMethod")
	r.Contains(names, "Guid")
}

func TestConvertFileWritesOutput(t *testing.T) {
	r := require.New(t)

	out := filepath.Join(t.TempDir(), "nested", "orders.json")
	r.NoError(ConvertFile(filepath.Join("testdata", "orders.xsd"), out, Options{Title: "Orders"}))

	data, err := os.ReadFile(out)
	r.NoError(err)
	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
	}
	r.NoError(json.Unmarshal(data, &doc))
	r.Equal("Orders", doc.Info.Title)
}

func TestConvertBytesRejectsNonSchema(t *testing.T) {
	_, err := ConvertBytes([]byte(`<root/>`), Options{})
	require.Error(t, err)
}

func TestValidateAndAnalyzeFile(t *testing.T) {
	r := require.New(t)

	report := ValidateFile(filepath.Join("testdata", "broken.xsd"))
	r.False(report.Valid)
	r.NotEmpty(report.Errors)

	info, err := AnalyzeFile(filepath.Join("testdata", "orders.xsd"))
	r.NoError(err)
	r.Equal("http://example.com/order-service", info.TargetNamespace)
	r.Contains(info.ComplexTypes, "Order")
}
