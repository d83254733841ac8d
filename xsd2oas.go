// Package xsd2oas converts XML Schema (XSD) documents into OpenAPI 3
// documents whose components/schemas section mirrors the schema's types
// and global elements.
//
// This package offers simple entry points for common use cases; the pkg/
// packages expose the parser, converter and encoder separately.
//
// Quick Start:
//
//	import "github.com/blimu-dev/xsd2oas"
//
//	// Convert a schema and write YAML
//	err := xsd2oas.ConvertFile("./orders.xsd", "./openapi.yaml", xsd2oas.Options{})
//
// For more advanced usage, see the converter package.
package xsd2oas

import (
	"context"
	"log/slog"

	cli "github.com/blimu-dev/xsd2oas/internal/cli"
	"github.com/blimu-dev/xsd2oas/pkg/config"
	"github.com/blimu-dev/xsd2oas/pkg/converter"
	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/xsd"
)

// Options contains options for a single conversion
type Options struct {
	Format      string // "yaml" (default) or "json"
	Title       string // Document title, derived from the target namespace when empty
	Version     string // API version, "1.0.0" when empty
	Description string // Document description, derived from the target namespace when empty
	// SkipValidation disables validation of the generated document.
	SkipValidation bool
	Logger         *slog.Logger
}

// Result is an in-memory conversion.
type Result struct {
	Document *openapi.Document
	Warnings []string
}

// ConvertBytes converts a single in-memory XSD document.
//
// Example:
//
//	res, err := xsd2oas.ConvertBytes(data, xsd2oas.Options{Title: "Orders"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, _ := openapi.Marshal(res.Document, openapi.FormatJSON)
func ConvertBytes(data []byte, opts Options) (*Result, error) {
	schema, err := xsd.Parse(data)
	if err != nil {
		return nil, err
	}
	return convertSchema(context.Background(), schema, opts)
}

// ConvertSchemaFile loads the XSD at path, following its includes and
// imports, and converts it without writing anything.
func ConvertSchemaFile(path string, opts Options) (*Result, error) {
	schema, err := xsd.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return convertSchema(context.Background(), schema, opts)
}

func convertSchema(ctx context.Context, schema *xsd.Schema, opts Options) (*Result, error) {
	doc, warnings, err := converter.Convert(schema, converter.Options{
		Title:       opts.Title,
		Version:     opts.Version,
		Description: opts.Description,
		Logger:      opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	if !opts.SkipValidation {
		if err := openapi.Validate(ctx, doc); err != nil {
			return nil, err
		}
	}
	return &Result{Document: doc, Warnings: warnings}, nil
}

// ConvertFile converts the XSD at input and writes the document to output,
// creating missing directories.
//
// Example:
//
//	err := xsd2oas.ConvertFile("./orders.xsd", "./api/orders.json", xsd2oas.Options{
//		Format: "json",
//		Title:  "Orders",
//	})
func ConvertFile(input, output string, opts Options) error {
	validate := !opts.SkipValidation
	format := opts.Format
	if format == "" {
		format = config.FormatFor(output)
	}
	return cli.ConvertOne(context.Background(), config.Conversion{
		Name:        input,
		Input:       input,
		Output:      output,
		Format:      format,
		Title:       opts.Title,
		Version:     opts.Version,
		Description: opts.Description,
		Validate:    &validate,
	}, opts.Logger, nil)
}

// ConvertFromConfig runs the conversions of a YAML configuration file.
// Optionally, you can name a single conversion to run only that one.
//
// Example:
//
//	// Run every conversion
//	err := xsd2oas.ConvertFromConfig("./xsd2oas.yaml")
//
//	// Run only "orders"
//	err := xsd2oas.ConvertFromConfig("./xsd2oas.yaml", "orders")
func ConvertFromConfig(configPath string, only ...string) error {
	p := cli.RunConvertParams{ConfigPath: configPath}
	if len(only) > 0 {
		p.Only = only[0]
	}
	return cli.RunConvert(context.Background(), p)
}

// ValidateFile checks that an XSD file loads and lists the constructs
// that convert with reduced fidelity.
func ValidateFile(path string) xsd.Report {
	return xsd.CheckFile(path)
}

// AnalyzeFile summarizes the XSD at path.
func AnalyzeFile(path string) (xsd.Info, error) {
	schema, err := xsd.ParseFile(path)
	if err != nil {
		return xsd.Info{}, err
	}
	return xsd.Analyze(schema), nil
}
