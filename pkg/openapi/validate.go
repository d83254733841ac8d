package openapi

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate renders d and validates it with kin-openapi. XSD patterns use a
// regex dialect that is not RE2, so pattern compilation is skipped, as is
// checking defaults against those patterns.
func Validate(ctx context.Context, d *Document) error {
	data, err := d.MarshalJSON()
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("load generated document: %w", err)
	}
	return validateLoaded(ctx, doc)
}

// ValidateFile validates an OpenAPI document stored on disk.
func ValidateFile(ctx context.Context, path string) error {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return err
	}
	return validateLoaded(ctx, doc)
}

func validateLoaded(ctx context.Context, doc *openapi3.T) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := doc.Validate(ctx,
		openapi3.DisableSchemaPatternValidation(),
		openapi3.DisableSchemaDefaultsValidation(),
	); err != nil {
		return fmt.Errorf("validate generated document: %w", err)
	}
	return nil
}
