package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/blimu-dev/xsd2oas/pkg/config"
	"github.com/blimu-dev/xsd2oas/pkg/converter"
	"github.com/blimu-dev/xsd2oas/pkg/openapi"
	"github.com/blimu-dev/xsd2oas/pkg/xsd"
)

// ErrSchemaInvalid is returned by RunValidate when the schema cannot be
// loaded.
var ErrSchemaInvalid = errors.New("XSD file has validation errors")

type FallbackParams struct {
	Input       string
	Output      string
	Format      string
	Title       string
	Version     string
	Description string
	Validate    bool
}

type RunConvertParams struct {
	ConfigPath string
	Only       string
	Fallback   FallbackParams
	Logger     *slog.Logger
	Out        io.Writer
}

func RunConvert(ctx context.Context, p RunConvertParams) error {
	log := loggerOrDiscard(p.Logger)
	out := writerOrDiscard(p.Out)

	if p.ConfigPath == "" {
		if p.Fallback.Input == "" || p.Fallback.Output == "" {
			return errors.New("either --config or both INPUT and OUTPUT must be provided")
		}
		validate := p.Fallback.Validate
		c := config.Conversion{
			Input:       absPath(p.Fallback.Input),
			Output:      absPath(p.Fallback.Output),
			Format:      p.Fallback.Format,
			Title:       p.Fallback.Title,
			Version:     p.Fallback.Version,
			Description: p.Fallback.Description,
			Validate:    &validate,
		}
		if c.Format == "" {
			c.Format = config.FormatFor(c.Output)
		}
		return ConvertOne(ctx, c, log, out)
	}

	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		return err
	}
	conversions, err := cfg.Select(p.Only)
	if err != nil {
		return err
	}
	for _, c := range conversions {
		if err := ConvertOne(ctx, c, log, out); err != nil {
			return fmt.Errorf("conversion %s: %w", c.Name, err)
		}
	}
	return nil
}

// ConvertOne runs a single conversion and writes its output file.
func ConvertOne(ctx context.Context, c config.Conversion, log *slog.Logger, out io.Writer) error {
	log = loggerOrDiscard(log)
	out = writerOrDiscard(out)
	format, err := openapi.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	log.Debug("parsing XSD schema", "input", c.Input)
	schema, err := xsd.ParseFile(c.Input)
	if err != nil {
		return err
	}

	log.Debug("generating OpenAPI document", "format", format)
	doc, warnings, err := converter.Convert(schema, converter.Options{
		Title:       c.Title,
		Version:     c.Version,
		Description: c.Description,
		Logger:      log,
	})
	if err != nil {
		return err
	}
	if c.ShouldValidate() {
		if err := openapi.Validate(ctx, doc); err != nil {
			return err
		}
	}

	data, err := openapi.Marshal(doc, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.Output), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}

	fmt.Fprintf(out, "Conversion complete: %s (%d schemas)\n", c.Output, len(doc.Schemas))
	for _, w := range warnings {
		fmt.Fprintf(out, "  warning: %s\n", w)
	}
	return nil
}

func RunValidate(input string, out io.Writer) error {
	out = writerOrDiscard(out)
	fmt.Fprintf(out, "Validating %s...\n", input)

	report := xsd.CheckFile(input)
	if !report.Valid {
		fmt.Fprintln(out, "XSD file has validation errors:")
		for _, e := range report.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
		return ErrSchemaInvalid
	}
	fmt.Fprintln(out, "XSD file is valid and ready for conversion")
	if len(report.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range report.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
	return nil
}
