package cli

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/blimu-dev/xsd2oas/pkg/xsd"
)

// RunInfo prints a summary of the schema at input. format is "text",
// "json" or "yaml".
func RunInfo(input, format string, out io.Writer) error {
	out = writerOrDiscard(out)
	schema, err := xsd.ParseFile(input)
	if err != nil {
		return err
	}
	info := xsd.Analyze(schema)

	switch format {
	case "", "text":
		writeInfoText(out, input, info)
		return nil
	case "json":
		data, err := gojson.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported info format %q (want text, json or yaml)", format)
	}
}

func writeInfoText(out io.Writer, input string, info xsd.Info) {
	ns := info.TargetNamespace
	if ns == "" {
		ns = "None"
	}
	fmt.Fprintf(out, "Schema: %s\n", input)
	fmt.Fprintf(out, "  Target Namespace: %s\n", ns)
	fmt.Fprintf(out, "  Element Form Default: %s\n", info.ElementFormDefault)
	fmt.Fprintf(out, "  Attribute Form Default: %s\n", info.AttributeFormDefault)

	fmt.Fprintln(out, "\nStatistics:")
	fmt.Fprintf(out, "  Complex Types: %d\n", len(info.ComplexTypes))
	fmt.Fprintf(out, "  Simple Types: %d\n", len(info.SimpleTypes))
	fmt.Fprintf(out, "  Global Elements: %d\n", len(info.Elements))
	fmt.Fprintf(out, "  Choice Elements: %d\n", info.ChoiceGroups)
	fmt.Fprintf(out, "  Imports: %d\n", len(info.Imports))
	fmt.Fprintf(out, "  Includes: %d\n", len(info.Includes))

	if len(info.Imports) > 0 {
		fmt.Fprintln(out, "\nImports:")
		for _, imp := range info.Imports {
			fmt.Fprintf(out, "  - %s\n", imp)
		}
	}
	if len(info.Includes) > 0 {
		fmt.Fprintln(out, "\nIncludes:")
		for _, inc := range info.Includes {
			fmt.Fprintf(out, "  - %s\n", inc)
		}
	}
}
