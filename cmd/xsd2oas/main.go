package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	cli "github.com/blimu-dev/xsd2oas/internal/cli"
	"github.com/blimu-dev/xsd2oas/pkg/converter"
)

func main() {
	root := &cobra.Command{
		Use:           "xsd2oas",
		Short:         "Convert XML Schema (XSD) files to OpenAPI 3 component schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newConvertCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newInfoCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newConvertCmd() *cobra.Command {
	var configPath string
	var only string
	var format string
	var title string
	var version string
	var description string
	var validate bool
	var noValidate bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "convert [INPUT OUTPUT]",
		Short: "Convert an XSD file to an OpenAPI document",
		Long: `Convert an XSD file to an OpenAPI document holding only components/schemas.

Either pass INPUT and OUTPUT, or --config with a job file listing several
conversions.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input, output string
			if len(args) > 0 {
				input = args[0]
			}
			if len(args) > 1 {
				output = args[1]
			}
			return cli.RunConvert(cmd.Context(), cli.RunConvertParams{
				ConfigPath: configPath,
				Only:       only,
				Fallback: cli.FallbackParams{
					Input:       input,
					Output:      output,
					Format:      format,
					Title:       title,
					Version:     version,
					Description: description,
					Validate:    validate && !noValidate,
				},
				Logger: cli.NewLogger(cmd.ErrOrStderr(), verbose),
				Out:    cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to xsd2oas.yaml config")
	cmd.Flags().StringVar(&only, "only", "", "Run only the named conversion from config")
	// Single conversion flags
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml or json)")
	cmd.Flags().StringVar(&title, "title", "", "Document title (default: derived from the target namespace)")
	cmd.Flags().StringVar(&version, "version", converter.DefaultVersion, "API version")
	cmd.Flags().StringVar(&description, "description", "", "Document description (default: derived from the target namespace)")
	cmd.Flags().BoolVar(&validate, "validate", true, "Validate the generated document")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "Skip validation of the generated document")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate INPUT",
		Short: "Check that an XSD file loads and report conversion warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(args[0], cmd.OutOrStdout())
		},
	}
	return cmd
}

func newInfoCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info INPUT",
		Short: "Display information about an XSD file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunInfo(args[0], format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format (text, json or yaml)")
	return cmd
}
