// Package cmd — render command.
// Loads a saved document (local JSON file or HTTP URL), renders it to the
// selected output format, and writes the result named after the document's
// title. Tool settings (placeholder, level set, defaults) come from an
// optional YAML config file.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/blockhead/core"
	"github.com/gaurav-prasanna/blockhead/core/fetch"
	"github.com/gaurav-prasanna/blockhead/core/output"
	"github.com/gaurav-prasanna/blockhead/core/render"
)

// Flag variables.
var (
	flagHTML     bool
	flagMarkdown bool
	flagPDF      bool
	flagOutline  bool
	flagConfig   string
	flagOutDir   string
)

var renderCmd = &cobra.Command{
	Use:   "render <file-or-url>",
	Short: "Render a saved document to the specified output format",
	Long: `Render loads a saved block-editor document from a JSON file or an HTTP
endpoint and converts its header blocks into the specified output format.

Examples:
  blockhead render document.json --html
  blockhead render document.json --markdown --output_dir ./out
  blockhead render https://editor.example.com/api/documents/42 --pdf
  blockhead render document.json --outline --config tool.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	// Output format flags (mutually exclusive).
	renderCmd.Flags().BoolVar(&flagHTML, "html", false, "Output HTML")
	renderCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	renderCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	renderCmd.Flags().BoolVar(&flagOutline, "outline", false, "Output a structural JSON outline")

	renderCmd.Flags().StringVar(&flagConfig, "config", "", "YAML tool configuration file")
	renderCmd.Flags().StringVar(&flagOutDir, "output_dir", "", "Output directory (default: current directory)")
}

func runRender(cmd *cobra.Command, args []string) error {
	input := args[0]

	if err := validateFlags(); err != nil {
		return err
	}

	cfg, err := loadToolConfig(flagConfig)
	if err != nil {
		return err
	}

	renderer, err := selectRenderer(cfg)
	if err != nil {
		return err
	}

	doc, err := loadDocument(context.Background(), input)
	if err != nil {
		return err
	}

	data, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	writer, err := output.New(flagOutDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	path, err := writer.Write(render.Title(doc), data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// loadDocument reads a saved document from a local file or fetches it from
// an HTTP endpoint.
func loadDocument(ctx context.Context, input string) (core.Document, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return fetch.New().Fetch(ctx, input)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return core.Document{}, fmt.Errorf("reading document: %w", err)
	}
	var doc core.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return core.Document{}, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}

// loadToolConfig reads the optional YAML tool configuration file.
func loadToolConfig(path string) (core.ToolConfig, error) {
	if path == "" {
		return core.ToolConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return core.ToolConfig{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg core.ToolConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return core.ToolConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// validateFlags checks that exactly one output format is chosen.
func validateFlags() error {
	formatCount := 0
	if flagHTML {
		formatCount++
	}
	if flagMarkdown {
		formatCount++
	}
	if flagPDF {
		formatCount++
	}
	if flagOutline {
		formatCount++
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --html, --markdown, --pdf, or --outline")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer(cfg core.ToolConfig) (core.Renderer, error) {
	switch {
	case flagHTML:
		return render.NewHTMLRenderer(cfg), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(cfg), nil
	case flagPDF:
		return render.NewPDFRenderer(cfg), nil
	case flagOutline:
		return render.NewOutlineRenderer(cfg), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
