// This file provides the catalog rendering and inspection commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"alin/internal/catalog"
	"alin/internal/render"
)

// showCmd prints the catalog report. Identical to running alin with no
// arguments; kept as an explicit command for discoverability.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the capability catalog report",
	Long:  `Renders the capability catalog as a decorated console report.`,
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

// listCmd prints the category labels only.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List capability categories",
	Long:  `Prints the category labels, one per line, in catalog order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var exportFormat string

// exportCmd serializes the catalog.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as json, yaml, or markdown",
	Long: `Serializes the capability catalog to stdout.

Examples:
  alin export --format json
  alin export --format yaml
  alin export --format markdown`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// validateCmd checks a catalog file against the catalog invariants.
var validateCmd = &cobra.Command{
	Use:   "validate <catalog.yaml>",
	Short: "Validate a YAML catalog file",
	Long:  `Parses a YAML catalog file and reports whether it satisfies the catalog invariants.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json, yaml, or markdown")
}

func runShow(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	return newRenderer().Render(os.Stdout, cat)
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	for _, label := range cat.Labels() {
		fmt.Println(label)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	logger.Debug("exporting catalog", zap.String("format", exportFormat))

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return fmt.Errorf("export: marshal json: %w", err)
		}
		fmt.Println(string(data))
	case "yaml", "yml":
		data, err := yaml.Marshal(cat)
		if err != nil {
			return fmt.Errorf("export: marshal yaml: %w", err)
		}
		fmt.Print(string(data))
	case "markdown", "md":
		fmt.Print(render.Markdown(cat))
	default:
		return fmt.Errorf("export: unknown format %q (want json, yaml, or markdown)", exportFormat)
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	cat, err := catalog.Load(path)
	if err != nil {
		return err
	}
	fmt.Printf("✅ %s: valid catalog (%d categories, %d features)\n",
		path, len(cat.Categories), cat.FeatureCount())
	return nil
}
