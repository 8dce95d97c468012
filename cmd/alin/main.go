// Package main implements the alin CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"alin/internal/catalog"
	"alin/internal/render"
)

var (
	// Global flags
	verbose     bool
	colorOutput bool
	catalogPath string

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command. Running it with no arguments prints
// the built-in capability catalog and exits 0.
var rootCmd = &cobra.Command{
	Use:   "alin",
	Short: "ALIN - Artificial Life Intelligence Network capability catalog",
	Long: `alin renders the ALIN capability catalog as a decorated console report.

Run without arguments to print the built-in catalog. Point --catalog at a
YAML file to render your own, or use the subcommands to list, export,
validate, browse, or watch a catalog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The default run must stay silent on stderr, so the logger is a
		// no-op unless --verbose is set.
		if !verbose {
			logger = zap.NewNop()
			return nil
		}
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runShow,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&colorOutput, "color", false, "render the report with terminal colors")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a YAML catalog file (default: built-in catalog)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadCatalog resolves the catalog for the current invocation: the file
// named by --catalog if set, otherwise the built-in one.
func loadCatalog() (catalog.Catalog, error) {
	if catalogPath == "" {
		return catalog.Default(), nil
	}
	logger.Debug("loading catalog file", zap.String("path", catalogPath))
	return catalog.Load(catalogPath)
}

// newRenderer builds the report renderer for the current flags.
func newRenderer() *render.Renderer {
	if colorOutput {
		return render.NewStyled(render.NewStyles(render.DetectTheme()))
	}
	return render.New()
}
