// This file provides live re-rendering of a catalog file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alin/internal/catalog"
	"alin/internal/watch"
)

var watchDebounce time.Duration

// watchCmd renders a catalog file and re-renders it whenever it changes.
var watchCmd = &cobra.Command{
	Use:   "watch <catalog.yaml>",
	Short: "Render a catalog file and re-render on change",
	Long: `Renders a YAML catalog file, then watches it and re-renders the report
each time the file changes. Useful while editing a catalog. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 250*time.Millisecond, "coalesce window for file change events")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	renderer := newRenderer()

	renderFile := func() {
		cat, err := catalog.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		if err := renderer.Render(os.Stdout, cat); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}

	// Initial render before the watch loop starts.
	if _, err := catalog.Load(path); err != nil {
		return err
	}
	renderFile()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(watchDebounce, logger)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.Run(ctx, path, func(string) {
			logger.Debug("re-rendering catalog", zap.String("path", path))
			fmt.Println()
			renderFile()
		})
	})

	return g.Wait()
}
