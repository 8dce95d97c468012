// This file provides the interactive catalog browser.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"alin/cmd/alin/ui"
)

// browseCmd opens the catalog in an interactive TUI.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the capability catalog interactively",
	Long: `Opens an interactive browser: categories on the left, the selected
category's features on the right. Type / to filter, tab to switch panes,
q to quit.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	model := ui.NewBrowseModel(cat)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
