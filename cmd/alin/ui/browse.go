// Package ui implements the interactive catalog browser for the alin CLI.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"alin/internal/catalog"
	"alin/internal/render"
)

const listWidth = 34

// categoryItem adapts catalog.Category to list.Item.
type categoryItem struct {
	cat catalog.Category
}

func (i categoryItem) Title() string { return i.cat.Label }
func (i categoryItem) Description() string {
	return fmt.Sprintf("%d features", len(i.cat.Features))
}
func (i categoryItem) FilterValue() string {
	return i.cat.Label + " " + strings.Join(i.cat.Features, " ")
}

// BrowseModel is the bubbletea model for the catalog browser: a category
// list on the left and the selected category's features on the right.
type BrowseModel struct {
	width  int
	height int
	ready  bool

	list     list.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer

	// Focus state
	focusViewport bool

	cat    catalog.Catalog
	styles render.Styles
}

// NewBrowseModel creates a browser over the given catalog.
func NewBrowseModel(cat catalog.Catalog) BrowseModel {
	styles := render.NewStyles(render.DetectTheme())

	items := make([]list.Item, len(cat.Categories))
	for i, c := range cat.Categories {
		items[i] = categoryItem{cat: c}
	}

	l := list.New(items, list.NewDefaultDelegate(), listWidth, 0)
	l.Title = cat.Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styles.Title

	vp := viewport.New(0, 0)
	vp.SetContent("Select a category to view its features.")

	m := BrowseModel{
		list:     l,
		viewport: vp,
		cat:      cat,
		styles:   styles,
	}
	m.renderer = newMarkdownRenderer(80)
	m.refreshViewport()
	return m
}

// newMarkdownRenderer builds the glamour renderer for the feature pane.
// A nil return falls back to raw markdown.
func newMarkdownRenderer(wrap int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

// Selected returns the currently selected category, if any.
func (m BrowseModel) Selected() (catalog.Category, bool) {
	item, ok := m.list.SelectedItem().(categoryItem)
	if !ok {
		return catalog.Category{}, false
	}
	return item.cat, true
}

// Init initializes the model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return m, tea.Quit
			case "tab":
				m.focusViewport = !m.focusViewport
				return m, nil
			}
		}
	}

	// Route key events to the focused pane; everything else updates both.
	_, isKey := msg.(tea.KeyMsg)
	if !isKey || !m.focusViewport || m.list.FilterState() == list.Filtering {
		before := m.list.Index()
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
		if m.list.Index() != before {
			m.refreshViewport()
		}
	}
	if !isKey || (m.focusViewport && m.list.FilterState() != list.Filtering) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the browser.
func (m BrowseModel) View() string {
	if !m.ready {
		return m.styles.Muted.Render("Loading catalog…")
	}

	left := lipgloss.NewStyle().
		Width(listWidth).
		BorderRight(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.styles.Theme.Border).
		Render(m.list.View())

	right := m.viewport.View()

	help := m.styles.Muted.Render("tab: switch pane • /: filter • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		help,
	)
}

func (m *BrowseModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	contentHeight := height - 2 // reserve the help line
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.list.SetSize(listWidth, contentHeight)

	vpWidth := width - listWidth - 2
	if vpWidth < 1 {
		vpWidth = 1
	}
	m.viewport.Width = vpWidth
	m.viewport.Height = contentHeight
	m.renderer = newMarkdownRenderer(vpWidth)
	m.refreshViewport()
}

// refreshViewport re-renders the selected category into the feature pane.
func (m *BrowseModel) refreshViewport() {
	cat, ok := m.Selected()
	if !ok {
		m.viewport.SetContent("No categories.")
		return
	}

	md := render.CategoryMarkdown(cat)
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			m.viewport.SetContent(out)
			return
		}
	}
	m.viewport.SetContent(md)
}
