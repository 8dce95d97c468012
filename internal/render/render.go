// Package render turns a capability catalog into formatted console output.
// The plain renderer is the default and produces byte-identical output for
// the same catalog on every run.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"alin/internal/catalog"
)

const (
	bannerWidth  = 60
	sectionWidth = 40
	bullet       = "•"
	check        = "✓"

	capabilitiesHeader = "🌟 MY CORE CAPABILITIES:"
	highlightsHeader   = "🚀 WHAT MAKES ME SPECIAL:"
	readyForHeader     = "💡 READY TO HELP WITH:"
)

// Renderer writes a catalog as a formatted report. A nil styles pointer
// means plain output; otherwise each line is styled with lipgloss without
// changing the line structure.
type Renderer struct {
	styles *Styles
}

// New returns a plain-text renderer.
func New() *Renderer {
	return &Renderer{}
}

// NewStyled returns a renderer that colors output with the given styles.
func NewStyled(styles Styles) *Renderer {
	return &Renderer{styles: &styles}
}

// Render writes the full report to w. The report begins and ends with a
// full-width banner separator; categories keep their declaration order.
func (r *Renderer) Render(w io.Writer, c catalog.Catalog) error {
	banner := strings.Repeat("=", bannerWidth)
	rule := strings.Repeat("-", sectionWidth)

	lines := []string{
		r.sty(styBanner, banner),
		r.sty(styTitle, c.Title),
	}
	if c.Tagline != "" {
		lines = append(lines, "   "+r.sty(stySubtitle, c.Tagline))
	}
	lines = append(lines,
		r.sty(styBanner, banner),
		"",
		r.sty(stySection, capabilitiesHeader),
		r.sty(styRule, rule),
	)

	for _, cat := range c.Categories {
		lines = append(lines,
			"",
			r.sty(styCategory, cat.Label),
			r.sty(styRule, strings.Repeat("-", utf8.RuneCountInString(cat.Label))),
		)
		for _, f := range cat.Features {
			lines = append(lines, "  "+bullet+" "+r.sty(styFeature, f))
		}
	}

	lines = append(lines, "", r.sty(styRule, rule))

	if len(c.Highlights) > 0 {
		lines = append(lines, "", r.sty(stySection, highlightsHeader))
		for _, h := range c.Highlights {
			lines = append(lines, "  "+r.sty(styHighlight, check+" "+h))
		}
	}

	if len(c.ReadyFor) > 0 {
		lines = append(lines, "", r.sty(stySection, readyForHeader))
		for _, entry := range c.ReadyFor {
			lines = append(lines, "  "+r.sty(styFeature, entry))
		}
	}

	lines = append(lines, "", r.sty(styBanner, banner))
	if c.Footer != "" {
		lines = append(lines, r.sty(styTitle, c.Footer))
	}
	lines = append(lines, r.sty(styBanner, banner))

	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("render: write report: %w", err)
	}
	return nil
}

type styleKind int

const (
	styBanner styleKind = iota
	styTitle
	stySubtitle
	stySection
	styCategory
	styRule
	styFeature
	styHighlight
)

func (r *Renderer) sty(kind styleKind, s string) string {
	if r.styles == nil {
		return s
	}
	switch kind {
	case styBanner:
		return r.styles.Banner.Render(s)
	case styTitle:
		return r.styles.Title.Render(s)
	case stySubtitle:
		return r.styles.Subtitle.Render(s)
	case stySection:
		return r.styles.Section.Render(s)
	case styCategory:
		return r.styles.Category.Render(s)
	case styRule:
		return r.styles.Rule.Render(s)
	case styFeature:
		return r.styles.Feature.Render(s)
	case styHighlight:
		return r.styles.Highlight.Render(s)
	default:
		return s
	}
}

// Markdown renders the catalog as a markdown document. Used by the export
// command and by the browse TUI (via glamour).
func Markdown(c catalog.Catalog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	if c.Tagline != "" {
		fmt.Fprintf(&b, "> %s\n\n", c.Tagline)
	}

	for _, cat := range c.Categories {
		fmt.Fprintf(&b, "## %s\n\n", cat.Label)
		for _, f := range cat.Features {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	if len(c.Highlights) > 0 {
		b.WriteString("## Highlights\n\n")
		for _, h := range c.Highlights {
			fmt.Fprintf(&b, "- %s %s\n", check, h)
		}
		b.WriteString("\n")
	}

	if len(c.ReadyFor) > 0 {
		b.WriteString("## Ready to help with\n\n")
		for _, entry := range c.ReadyFor {
			fmt.Fprintf(&b, "- %s\n", entry)
		}
		b.WriteString("\n")
	}

	if c.Footer != "" {
		fmt.Fprintf(&b, "**%s**\n", c.Footer)
	}

	return b.String()
}

// CategoryMarkdown renders a single category as a markdown fragment.
func CategoryMarkdown(cat catalog.Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", cat.Label)
	for _, f := range cat.Features {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return b.String()
}
