// Package catalog defines the capability catalog: the ordered set of
// category -> feature-list entries that alin renders. Categories are kept
// in a slice, not a map, because they print in declaration order.
package catalog

import (
	"fmt"
	"strings"
)

// Category is one labelled group of feature descriptions.
type Category struct {
	Label    string   `json:"label" yaml:"label"`
	Features []string `json:"features" yaml:"features"`
}

// Catalog is the full capability listing. Everything is static data; a
// Catalog is constructed once, read by a renderer, and never mutated.
type Catalog struct {
	Title      string     `json:"title" yaml:"title"`
	Tagline    string     `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Categories []Category `json:"categories" yaml:"categories"`
	Highlights []string   `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	ReadyFor   []string   `json:"ready_for,omitempty" yaml:"ready_for,omitempty"`
	Footer     string     `json:"footer,omitempty" yaml:"footer,omitempty"`
}

// Default returns the built-in ALIN catalog.
func Default() Catalog {
	return Catalog{
		Title:   "🤖 ALIN - Artificial Life Intelligence Network",
		Tagline: "Your Advanced AI Assistant with Real Tools",
		Categories: []Category{
			{
				Label: "🔍 WEB SEARCH & RESEARCH",
				Features: []string{
					"Real-time internet search",
					"Current events & news lookup",
					"Multi-source research",
					"Dynamic data retrieval",
				},
			},
			{
				Label: "🧠 PERSISTENT MEMORY",
				Features: []string{
					"8-layer memory architecture",
					"Cross-session conversation memory",
					"User preference storage",
					"Context consolidation",
				},
			},
			{
				Label: "💻 CODE EXECUTION",
				Features: []string{
					"Python, JavaScript, TypeScript",
					"Sandboxed safe environment",
					"Real-time testing & debugging",
					"Data processing & visualization",
				},
			},
			{
				Label: "📁 FILE OPERATIONS",
				Features: []string{
					"Read/write user files",
					"Directory navigation",
					"Project analysis",
					"Secure file management",
				},
			},
			{
				Label: "🔄 WORKFLOW ORCHESTRATION",
				Features: []string{
					"Multi-step task coordination",
					"Parallel processing",
					"Dependency management",
					"Error handling & recovery",
				},
			},
			{
				Label: "⚙️ SYSTEM MONITORING",
				Features: []string{
					"Hardware status tracking",
					"Performance metrics",
					"Resource utilization",
					"Health diagnostics",
				},
			},
		},
		Highlights: []string{
			"Real functional tools, not just chat",
			"Internet browsing & current info",
			"Persistent memory across sessions",
			"Code execution & file access",
			"Complex problem-solving workflows",
		},
		ReadyFor: []string{
			"Research • Coding • Data Analysis",
			"File Management • System Tasks",
			"Complex Multi-Step Projects",
		},
		Footer: "🎯 ALIN - Your AI Operating System",
	}
}

// Labels returns the category labels in declaration order.
func (c Catalog) Labels() []string {
	labels := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		labels[i] = cat.Label
	}
	return labels
}

// FeatureCount returns the total number of features across all categories.
func (c Catalog) FeatureCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Features)
	}
	return n
}

// Validate checks the catalog invariants: a non-empty title, at least one
// category, non-empty unique labels, and non-empty feature strings.
func (c Catalog) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("catalog: title must not be empty")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog: at least one category is required")
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Label) == "" {
			return fmt.Errorf("catalog: category %d has an empty label", i)
		}
		if _, dup := seen[cat.Label]; dup {
			return fmt.Errorf("catalog: duplicate category label %q", cat.Label)
		}
		seen[cat.Label] = struct{}{}
		if len(cat.Features) == 0 {
			return fmt.Errorf("catalog: category %q has no features", cat.Label)
		}
		for j, f := range cat.Features {
			if strings.TrimSpace(f) == "" {
				return fmt.Errorf("catalog: category %q feature %d is empty", cat.Label, j)
			}
		}
	}
	for i, h := range c.Highlights {
		if strings.TrimSpace(h) == "" {
			return fmt.Errorf("catalog: highlight %d is empty", i)
		}
	}
	for i, r := range c.ReadyFor {
		if strings.TrimSpace(r) == "" {
			return fmt.Errorf("catalog: ready_for entry %d is empty", i)
		}
	}
	return nil
}
