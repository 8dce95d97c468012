package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alin/internal/catalog"
)

// resetFlags restores the package-level flag state between tests.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose = false
	colorOutput = false
	catalogPath = ""
	exportFormat = "json"
	logger = zap.NewNop()
}

// captureOutput runs fn with stdout and stderr redirected to pipes and
// returns what was written to each.
func captureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	outCh := make(chan string)
	errCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		outCh <- buf.String()
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		errCh <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-outCh, <-errCh
}

func TestRunShowDefaultCatalog(t *testing.T) {
	resetFlags(t)

	stdout, stderr := captureOutput(t, func() {
		if err := runShow(&cobra.Command{}, nil); err != nil {
			t.Errorf("runShow returned error: %v", err)
		}
	})

	require.Empty(t, stderr, "default run must write nothing to stderr")
	require.NotEmpty(t, stdout)

	banner := strings.Repeat("=", 60)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	assert.Equal(t, banner, lines[0], "output must begin with a banner separator")
	assert.Equal(t, banner, lines[len(lines)-1], "output must end with a banner separator")

	c := catalog.Default()
	last := -1
	for _, label := range c.Labels() {
		assert.Equal(t, 1, strings.Count(stdout, label), "category %q must appear exactly once", label)
		idx := strings.Index(stdout, label)
		assert.Greater(t, idx, last, "category %q out of order", label)
		last = idx
	}
	for _, cat := range c.Categories {
		for _, f := range cat.Features {
			assert.Contains(t, stdout, "  • "+f)
		}
	}
}

func TestRunShowDeterministic(t *testing.T) {
	resetFlags(t)

	render := func() string {
		stdout, _ := captureOutput(t, func() {
			if err := runShow(&cobra.Command{}, nil); err != nil {
				t.Errorf("runShow returned error: %v", err)
			}
		})
		return stdout
	}

	require.Equal(t, render(), render(), "repeated runs must be byte-identical")
}

func TestRunShowCatalogFile(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
title: Custom
categories:
  - label: ONLY
    features: [solo]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	catalogPath = path

	stdout, _ := captureOutput(t, func() {
		if err := runShow(&cobra.Command{}, nil); err != nil {
			t.Errorf("runShow returned error: %v", err)
		}
	})

	assert.Contains(t, stdout, "Custom")
	assert.Contains(t, stdout, "ONLY")
	assert.Contains(t, stdout, "  • solo")
	assert.NotContains(t, stdout, "WEB SEARCH")
}

func TestRunShowMissingCatalogFile(t *testing.T) {
	resetFlags(t)
	catalogPath = filepath.Join(t.TempDir(), "nope.yaml")

	err := runShow(&cobra.Command{}, nil)
	require.Error(t, err)
}

func TestRunList(t *testing.T) {
	resetFlags(t)

	stdout, stderr := captureOutput(t, func() {
		if err := runList(&cobra.Command{}, nil); err != nil {
			t.Errorf("runList returned error: %v", err)
		}
	})

	require.Empty(t, stderr)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	assert.Equal(t, catalog.Default().Labels(), lines)
}

func TestRunExportJSONRoundTrip(t *testing.T) {
	resetFlags(t)
	exportFormat = "json"

	stdout, _ := captureOutput(t, func() {
		if err := runExport(&cobra.Command{}, nil); err != nil {
			t.Errorf("runExport returned error: %v", err)
		}
	})

	var got catalog.Catalog
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))

	if diff := cmp.Diff(catalog.Default(), got); diff != "" {
		t.Fatalf("exported catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestRunExportYAMLRoundTrip(t *testing.T) {
	resetFlags(t)
	exportFormat = "yaml"

	stdout, _ := captureOutput(t, func() {
		if err := runExport(&cobra.Command{}, nil); err != nil {
			t.Errorf("runExport returned error: %v", err)
		}
	})

	got, err := catalog.Parse(strings.NewReader(stdout))
	require.NoError(t, err)

	if diff := cmp.Diff(catalog.Default(), got); diff != "" {
		t.Fatalf("exported catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestRunExportMarkdown(t *testing.T) {
	resetFlags(t)
	exportFormat = "markdown"

	stdout, _ := captureOutput(t, func() {
		if err := runExport(&cobra.Command{}, nil); err != nil {
			t.Errorf("runExport returned error: %v", err)
		}
	})

	assert.True(t, strings.HasPrefix(stdout, "# "), "markdown export must start with a heading")
}

func TestRunExportUnknownFormat(t *testing.T) {
	resetFlags(t)
	exportFormat = "toml"

	err := runExport(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRunValidate(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
title: Valid
categories:
  - label: A
    features: [one, two]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	stdout, _ := captureOutput(t, func() {
		if err := runValidate(&cobra.Command{}, []string{path}); err != nil {
			t.Errorf("runValidate returned error: %v", err)
		}
	})

	assert.Contains(t, stdout, "valid catalog")
	assert.Contains(t, stdout, "1 categories")
	assert.Contains(t, stdout, "2 features")
}

func TestRunValidateRejectsBrokenCatalog(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
title: Broken
categories:
  - label: A
    features: []
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	err := runValidate(&cobra.Command{}, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no features")
}
