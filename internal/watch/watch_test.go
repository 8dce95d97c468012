package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: a\n"), 0o644))

	w, err := New(20*time.Millisecond, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	fired := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, path, func(p string) {
			select {
			case fired <- p:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("title: b\n"), 0o644))

	select {
	case p := <-fired:
		abs, _ := filepath.Abs(path)
		require.Equal(t, abs, p)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not fire within 2s")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: a\n"), 0o644))

	w, err := New(0, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	fired := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, path, func(p string) {
			select {
			case fired <- p:
			default:
			}
		})
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("title: b\n"), 0o644))

	select {
	case p := <-fired:
		t.Fatalf("watcher fired for sibling file: %s", p)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: a\n"), 0o644))

	w, err := New(10*time.Millisecond, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, path, func(string) {})
	}()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestDebouncerCollapsesBursts(t *testing.T) {
	var count int64
	d := newDebouncer(30 * time.Millisecond)

	for i := 0; i < 5; i++ {
		d.debounce(func() { atomic.AddInt64(&count, 1) })
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt64(&count); got != 1 {
		t.Fatalf("debouncer fired %d times for one burst, want 1", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	var count int64
	d := newDebouncer(20 * time.Millisecond)

	d.debounce(func() { atomic.AddInt64(&count, 1) })
	d.cancel()

	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt64(&count); got != 0 {
		t.Fatalf("cancelled debouncer still fired %d times", got)
	}
}
