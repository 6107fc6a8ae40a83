package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_Debouncing(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(logo, []byte("initial"), 0o644); err != nil {
		t.Fatal(err)
	}

	var callCount atomic.Int32
	w := New([]string{logo}, 100*time.Millisecond, func() {
		callCount.Add(1)
	})

	go func() {
		if err := w.Start(); err != nil {
			t.Logf("watcher start error: %v", err)
		}
	}()

	// Give watcher time to start.
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(logo, fmt.Appendf(nil, "change %d", i), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Wait for debounce to settle.
	time.Sleep(300 * time.Millisecond)
	w.Stop()

	count := callCount.Load()
	if count == 0 {
		t.Error("expected at least one onChange callback")
	}
	if count >= 5 {
		t.Errorf("expected debouncing to reduce callbacks, got %d for 5 changes", count)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(logo, []byte("logo"), 0o644); err != nil {
		t.Fatal(err)
	}

	var callCount atomic.Int32
	w := New([]string{logo}, 50*time.Millisecond, func() {
		callCount.Add(1)
	})

	go func() {
		_ = w.Start()
	}()
	time.Sleep(50 * time.Millisecond)

	// Generated icons land next to the logo and must not retrigger a run.
	if err := os.WriteFile(filepath.Join(dir, "favicon-16x16.png"), []byte("icon"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)
	w.Stop()

	if n := callCount.Load(); n != 0 {
		t.Errorf("onChange called %d times for an unrelated file", n)
	}
}

func TestWatcher_NonexistentPaths(t *testing.T) {
	w := New([]string{"/nonexistent/path/that/does/not/exist/logo.png"}, 100*time.Millisecond, func() {})

	go func() {
		_ = w.Start()
	}()

	time.Sleep(50 * time.Millisecond)
	w.Stop()
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := New(nil, 100*time.Millisecond, func() {})

	go func() {
		_ = w.Start()
	}()

	time.Sleep(50 * time.Millisecond)

	// Calling Stop multiple times should not panic.
	w.Stop()
	w.Stop()
}
