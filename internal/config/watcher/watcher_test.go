package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.toml")
	if err := os.WriteFile(path, []byte("log_level = \"info\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := New(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("log_level = \"debug\"\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not fire after write")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.toml")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := New(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer w.Close()

	sibling := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(sibling, []byte("y = 2\n"), 0o644); err != nil {
		t.Fatalf("writing sibling: %v", err)
	}

	select {
	case <-changed:
		t.Error("watcher fired for a sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.toml")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	w, err := New(path, func() {})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close error: %v", err)
	}
}
