package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherTriggersAfterChange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o750))

	triggered := make(chan struct{}, 1)
	w, err := New(dir, 50*time.Millisecond, func(context.Context) {
		select {
		case triggered <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	// Give the watcher a moment to register before generating events.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "page.md"), []byte("# hi\n"), 0o600))

	select {
	case <-triggered:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not trigger after source change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()

	count := 0
	counted := make(chan int, 16)
	w, err := New(dir, 200*time.Millisecond, func(context.Context) {
		count++
		counted <- count
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "burst.md"), []byte{byte(i)}, 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case n := <-counted:
		require.Equal(t, 1, n, "burst of writes should collapse into one trigger")
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not trigger")
	}

	// No second trigger should arrive for the same burst.
	select {
	case n := <-counted:
		t.Fatalf("unexpected extra trigger (%d)", n)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestNewMissingDirStillConstructs(t *testing.T) {
	// Construction only resolves the path; watching starts in Run.
	_, err := New(filepath.Join(t.TempDir(), "not-yet"), time.Second, func(context.Context) {})
	require.NoError(t, err)
}
