package workbook_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/primer/pkg/workbook"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatch_EmitsOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drills.yaml")
	writeFile(t, path, "version: 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := workbook.Watch(ctx, path, nil)
	require.NoError(t, err)

	// Give the watcher a moment to arm before the write.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, path, "version: 1\ntitle: updated\n")

	select {
	case ev, ok := <-events:
		require.True(t, ok, "channel closed before event")
		require.Equal(t, "drills.yaml", filepath.Base(ev.Path))
	case <-time.After(3 * time.Second):
		t.Fatal("no event after rewrite")
	}
}

func TestWatch_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drills.yaml")
	writeFile(t, path, "version: 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := workbook.Watch(ctx, path, nil)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		writeFile(t, path, "version: 1\n")
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-events:
	case <-time.After(3 * time.Second):
		t.Fatal("no event after burst")
	}

	// The burst should have collapsed; nothing else arrives promptly.
	select {
	case <-events:
		t.Error("burst produced more than one event")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drills.yaml")
	writeFile(t, path, "version: 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := workbook.Watch(ctx, path, nil)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "other.yaml"), "noise\n")

	select {
	case ev := <-events:
		t.Errorf("unexpected event for sibling file: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drills.yaml")
	writeFile(t, path, "version: 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	events, err := workbook.Watch(ctx, path, nil)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		require.False(t, ok, "channel should close on cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	ctx := context.Background()
	_, err := workbook.Watch(ctx, filepath.Join(t.TempDir(), "nope", "drills.yaml"), nil)
	require.Error(t, err)
}
