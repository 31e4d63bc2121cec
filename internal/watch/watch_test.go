package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherRunsOnceUpFront(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte("create schema app;\n"), 0644))

	calls := make(chan struct{}, 8)
	w, err := New(path, 20*time.Millisecond, func() error {
		calls <- struct{}{}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, w.Run())
	defer w.Stop()

	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("initial callback did not run")
	}
}

func TestWatcherFiresAfterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte("create schema app;\n"), 0644))

	calls := make(chan struct{}, 8)
	w, err := New(path, 20*time.Millisecond, func() error {
		calls <- struct{}{}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, w.Run())
	defer w.Stop()

	<-calls // initial run

	require.NoError(t, os.WriteFile(path, []byte("create schema app2;\n"), 0644))

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire after write")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte("create schema app;\n"), 0644))

	calls := make(chan struct{}, 8)
	w, err := New(path, 20*time.Millisecond, func() error {
		calls <- struct{}{}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, w.Run())
	defer w.Stop()

	<-calls // initial run

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case <-calls:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCountsRenameOverAsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte("create schema app;\n"), 0644))

	calls := make(chan struct{}, 8)
	w, err := New(path, 20*time.Millisecond, func() error {
		calls <- struct{}{}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, w.Run())
	defer w.Stop()

	<-calls // initial run

	// Save the way editors do: write a temp file, rename it over the target.
	tmp := filepath.Join(dir, ".schema.sql.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("create schema app2;\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire after rename-over save")
	}
}

func TestWatcherInitialFailureSurfaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte("create schema app;\n"), 0644))

	w, err := New(path, 20*time.Millisecond, func() error {
		return os.ErrPermission
	})
	require.NoError(t, err)
	defer w.Stop()

	require.Error(t, w.Run())
}
