package fileserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-code-service/internal/domain"
)

func TestWatcher_InitialScan(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.EncodeURL("https://a.example.com")), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, 1, w.Count())
}

func TestWatcher_SeesNewFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.EncodeURL("https://a.example.com")), []byte("png"), 0o644))

	assert.Eventually(t, func() bool { return w.Count() == 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_SeesRemovals(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.EncodeURL("https://a.example.com"))
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()
	require.Equal(t, 1, w.Count())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.Remove(path))

	assert.Eventually(t, func() bool { return w.Count() == 0 }, 5*time.Second, 10*time.Millisecond)
}
