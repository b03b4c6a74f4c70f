package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/unigrid/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing string
		content  string
		mode     os.FileMode
		wantMode os.FileMode
	}{
		{name: "new file", content: "char U+00E9\n", mode: 0644, wantMode: 0644},
		{name: "overwrite", existing: "old report", content: "new report", mode: 0644, wantMode: 0644},
		{name: "explicit mode", content: "x", mode: 0600, wantMode: 0600},
		{name: "default mode", content: "x", mode: 0, wantMode: fsutil.DefaultFileMode},
		{name: "empty content", content: "", mode: 0644, wantMode: 0644},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "report.txt")
			if tt.existing != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.existing), 0644))
			}

			require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte(tt.content), tt.mode))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))

			stat, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, stat.Mode().Perm())
		})
	}
}

func TestWriteAtomic_Cancelled(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fsutil.WriteAtomic(ctx, path, []byte("content"), 0644)
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "file should not have been created")
}

func TestWriteAtomic_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "report.txt")

	require.Error(t, fsutil.WriteAtomic(context.Background(), path, []byte("content"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.Contains(entry.Name(), ".tmp."), "temp file left behind: %s", entry.Name())
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("e\u0301\n"), 0644))

	t.Run("regular file", func(t *testing.T) {
		t.Parallel()

		got, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "e\u0301\n", string(got))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), filepath.Join(dir, "nope.txt"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), dir)
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.ReadFile(ctx, path)
		require.ErrorIs(t, err, context.Canceled)
	})
}
