package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRegularFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, p := range []string{"a.txt", "sub/b.txt", "skip/c.txt"} {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o600))
	}

	files, err := ListRegularFiles(context.Background(), root, func(rel string) bool {
		return rel == "skip"
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "sub/b.txt"}, files)
}

func TestListRegularFiles_NilPrune(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o600))

	files, err := ListRegularFiles(context.Background(), root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, files)
}

func TestListRegularFiles_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ListRegularFiles(ctx, t.TempDir(), nil)
	require.ErrorIs(t, err, context.Canceled)
}
