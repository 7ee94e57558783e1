package watch

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWatchedFiles(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "shader.frag")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(frag, []byte("void main() {}"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))

	w, err := New()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(frag))
	assert.Nil(t, w.Changed())

	require.NoError(t, os.WriteFile(other, []byte("y"), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte("void main() { }"), 0o644))

	var seen []string
	assert.Eventually(t, func() bool {
		seen = append(seen, w.Changed()...)
		return slices.Contains(seen, frag)
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotContains(t, seen, other)
}

func TestWatcherSeesReplaceOnSave(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "shader.vert")
	require.NoError(t, os.WriteFile(vert, []byte("a"), 0o644))

	w, err := New()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(vert))

	tmp := filepath.Join(dir, ".shader.vert.swp")
	require.NoError(t, os.WriteFile(tmp, []byte("b"), 0o644))
	require.NoError(t, os.Rename(tmp, vert))

	assert.Eventually(t, func() bool {
		return slices.Contains(w.Changed(), vert)
	}, 5*time.Second, 10*time.Millisecond)
}

func TestAddMissingDirectory(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Close()
	assert.Error(t, w.Add(filepath.Join(t.TempDir(), "gone", "shader.frag")))
}

func TestCloseTwice(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Add(filepath.Join(t.TempDir(), "shader.frag")))

	require.NoError(t, w.Close())
	assert.NotPanics(t, func() {
		assert.NoError(t, w.Close())
	})
}
