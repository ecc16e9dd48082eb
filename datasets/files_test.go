package datasets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestFilePaths(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "Actor_01", "03-01-01-01-01-01-01.wav"))
	touch(t, filepath.Join(root, "Actor_01", "03-01-02-01-01-01-01.wav"))
	touch(t, filepath.Join(root, "Actor_02", "deep", "03-01-03-01-01-01-02.wav"))
	touch(t, filepath.Join(root, "top.wav"))
	touch(t, filepath.Join(root, "Actor_01", "notes.txt"))
	touch(t, filepath.Join(root, "Actor_01", ".hidden.wav"))
	touch(t, filepath.Join(root, "Actor_01", "clip.wav.bak"))

	files, err := FilePaths(root, "wav")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "Actor_01", "03-01-01-01-01-01-01.wav"),
		filepath.Join(root, "Actor_01", "03-01-02-01-01-01-01.wav"),
		filepath.Join(root, "Actor_02", "deep", "03-01-03-01-01-01-02.wav"),
		filepath.Join(root, "top.wav"),
	}, files)

	txt, err := FilePaths(root, ".txt")
	require.NoError(t, err)
	assert.Len(t, txt, 1)
}

func TestFilePathsMissingRoot(t *testing.T) {
	_, err := FilePaths(filepath.Join(t.TempDir(), "nope"), "wav")
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "03-01-01-01-01-01-01.wav", Filename("data/Actor_01/03-01-01-01-01-01-01.wav"))
	assert.Equal(t, "03-01-01-01-01-01-01", PureFilename("data/Actor_01/03-01-01-01-01-01-01.wav"))
	assert.Equal(t, "archive", PureFilename("archive.tar.gz"))
	assert.Equal(t, "plain", PureFilename("plain"))
}
