package gostamp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "a.jpg"), 200, 150)
	writeTestImage(t, filepath.Join(dir, "b.png"), 120, 90)
	writeTestImage(t, filepath.Join(dir, "c.bmp"), 80, 60)
	writeGarbage(t, filepath.Join(dir, "corrupt.jpg"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))

	res, err := Process(dir, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Found)
	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, filepath.Join(dir, OutputDirName), res.OutputDir)

	for _, name := range []string{"a.jpg", "b.png", "c.bmp"} {
		img, err := DecodeFile(filepath.Join(res.OutputDir, name))
		require.NoError(t, err, name)
		assert.NotNil(t, img, name)
	}

	// Failed and unsupported inputs produce no output at all.
	_, err = os.Stat(filepath.Join(res.OutputDir, "corrupt.jpg"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(res.OutputDir, "notes.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestProcess_PreservesDimensions(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "a.png"), 321, 123)

	res, err := Process(dir, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, res.Processed)

	img, err := DecodeFile(filepath.Join(res.OutputDir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, 321, img.Bounds().Dx())
	assert.Equal(t, 123, img.Bounds().Dy())
}

func TestProcess_MaxWidthDownscales(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "wide.png"), 800, 400)

	opts := DefaultOptions()
	opts.MaxWidth = 200

	res, err := Process(dir, opts)
	require.NoError(t, err)
	require.Equal(t, 1, res.Processed)

	img, err := DecodeFile(filepath.Join(res.OutputDir, "wide.png"))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestProcess_MissingDirectory(t *testing.T) {
	_, err := Process(filepath.Join(t.TempDir(), "nope"), DefaultOptions())
	assert.Error(t, err)
}

func TestProcess_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.jpg")
	writeTestImage(t, path, 10, 10)

	_, err := Process(path, DefaultOptions())
	assert.Error(t, err)
}

func TestProcess_InvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.FontSize = 1

	_, err := Process(t.TempDir(), opts)
	assert.Error(t, err)
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "b.jpg"), 10, 10)
	writeTestImage(t, filepath.Join(dir, "a.png"), 10, 10)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.jpg"), 0o755))

	files, err := ListImages(dir)
	require.NoError(t, err)

	// Sorted by name, directories and unsupported files ignored.
	assert.Equal(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.jpg"),
	}, files)
}
