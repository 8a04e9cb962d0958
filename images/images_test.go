package images

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, dir string, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}

	path := filepath.Join(dir, "source.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, png.Encode(file, img))

	return path
}

func TestSaveResizesToJPEG(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "images"))

	path, err := store.Save(image.NewRGBA(image.Rect(0, 0, 40, 30)))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "images"), filepath.Dir(path))
	assert.Equal(t, ".jpg", filepath.Ext(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	config, err := jpeg.DecodeConfig(file)
	require.NoError(t, err)
	assert.Equal(t, TARGETWIDTH, config.Width)
	assert.Equal(t, TARGETHEIGHT, config.Height)
}

func TestSaveUsesUniqueNames(t *testing.T) {
	store := NewStore(t.TempDir())
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	first, err := store.Save(img)
	require.NoError(t, err)

	second, err := store.Save(img)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.FileExists(t, first)
	assert.FileExists(t, second)
}

func TestSaveEmptyImage(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Save(image.NewRGBA(image.Rectangle{}))

	var writeErr *WriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	source := writeTestPNG(t, dir, 64, 48)

	store := NewStore(filepath.Join(dir, "stored"))
	path, err := store.SaveFile(source)
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.NotEqual(t, source, path)
}

func TestSaveFileNotAnImage(t *testing.T) {
	dir := t.TempDir()

	source := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(source, []byte("definitely not a png"), 0o644))

	store := NewStore(filepath.Join(dir, "stored"))
	_, err := store.SaveFile(source)

	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, source, writeErr.Path)

	assert.NoDirExists(t, filepath.Join(dir, "stored"))
}

func TestAttach(t *testing.T) {
	dir := t.TempDir()
	source := writeTestPNG(t, dir, 8, 8)

	attachment := NewAttachment(NewStore(filepath.Join(dir, "stored")))
	assert.Equal(t, "", attachment.ImagePath)

	err := attachment.Attach(source)
	require.NoError(t, err)

	assert.NotEmpty(t, attachment.ImagePath)
	assert.FileExists(t, attachment.ImagePath)

	attachment.Clear()
	assert.Equal(t, "", attachment.ImagePath)
}

func TestAttachFailureKeepsPreviousPath(t *testing.T) {
	dir := t.TempDir()
	source := writeTestPNG(t, dir, 8, 8)

	attachment := NewAttachment(NewStore(filepath.Join(dir, "stored")))
	require.NoError(t, attachment.Attach(source))

	previous := attachment.ImagePath

	err := attachment.Attach(filepath.Join(dir, "does-not-exist.png"))
	assert.Error(t, err)

	assert.Equal(t, previous, attachment.ImagePath)
}
