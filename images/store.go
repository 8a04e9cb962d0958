// Package images stores photos attached to diary entries.
//
// Every attached photo is downsized into a fixed box and re-encoded as JPEG,
// so the images directory never holds the (possibly huge) originals.
package images

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	// Decoders registered for image.Decode
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	TARGETWIDTH  = 2000
	TARGETHEIGHT = 2000

	JPEGQUALITY = 80
)

// Patterns for the file dialog, matching the registered decoders
var FilePatterns = []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.webp"}

type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to store image %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Resizes img into the target box and writes it as a JPEG with a fresh name.
// Returns the path of the written file.
func (s *Store) Save(img image.Image) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", &WriteError{Path: s.dir, Err: fmt.Errorf("empty image")}
	}

	err := os.MkdirAll(s.dir, 0o755)
	if err != nil {
		return "", &WriteError{Path: s.dir, Err: err}
	}

	resized := image.NewRGBA(image.Rect(0, 0, TARGETWIDTH, TARGETHEIGHT))
	draw.ApproxBiLinear.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Over, nil)

	path := filepath.Join(s.dir, uuid.NewString()+".jpg")

	file, err := os.Create(path)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	err = jpeg.Encode(file, resized, &jpeg.Options{Quality: JPEGQUALITY})
	if err != nil {
		file.Close()
		os.Remove(path)
		return "", &WriteError{Path: path, Err: err}
	}

	err = file.Close()
	if err != nil {
		os.Remove(path)
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}

// Decodes the image at sourcePath and saves it.
func (s *Store) SaveFile(sourcePath string) (string, error) {
	file, err := os.Open(sourcePath)
	if err != nil {
		return "", &WriteError{Path: sourcePath, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", &WriteError{Path: sourcePath, Err: fmt.Errorf("couldn't decode: %w", err)}
	}

	return s.Save(img)
}
