// Package imageio loads source images and watches them for changes.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/riordanpawley/asciiart/internal/domain"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Loader decodes images from disk
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new image loader
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load decodes the image at path. The format is detected from content.
func (l *Loader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, &domain.ImageError{Op: "load", Err: domain.ErrNoImage}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.ImageError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &domain.ImageError{Op: "decode", Path: path, Err: fmt.Errorf("unsupported or corrupt image: %w", err)}
	}

	b := img.Bounds()
	l.logger.Debug("image loaded", "path", path, "format", format, "width", b.Dx(), "height", b.Dy())
	return img, nil
}
