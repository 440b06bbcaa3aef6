// Package imageload decodes the image shown by the viewer. Besides the
// standard library formats it registers BMP, TIFF and WebP decoders, and it
// applies EXIF orientation so the reported natural size matches what is
// displayed.
package imageload

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned for images without any pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Open decodes the image file at path.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	if err := checkSize(img); err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes an image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if err := checkSize(img); err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// NaturalSize returns the pixel dimensions of img.
func NaturalSize(img image.Image) (width, height float64) {
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func checkSize(img image.Image) error {
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return ErrEmptyImage
	}
	return nil
}
