package bmp2rust

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/sergeymakinen/go-bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load opens and decodes the image in file. Any format registered with the
// image package may be used, BMP, PNG, GIF, JPEG, TIFF and WebP are
// registered by this package.
func (c *Converter) Load(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, &ImageLoadError{File: file, Err: err}
	}
	defer f.Close()

	m, format, err := image.Decode(f)
	if err != nil {
		return nil, &ImageLoadError{File: file, Err: err}
	}

	b := m.Bounds()
	c.logger.Printf("Decoded \"%s\" as %s, %dx%d\n", file, format, b.Dx(), b.Dy())

	return m, nil
}
