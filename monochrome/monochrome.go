/*
Package monochrome implements a packed monochrome bitmap encoder and decoder.

Pixels are either black or white and are stored one bit per pixel, eight
horizontally adjacent pixels to a byte with the leftmost pixel in the most
significant bit. A set bit is a black pixel. Every row starts on a new byte so
when the width is not a multiple of eight the low-order bits of the last byte
in each row are padding and are always zero.

There is no header; the width and height must be known to decode the data and
the encoded size is always height * ceil(width / 8) bytes.
*/
package monochrome

import (
	"errors"
	"image"
	"image/color"
)

const (
	pixelsPerByte = 8

	// Black is the red channel value of a black pixel
	Black = 0x00
	// White is the red channel value of a white pixel
	White = 0xff
)

// Palette is the color model of a decoded Image, index 1 is black.
var Palette = color.Palette{color.White, color.Black}

// Stride returns the number of bytes used to store a row of width pixels.
func Stride(width int) int {
	return (width + pixelsPerByte - 1) / pixelsPerByte
}

// Image is a packed monochrome bitmap. It implements image.PalettedImage.
type Image struct {
	data                  []byte
	width, height, stride int
}

var _ image.PalettedImage = &Image{}

// New wraps packed bitmap data of the given dimensions.
func New(data []byte, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, errors.New("monochrome: negative dimensions")
	}
	stride := Stride(width)
	if len(data) != stride*height {
		return nil, errors.New("monochrome: data length does not match dimensions")
	}
	return &Image{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Bytes returns the packed bitmap data
func (m *Image) Bytes() []byte {
	return m.data
}

// Stride returns the number of bytes per row
func (m *Image) Stride() int {
	return m.stride
}

// Black reports whether the pixel at (x, y) is black. Pixels outside the
// bounds are white.
func (m *Image) Black(x, y int) bool {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return false
	}
	b := m.data[y*m.stride+x/pixelsPerByte]
	return b>>(pixelsPerByte-1-x%pixelsPerByte)&1 == 1
}

func (m *Image) ColorModel() color.Model {
	return Palette
}

func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

func (m *Image) At(x, y int) color.Color {
	return Palette[m.ColorIndexAt(x, y)]
}

func (m *Image) ColorIndexAt(x, y int) uint8 {
	if m.Black(x, y) {
		return 1
	}
	return 0
}
