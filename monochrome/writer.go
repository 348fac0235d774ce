package monochrome

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Sampler is the minimal view of a decoded image needed to pack it.
type Sampler interface {
	Width() int
	Height() int
	// Red returns the 8-bit red channel of the pixel at (x, y) where
	// 0 <= x < Width() and 0 <= y < Height().
	Red(x, y int) uint8
}

// InvalidPixelError is returned when a pixel is neither black nor white.
type InvalidPixelError struct {
	X, Y  int
	Value uint8
}

func (e *InvalidPixelError) Error() string {
	return fmt.Sprintf("monochrome: pixel at (%d, %d) has red value %d, expected %d or %d", e.X, e.Y, e.Value, Black, White)
}

type imageSampler struct {
	m image.Image
	r image.Rectangle
}

func (s *imageSampler) Width() int {
	return s.r.Dx()
}

func (s *imageSampler) Height() int {
	return s.r.Dy()
}

func (s *imageSampler) Red(x, y int) uint8 {
	// Read the red channel without alpha premultiplication
	return color.NRGBAModel.Convert(s.m.At(s.r.Min.X+x, s.r.Min.Y+y)).(color.NRGBA).R
}

// FromImage returns a Sampler reading the red channel of m. The top-left
// corner of m's bounds is sampled as (0, 0).
func FromImage(m image.Image) Sampler {
	return &imageSampler{
		m: m,
		r: m.Bounds(),
	}
}

// Pack packs the pixels of s into a monochrome bitmap. Every pixel must have
// a red value of exactly Black or White otherwise an *InvalidPixelError is
// returned and no data.
func Pack(s Sampler) ([]byte, error) {
	width, height := s.Width(), s.Height()
	if width <= 0 || height <= 0 {
		return []byte{}, nil
	}

	stride := Stride(width)
	data := make([]byte, 0, stride*height)

	for y := 0; y < height; y++ {
		for x0 := 0; x0 < width; x0 += pixelsPerByte {
			var b byte
			for bit := 0; bit < pixelsPerByte; bit++ {
				x := x0 + bit
				if x >= width {
					break
				}
				switch r := s.Red(x, y); r {
				case Black:
					b |= 1 << (pixelsPerByte - 1 - bit)
				case White:
				default:
					return nil, &InvalidPixelError{X: x, Y: y, Value: r}
				}
			}
			data = append(data, b)
		}
	}

	return data, nil
}

// Encode writes the Image m to w as a packed monochrome bitmap.
func Encode(w io.Writer, m image.Image) error {
	data, err := Pack(FromImage(m))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
