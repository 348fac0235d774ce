package bmp2rust

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/bmp2rust/monochrome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *log.Logger {
	return log.New(ioutil.Discard, "", 0)
}

func twoRows() *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, 16, 2), color.Palette{color.White, color.Black})
	for x := 0; x < 16; x++ {
		m.SetColorIndex(x, 1, 1)
	}
	return m
}

func writeImage(t *testing.T, name string, m image.Image) string {
	file := filepath.Join(t.TempDir(), name)
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, m))
	return file
}

func writeBMP(t *testing.T, name string, width int, rows [][]byte) string {
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(file, oneBitBMP(t, width, rows), 0644))
	return file
}

// twoRowsBMP is twoRows as a 1-bit BMP
var twoRowsBMP = [][]byte{
	{0xff, 0xff},
	{0x00, 0x00},
}

func TestConvert(t *testing.T) {
	tables := []struct {
		name   string
		image  image.Image
		output string
	}{
		{
			name:   "two-rows.png",
			image:  twoRows(),
			output: "pub const TWO_ROWS: [u8; 4] = [ 0x00, 0x00, 0xff, 0xff ];\n",
		},
		{
			name:   "dot.png",
			image:  image.NewGray(image.Rect(0, 0, 1, 1)),
			output: "pub const DOT: [u8; 1] = [ 0x80 ];\n",
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			file := writeImage(t, table.name, table.image)

			b := new(bytes.Buffer)
			require.NoError(t, New(discard()).Convert(file, b))
			assert.Equal(t, table.output, b.String())
		})
	}

	b := new(bytes.Buffer)
	require.NoError(t, New(discard()).Convert(writeBMP(t, "two rows.bmp", 16, twoRowsBMP), b))
	assert.Equal(t, "pub const TWO_ROWS: [u8; 4] = [ 0x00, 0x00, 0xff, 0xff ];\n", b.String())
}

// oneBitBMP builds a bottom-up 1-bit BMP where palette index 0 is black and
// index 1 is white. rows are given top to bottom and padded to four bytes.
func oneBitBMP(t *testing.T, width int, rows [][]byte) []byte {
	stride := (width + 31) / 32 * 4
	size := stride * len(rows)

	b := new(bytes.Buffer)
	b.WriteString("BM")
	for _, v := range []interface{}{
		uint32(62 + size), // file size
		uint32(0),         // reserved
		uint32(62),        // pixel offset
		uint32(40),        // BITMAPINFOHEADER
		int32(width),
		int32(len(rows)), // positive height is bottom-up
		uint16(1),        // planes
		uint16(1),        // bits per pixel
		uint32(0),        // BI_RGB
		uint32(size),
		int32(2835),
		int32(2835),
		uint32(2), // colors used
		uint32(2), // important colors
		[4]byte{0x00, 0x00, 0x00, 0x00},
		[4]byte{0xff, 0xff, 0xff, 0x00},
	} {
		require.NoError(t, binary.Write(b, binary.LittleEndian, v))
	}

	for y := len(rows) - 1; y >= 0; y-- {
		row := make([]byte, stride)
		copy(row, rows[y])
		b.Write(row)
	}

	return b.Bytes()
}

func TestConvertOneBitBMP(t *testing.T) {
	file := writeBMP(t, "one-bit.bmp", 10, [][]byte{
		{0x00, 0x00}, // all black
		{0xff, 0x80}, // white except x = 9
	})

	b := new(bytes.Buffer)
	require.NoError(t, New(discard()).Convert(file, b))
	assert.Equal(t, "pub const ONE_BIT: [u8; 4] = [ 0xff, 0xc0, 0x00, 0x40 ];\n", b.String())
}

func TestConvertWrapped(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 24, 8), monochrome.Palette)
	for y := 0; y < 8; y++ {
		m.SetColorIndex(y, y, 1)
	}
	file := writeImage(t, "wrapped.png", m)

	b := new(bytes.Buffer)
	require.NoError(t, New(discard(), WithBytesPerLine(6)).Convert(file, b))
	assert.Equal(t, "pub const WRAPPED: [u8; 24] = [\n"+
		"    0x80, 0x00, 0x00, 0x40, 0x00, 0x00,\n"+
		"    0x20, 0x00, 0x00, 0x10, 0x00, 0x00,\n"+
		"    0x08, 0x00, 0x00, 0x04, 0x00, 0x00,\n"+
		"    0x02, 0x00, 0x00, 0x01, 0x00, 0x00,\n"+
		"];\n", b.String())
}

func TestConvertInvalidPixel(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	m.SetGray(3, 2, color.Gray{0x80})
	file := writeImage(t, "grey.png", m)

	b := new(bytes.Buffer)
	err := New(discard()).Convert(file, b)
	require.Error(t, err)

	var pe *monochrome.InvalidPixelError
	assert.True(t, errors.As(err, &pe))
	assert.Zero(t, b.Len())
}

func TestConvertLoadError(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.bmp")
	require.NoError(t, ioutil.WriteFile(corrupt, []byte("BM not really a bitmap"), 0644))

	for _, file := range []string{filepath.Join(dir, "missing.bmp"), corrupt} {
		t.Run(filepath.Base(file), func(t *testing.T) {
			b := new(bytes.Buffer)
			err := New(discard()).Convert(file, b)
			require.Error(t, err)

			var le *ImageLoadError
			if assert.True(t, errors.As(err, &le)) {
				assert.Equal(t, file, le.File)
				assert.Contains(t, le.Error(), "Error reading image: ")
			}
			assert.Zero(t, b.Len())
		})
	}
}

func TestConvertThreshold(t *testing.T) {
	file := writeImage(t, "rows.png", twoRows())

	logs := new(bytes.Buffer)
	b := new(bytes.Buffer)
	require.NoError(t, New(log.New(logs, "", 0), WithThreshold(128)).Convert(file, b))

	assert.Equal(t, "pub const ROWS: [u8; 4] = [ 0x00, 0x00, 0xff, 0xff ];\n", b.String())
	assert.Contains(t, logs.String(), "Ignoring threshold 128")
}

func TestLoad(t *testing.T) {
	file := writeBMP(t, "load.bmp", 16, twoRowsBMP)

	logs := new(bytes.Buffer)
	m, err := New(log.New(logs, "", 0)).Load(file)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 2), m.Bounds())
	assert.Contains(t, logs.String(), "as bmp, 16x2")
}
