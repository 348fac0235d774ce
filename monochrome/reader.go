package monochrome

import (
	"errors"
	"io"
)

var (
	// ErrNotEnough is returned when there is less data than the dimensions
	// require
	ErrNotEnough = errors.New("monochrome: not enough image data")
	// ErrTooMuch is returned when there is data left over
	ErrTooMuch = errors.New("monochrome: too much image data")
)

// Decode reads a packed monochrome bitmap of the given dimensions from r. r
// must hold exactly height rows of Stride(width) bytes.
func Decode(r io.Reader, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, errors.New("monochrome: negative dimensions")
	}

	data := make([]byte, Stride(width)*height)
	switch _, err := io.ReadFull(r, data); err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		return nil, ErrNotEnough
	default:
		return nil, err
	}

	var extra [1]byte
	switch n, err := r.Read(extra[:]); {
	case n > 0:
		return nil, ErrTooMuch
	case err != nil && err != io.EOF:
		return nil, err
	}

	return New(data, width, height)
}
