/*
Package bmp2rust converts monochrome bitmap images into Rust byte array
constants for embedding icons and glyphs in firmware.

Each image is packed one bit per pixel, eight pixels to a byte, most
significant bit first, with every row starting on a new byte. Black pixels
are set bits. The constant is named after the image file.
*/
package bmp2rust

import (
	"bytes"
	"io"
	"log"

	"github.com/bodgit/bmp2rust/monochrome"
	"github.com/bodgit/bmp2rust/rust"
)

// Converter converts image files to Rust source.
type Converter struct {
	logger       *log.Logger
	bytesPerLine int
	threshold    int
}

// Option configures a Converter.
type Option func(*Converter)

// WithBytesPerLine sets the number of bytes written on each line of the
// array, zero or less writes the whole array on one line.
func WithBytesPerLine(n int) Option {
	return func(c *Converter) {
		c.bytesPerLine = n
	}
}

// WithThreshold records a black/white threshold. It is accepted for
// compatibility with existing build scripts but pixels must still be exactly
// black or white.
func WithThreshold(n int) Option {
	return func(c *Converter) {
		c.threshold = n
	}
}

// New returns a Converter that logs to logger.
func New(logger *log.Logger, opts ...Option) *Converter {
	c := &Converter{
		logger:       logger,
		bytesPerLine: rust.DefaultBytesPerLine,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Convert writes the Rust constant for the image in file to w. Nothing is
// written to w unless the whole conversion succeeds.
func (c *Converter) Convert(file string, w io.Writer) error {
	m, err := c.Load(file)
	if err != nil {
		return err
	}

	if c.threshold != 0 {
		c.logger.Printf("Ignoring threshold %d\n", c.threshold)
	}

	data, err := monochrome.Pack(monochrome.FromImage(m))
	if err != nil {
		return err
	}

	ident := rust.Identifier(file)
	c.logger.Printf("Packed \"%s\" into %d bytes as %s\n", file, len(data), ident)

	b := new(bytes.Buffer)
	e := rust.Encoder{BytesPerLine: c.bytesPerLine}
	if err := e.Encode(b, ident, data); err != nil {
		return err
	}

	_, err = b.WriteTo(w)
	return err
}
