package rust

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultBytesPerLine is the number of bytes written on each line of a
// wrapped array
const DefaultBytesPerLine = 16

const indent = "    "

// Encoder writes Rust byte array constants.
type Encoder struct {
	// BytesPerLine is the maximum number of bytes on each line. If the array
	// fits on one line or BytesPerLine <= 0 the whole declaration is written
	// on a single line.
	BytesPerLine int
}

func writeBytes(w *bufio.Writer, data []byte) {
	for i, b := range data {
		if i > 0 {
			w.WriteString(", ")
		}
		fmt.Fprintf(w, "0x%02x", b)
	}
}

// Encode writes data to w as a constant named ident.
func (e *Encoder) Encode(w io.Writer, ident string, data []byte) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "pub const %s: [u8; %d] = [", ident, len(data))

	switch {
	case len(data) == 0:
	case e.BytesPerLine <= 0 || len(data) <= e.BytesPerLine:
		bw.WriteString(" ")
		writeBytes(bw, data)
		bw.WriteString(" ")
	default:
		bw.WriteString("\n")
		for i := 0; i < len(data); i += e.BytesPerLine {
			j := i + e.BytesPerLine
			if j > len(data) {
				j = len(data)
			}
			bw.WriteString(indent)
			writeBytes(bw, data[i:j])
			bw.WriteString(",\n")
		}
	}

	bw.WriteString("];\n")

	return bw.Flush()
}

// Encode writes data to w as a constant named ident using
// DefaultBytesPerLine.
func Encode(w io.Writer, ident string, data []byte) error {
	e := Encoder{BytesPerLine: DefaultBytesPerLine}
	return e.Encode(w, ident, data)
}
