/*
Package rust renders packed bitmap data as a Rust byte array constant.

The output is a single declaration such as

	pub const ICON: [u8; 4] = [ 0x00, 0x00, 0xff, 0xff ];

and longer arrays are wrapped over multiple lines with a fixed number of bytes
on each line. Successive declarations can be concatenated into one source file.
*/
package rust

import (
	"path/filepath"
	"strings"
)

// Identifier derives a constant name from filename. The directory and
// extension are removed, anything other than an ASCII letter or digit is
// replaced with an underscore and the result is upper-cased. The result is
// not checked and may be empty, start with a digit or be a Rust keyword.
func Identifier(filename string) string {
	base := filepath.Base(filename)
	if ext := filepath.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}

	return strings.ToUpper(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, base))
}
