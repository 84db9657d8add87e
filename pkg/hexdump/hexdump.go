// Package hexdump renders byte buffers in the classic offset / hex /
// ASCII layout. The CLI uses it for inspecting keys, IVs, and
// ciphertext.
package hexdump

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

const bytesPerLine = 16

// FHexDump writes a formatted hex dump of data to the provided writer.
// displayAddr is the starting address offset to display in the output.
func FHexDump(displayAddr uint, data []byte, w io.Writer) error {
	var sb strings.Builder
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[i:end]

		sb.Reset()
		fmt.Fprintf(&sb, "%08x  ", displayAddr+uint(i))

		for j := 0; j < bytesPerLine; j++ {
			if j < len(line) {
				fmt.Fprintf(&sb, "%02x ", line[j])
			} else {
				sb.WriteString("   ")
			}
			// Extra space after 8 bytes.
			if j == 7 {
				sb.WriteByte(' ')
			}
		}

		sb.WriteString(" |")
		for _, b := range line {
			if unicode.IsPrint(rune(b)) {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// Dump returns the hex dump of data as a string, starting at offset 0.
func Dump(data []byte) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = FHexDump(0, data, &sb)
	return sb.String()
}
