// core/tbfsbs/write.go
package tbfsbs

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write serializes every record, in collection order, back to TBFSBS
// text. wrap is the maximum number of sequence characters per emitted
// line; wrap <= 0 leaves each sequence on a single line.
//
// The header line always carries one space after the identifier; a set
// target value is rendered in its shortest exact form (strconv 'g')
// followed by one space, an unset value is omitted entirely. The single
// trailing newline of the last record is stripped, so output never ends
// with a blank line. An empty collection writes nothing.
func (c *Collection) Write(w io.Writer, wrap int) error {
	var b strings.Builder
	for _, r := range c.recs {
		value := ""
		if r.HasValue {
			value = strconv.FormatFloat(r.Value, 'g', -1, 64) + " "
		}
		fmt.Fprintf(&b, "%c %s %s%s\n", HeaderMarker, r.ID, value, r.Desc)
		b.WriteString(strings.Join(WrapSeq(r.Seq, wrap), "\n"))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, strings.TrimSuffix(b.String(), "\n")); err != nil {
		return fmt.Errorf("tbfsbs write: %w", err)
	}
	return nil
}

// WrapSeq splits seq into consecutive chunks of at most width
// characters, greedily. An exact multiple of width yields exactly
// len/width lines with no trailing empty chunk. width <= 0 returns the
// whole sequence as a single line.
func WrapSeq(seq string, width int) []string {
	if width <= 0 || len(seq) <= width {
		return []string{seq}
	}
	lines := make([]string, 0, (len(seq)+width-1)/width)
	for off := 0; off < len(seq); off += width {
		end := off + width
		if end > len(seq) {
			end = len(seq)
		}
		lines = append(lines, seq[off:end])
	}
	return lines
}
