// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"tbfsbs-core/tbfsbs"
)

// WriteText writes the per-file report: the file name, a blank line,
// then every record's summary block in parse order.
func WriteText(w io.Writer, name string, c *tbfsbs.Collection) error {
	if _, err := fmt.Fprintf(w, "File: %s\n\n", name); err != nil {
		return err
	}
	_, err := io.WriteString(w, c.Summary())
	return err
}
