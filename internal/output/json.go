// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"tbfsbs-core/tbfsbs"
)

// recordRow is the machine-readable form of one record summary. Value
// is a pointer so an unset target value serializes as null rather than
// a fake zero.
type recordRow struct {
	File        string   `json:"file"`
	ID          string   `json:"id"`
	Value       *float64 `json:"value"`
	Description string   `json:"description"`
	Length      int      `json:"length"`
}

// WriteJSON writes the per-file report as an indented JSON array.
func WriteJSON(w io.Writer, name string, c *tbfsbs.Collection) error {
	rows := make([]recordRow, 0, c.Len())
	for _, r := range c.Records() {
		row := recordRow{
			File:        name,
			ID:          r.ID,
			Description: r.Desc,
			Length:      len(r.Seq),
		}
		if r.HasValue {
			v := r.Value
			row.Value = &v
		}
		rows = append(rows, row)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
