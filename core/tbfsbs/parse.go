// core/tbfsbs/parse.go
package tbfsbs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// HeaderMarker opens every TBFSBS header line.
const HeaderMarker = '%'

// MalformedRecordError reports a header line that cannot open a valid
// record.
type MalformedRecordError struct {
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Reason)
}

// Parse reads TBFSBS text from r and appends every complete record to
// the collection, in input order. Input with no header lines at all
// yields no records and no error.
func (c *Collection) Parse(r io.Reader) error {
	return c.ParseContext(context.Background(), r)
}

// ParseContext is the cancelable variant of Parse. On any failure — a
// malformed header, a scan error, or ctx cancellation — the collection
// is left untouched: records accumulate in a scratch slice and commit
// only once the whole source has parsed cleanly, so a partially-built
// record is never observable.
func (c *Collection) ParseContext(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		parsed  []Record
		pending Record
		seq     strings.Builder
		started bool
		lineNo  int
	)

	flush := func() {
		pending.Seq = seq.String()
		parsed = append(parsed, pending)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := sc.Text()
		if len(line) > 0 && line[0] == HeaderMarker {
			if started {
				flush()
			}
			rec, err := parseHeader(line, lineNo)
			if err != nil {
				return err
			}
			pending = rec
			seq.Reset()
			started = true
			continue
		}
		// Body line: trailing whitespace goes, lines join with no separator.
		seq.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("tbfsbs scan: %w", err)
	}
	// The final flush is unconditional once a header has been seen, so a
	// trailing header with no body still yields an empty-sequence record.
	if started {
		flush()
	}
	c.recs = append(c.recs, parsed...)
	return nil
}

// parseHeader splits a header line into a record with no sequence yet.
// Fields are whitespace-separated: the marker token, the identifier,
// then an optional numeric target value auto-detected by parse attempt,
// then the description. A non-numeric token after the identifier starts
// the description; that is a normal branch, not an error.
func parseHeader(line string, lineNo int) (Record, error) {
	fields := strings.Fields(line)
	// fields[0] is the marker token itself.
	if len(fields) < 2 {
		return Record{}, &MalformedRecordError{Line: lineNo, Reason: "header has no identifier"}
	}
	rec := Record{ID: fields[1]}
	rest := fields[2:]
	if len(rest) > 0 {
		if v, err := strconv.ParseFloat(rest[0], 64); err == nil {
			rec.Value = v
			rec.HasValue = true
			rest = rest[1:]
		}
	}
	rec.Desc = strings.Join(rest, " ")
	return rec, nil
}
