// core/tbfsbs/collection.go
package tbfsbs

import "strings"

// Collection is an ordered list of Records accumulated from one or more
// parsed sources. Iteration and write order is insertion order; duplicate
// identifiers are allowed and preserved.
type Collection struct {
	recs []Record
}

// Len returns the number of records held.
func (c *Collection) Len() int { return len(c.recs) }

// Records returns the held records in insertion order. The slice is the
// collection's backing storage; callers must not mutate it.
func (c *Collection) Records() []Record { return c.recs }

// Append adds a single record at the end.
func (c *Collection) Append(r Record) { c.recs = append(c.recs, r) }

// Extend appends every record of other, after c's existing records,
// preserving other's relative order.
func (c *Collection) Extend(other *Collection) {
	c.recs = append(c.recs, other.recs...)
}

// ExtendRecords appends records in the given order.
func (c *Collection) ExtendRecords(recs []Record) {
	c.recs = append(c.recs, recs...)
}

// Summary renders every record's Summary block, each followed by one
// blank line, in collection order.
func (c *Collection) Summary() string {
	var b strings.Builder
	for _, r := range c.recs {
		b.WriteString(r.Summary())
		b.WriteByte('\n')
	}
	return b.String()
}
