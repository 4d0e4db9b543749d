// core/tbfsbs/record.go
package tbfsbs

import "fmt"

// Record is one TBFSBS entry: a header carrying the identifier, an
// optional numeric target value, and a free-text description, plus the
// sequence assembled from the body lines that followed the header.
//
// Seq is always a plain string; an entry whose header had no body lines
// has Seq == "", so a record never has an "unset" sequence.
type Record struct {
	ID       string
	Value    float64
	HasValue bool
	Desc     string
	Seq      string
}

// summaryNoValue stands in for the target value when the header did not
// carry one.
const summaryNoValue = "NA"

// Summary renders the four-line display block for one record:
//
//	ID: Id1
//	Value: 2.5
//	Description: My description
//	Sequence length: 502
//
// The value is shown rounded to one decimal digit using fmt's %.1f
// (round-half-to-even). A target value of exactly 0 is a set value and
// prints as "0.0", not as the absence marker.
func (r Record) Summary() string {
	value := summaryNoValue
	if r.HasValue {
		value = fmt.Sprintf("%.1f", r.Value)
	}
	return fmt.Sprintf("ID: %s\nValue: %s\nDescription: %s\nSequence length: %d\n",
		r.ID, value, r.Desc, len(r.Seq))
}
