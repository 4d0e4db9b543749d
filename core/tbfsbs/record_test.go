package tbfsbs

import (
	"strings"
	"testing"
)

func TestSummaryWithValue(t *testing.T) {
	r := Record{ID: "Id1", Value: 2.5, HasValue: true, Desc: "My description", Seq: strings.Repeat("A", 502)}
	want := "ID: Id1\nValue: 2.5\nDescription: My description\nSequence length: 502\n"
	if got := r.Summary(); got != want {
		t.Errorf("summary:\n%q\nwant:\n%q", got, want)
	}
}

func TestSummaryRounding(t *testing.T) {
	r := Record{ID: "X", Value: 2.75, HasValue: true}
	if got := r.Summary(); !strings.Contains(got, "Value: 2.8\n") {
		t.Errorf("expected value rounded to one decimal, got:\n%s", got)
	}
}

func TestSummaryUnsetValue(t *testing.T) {
	r := Record{ID: "X", Desc: "", Seq: ""}
	want := "ID: X\nValue: NA\nDescription: \nSequence length: 0\n"
	if got := r.Summary(); got != want {
		t.Errorf("summary %q, want %q", got, want)
	}
}

func TestSummaryZeroValue(t *testing.T) {
	r := Record{ID: "X", Value: 0, HasValue: true}
	if got := r.Summary(); !strings.Contains(got, "Value: 0.0\n") {
		t.Errorf("zero is a set value and must print as 0.0, got:\n%s", got)
	}
}
