package tbfsbs

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrapLengths(t *testing.T) {
	lines := WrapSeq("ACGTACGTAC", 4)
	if len(lines) != 3 || len(lines[0]) != 4 || len(lines[1]) != 4 || len(lines[2]) != 2 {
		t.Fatalf("wrap at 4: %v", lines)
	}
}

func TestWrapExactMultiple(t *testing.T) {
	lines := WrapSeq("ACGTACGT", 4)
	if !reflect.DeepEqual(lines, []string{"ACGT", "ACGT"}) {
		t.Fatalf("no empty trailing chunk expected, got %v", lines)
	}
}

func TestWrapUnbounded(t *testing.T) {
	if lines := WrapSeq("ACGTACGT", 0); !reflect.DeepEqual(lines, []string{"ACGTACGT"}) {
		t.Fatalf("unbounded wrap must keep one line, got %v", lines)
	}
}

func TestWrapRejoin(t *testing.T) {
	const seq = "ACGTACGTACGTACG"
	for width := 1; width <= len(seq)+1; width++ {
		if got := strings.Join(WrapSeq(seq, width), ""); got != seq {
			t.Fatalf("width %d: rejoined %q != %q", width, got, seq)
		}
	}
}

func TestWriteFormat(t *testing.T) {
	var c Collection
	c.Append(Record{ID: "A", Value: 1.5, HasValue: true, Desc: "desc one", Seq: "ACGTACGT"})
	c.Append(Record{ID: "B", Desc: "desc two", Seq: "TTTT"})

	var out strings.Builder
	if err := c.Write(&out, 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "% A 1.5 desc one\nACGTACGT\n% B desc two\nTTTT"
	if out.String() != want {
		t.Errorf("output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestWriteWrapped(t *testing.T) {
	var c Collection
	c.Append(Record{ID: "A", Seq: "ACGTACGTAC"})

	var out strings.Builder
	if err := c.Write(&out, 4); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "% A \nACGT\nACGT\nAC"
	if out.String() != want {
		t.Errorf("output %q, want %q", out.String(), want)
	}
}

func TestWriteZeroValue(t *testing.T) {
	var c Collection
	c.Append(Record{ID: "A", Value: 0, HasValue: true, Desc: "d", Seq: "AC"})

	var out strings.Builder
	if err := c.Write(&out, 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := out.String(); got != "% A 0 d\nAC" {
		t.Errorf("zero value must be written, got %q", got)
	}
}

func TestWriteEmptyCollection(t *testing.T) {
	var c Collection
	var out strings.Builder
	if err := c.Write(&out, 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	if out.String() != "" {
		t.Errorf("expected empty output, got %q", out.String())
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	src := parseString(t, twoRecords)

	var text strings.Builder
	if err := src.Write(&text, 0); err != nil {
		t.Fatalf("write: %v", err)
	}

	var back Collection
	if err := back.Parse(strings.NewReader(text.String())); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !reflect.DeepEqual(src.Records(), back.Records()) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", src.Records(), back.Records())
	}
}

func TestWriteParseRoundTripWrapped(t *testing.T) {
	src := parseString(t, twoRecords)
	for _, width := range []int{1, 3, 4, 8, 100} {
		var text strings.Builder
		if err := src.Write(&text, width); err != nil {
			t.Fatalf("write width %d: %v", width, err)
		}
		var back Collection
		if err := back.Parse(strings.NewReader(text.String())); err != nil {
			t.Fatalf("reparse width %d: %v", width, err)
		}
		if !reflect.DeepEqual(src.Records(), back.Records()) {
			t.Errorf("width %d: round trip mismatch", width)
		}
	}
}
