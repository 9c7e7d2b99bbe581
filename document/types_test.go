package document

import (
	"strings"
	"testing"
)

func TestQualifiersOrderAndReplace(t *testing.T) {
	var qs Qualifiers
	qs.Set("b", ScalarValue(TypedValue{Text: "1"}))
	qs.Set("a", ScalarValue(TypedValue{Text: "2"}))
	qs.Set("b", ScalarValue(TypedValue{Text: "3"}))

	if len(qs) != 2 {
		t.Fatalf("qualifiers = %d, want 2", len(qs))
	}
	if qs[0].Name != "b" || qs[1].Name != "a" {
		t.Errorf("order = %q, %q", qs[0].Name, qs[1].Name)
	}
	if v, ok := qs.Get("b"); !ok || v.Scalar.Text != "3" {
		t.Errorf("replaced value = %+v, %v", v, ok)
	}
	if _, ok := qs.Get("missing"); ok {
		t.Error("Get should miss unknown names")
	}
}

func TestStrandString(t *testing.T) {
	cases := map[Strand]string{
		StrandNone:    ".",
		StrandForward: "+",
		StrandReverse: "-",
		StrandBoth:    "=",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Strand(%d).String() = %q, want %q", s, got, want)
		}
	}
}

func TestTypedValueString(t *testing.T) {
	if got := (TypedValue{Kind: ValueInt, Int: -3}).String(); got != "-3" {
		t.Errorf("int value = %q", got)
	}
	if got := (TypedValue{Kind: ValueText, Text: "abc"}).String(); got != "abc" {
		t.Errorf("text value = %q", got)
	}
}

func TestStandardSegments(t *testing.T) {
	f := Feature{Segments: []Segment{
		{Start: 1, End: 2, Type: "standard"},
		{Start: 3, End: 4, Type: "gap"},
		{Start: 5, End: 6, Type: "standard"},
	}}
	segs := f.StandardSegments()
	if len(segs) != 2 || segs[1].Start != 5 {
		t.Errorf("segments = %+v", segs)
	}
}

func TestDocumentString(t *testing.T) {
	if got := (*Document)(nil).String(); got != "<nil Document>" {
		t.Errorf("nil document = %q", got)
	}

	doc := &Document{
		IsDNA: true,
		DNA: &SequenceProperties{
			Topology:     TopologyCircular,
			Strandedness: StrandednessDouble,
			Length:       4,
		},
		Sequence: "ACGT",
		Primers:  []Primer{{Name: "T7", Sequence: "TAATACGACT"}},
		History:  &AssemblyNode{Name: "construct", Length: "4"},
	}
	out := doc.String()
	for _, w := range []string{"circular", "ACGT", "T7", "construct"} {
		if !strings.Contains(out, w) {
			t.Errorf("dump missing %q:\n%s", w, out)
		}
	}
}
