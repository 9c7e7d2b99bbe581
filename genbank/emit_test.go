package genbank

import (
	"strings"
	"testing"

	"sgc/document"
)

func text(s string) document.TypedValue {
	return document.TypedValue{Kind: document.ValueText, Text: s}
}

func minimalDoc() *document.Document {
	return &document.Document{
		IsDNA: true,
		DNA: &document.SequenceProperties{
			Length:       4,
			Topology:     document.TopologyLinear,
			Strandedness: document.StrandednessDouble,
		},
		Sequence: "ACGT",
	}
}

func TestEmitMinimalDocument(t *testing.T) {
	out := String(minimalDoc())
	lines := strings.Split(out, "\n")

	if !strings.HasPrefix(lines[0], "LOCUS       Exported") {
		t.Errorf("locus line: %q", lines[0])
	}
	if !strings.Contains(lines[0], "4 bp ds-DNA") || !strings.Contains(lines[0], "linear SYN 15-APR-2012") {
		t.Errorf("locus line: %q", lines[0])
	}

	want := []string{
		"DEFINITION  .",
		"ACCESSION   .",
		"VERSION     .",
		"KEYWORDS    .",
		"SOURCE      .",
		"  ORGANISM  .",
		"REFERENCE   1  (bases 1 to 4 )",
		"  AUTHORS   sgc",
		"  TITLE     Direct Submission",
		"  JOURNAL   Exported from a SnapGene container by sgc",
		"COMMENT     .",
		"FEATURES             Location/Qualifiers",
		"ORIGIN",
		"        0 ACGT",
		"//",
	}
	for i, w := range want {
		if lines[i+1] != w {
			t.Errorf("line %d = %q, want %q", i+1, lines[i+1], w)
		}
	}
}

func TestEmitNotesAndReferences(t *testing.T) {
	doc := minimalDoc()
	doc.Notes = document.Notes{
		{Name: "Description", Value: "An example construct"},
		{Name: "CustomMapLabel", Value: "pExample"},
		{Name: "Comments", Value: "line one\nline two"},
		{Name: "References", Children: document.Notes{
			{Name: "Reference", Children: document.Notes{
				{Name: "journal", Value: "Nature"},
				{Name: "authors", Value: "Doe J"},
			}},
		}},
	}

	out := String(doc)
	for _, w := range []string{
		"DEFINITION  An example construct\n",
		"KEYWORDS    pExample\n",
		"COMMENT     line one\n            line two\n",
		"REFERENCE   1  (bases 1 to 4 )\n",
		"  JOURNAL   Nature\n",
		"  AUTHORS   Doe J\n",
		"REFERENCE   2  (bases 1 to 4 )\n",
		"  TITLE     Direct Submission\n",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestEmitSingleSegmentFeature(t *testing.T) {
	doc := minimalDoc()
	f := document.Feature{
		Type:      "misc_feature",
		Name:      "thing",
		Start:     99,
		End:       200,
		Strand:    document.StrandReverse,
		Color:     "#cc0000",
		TextColor: "black",
		Segments:  []document.Segment{{Start: 100, End: 200, Color: "#cc0000", Type: "standard"}},
	}
	f.Qualifiers.Set("label", document.ScalarValue(text("thing")))
	f.Qualifiers.Set("gene", document.ScalarValue(text("abc")))
	f.Qualifiers.Set("note", document.ListValue([]document.TypedValue{
		text("a remark"),
		text("color: #cc0000"),
	}))
	doc.Features = []document.Feature{f}

	out := String(doc)
	for _, w := range []string{
		"     misc_feature    complement(99..200)\n",
		"                     /note=\"thing\"\n",
		"                     /note=\"a remark\"\n",
		"                     /gene=\"abc\"\n",
		"                     /note=\"color: #cc0000; direction: LEFT\"\n",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
	if strings.Contains(out, "/label=") {
		t.Error("label qualifier should be suppressed")
	}
	if strings.Contains(out, "/note=\"color: #cc0000\"\n") {
		t.Error("raw color note should be folded into the trailer")
	}
}

func TestEmitMultiSegmentFeature(t *testing.T) {
	doc := minimalDoc()
	f := document.Feature{
		Type:      "CDS",
		Name:      "gene1",
		Start:     0,
		End:       50,
		Strand:    document.StrandForward,
		Color:     "#ff0000",
		TextColor: "black",
		Segments: []document.Segment{
			{Start: 1, End: 10, Color: "#ff0000", Type: "standard"},
			{Start: 20, End: 30, Color: "#00ff00", Type: "standard", Name: "middle"},
			{Start: 40, End: 50, Color: "#0000ff", Type: "standard"},
		},
	}
	f.Qualifiers.Set("label", document.ScalarValue(text("gene1")))
	f.Qualifiers.Set("note", document.ListValue([]document.TypedValue{text("color: #ff0000")}))
	doc.Features = []document.Feature{f}

	out := String(doc)
	if !strings.Contains(out, "     CDS             join(1..10,20..30,40..50)\n") {
		t.Errorf("join location missing:\n%s", out)
	}
	segBlock := "                     /note=\"This feature has 3 segments:\n" +
		"                        0:  1 .. 10 / #ff0000\n" +
		"                        1:  20 .. 30 / #00ff00 / middle\n" +
		"                        2:  40 .. 50 / #0000ff\"\n"
	if !strings.Contains(out, segBlock) {
		t.Errorf("segment note block missing:\n%s", out)
	}
	if strings.Contains(out, "direction: RIGHT") {
		t.Error("multi-segment features take the segment note, not the direction trailer")
	}
}

func TestEmitOriginRows(t *testing.T) {
	doc := minimalDoc()
	doc.Sequence = strings.Repeat("ACGTACGTAC", 12) + "ACGTA" // 125 bases
	doc.DNA.Length = len(doc.Sequence)

	out := String(doc)
	for _, w := range []string{
		"\n        0 ACGTACGTAC ACGTACGTAC ACGTACGTAC ACGTACGTAC ACGTACGTAC ACGTACGTAC\n",
		"\n       60 ACGTACGTAC ACGTACGTAC ACGTACGTAC ACGTACGTAC ACGTACGTAC ACGTACGTAC\n",
		"\n      120 ACGTA\n//\n",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("origin missing %q:\n%s", w, out)
		}
	}
}

func TestRenderValue(t *testing.T) {
	intVal := document.TypedValue{Kind: document.ValueInt, Int: 7}
	cases := []struct {
		v    document.QualifierValue
		want string
	}{
		{document.ScalarValue(text("plain")), "plain"},
		{document.ScalarValue(intVal), "7"},
		{document.ListValue([]document.TypedValue{text("a"), intVal}), "a; 7"},
		{document.QualifierValue{Shape: document.QualifierMap, Map: []document.MapEntry{
			{Key: "k1", Value: text("v1")},
			{Key: "k2", Value: intVal},
		}}, "k1: v1; k2: 7"},
	}
	for _, c := range cases {
		if got := renderValue(c.v); got != c.want {
			t.Errorf("renderValue = %q, want %q", got, c.want)
		}
	}
}
