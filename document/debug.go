package document

import (
	"fmt"

	"sgc/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the decoded document. Sequence text is
// truncated to keep the output compact. It exists solely for manual
// inspection and debug reports.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	return treeWriter{debug.NewTreeWriter()}.document(d).String()
}

func (tw treeWriter) document(d *Document) treeWriter {
	tw.Line(0, "Document isDNA=%t export=%d import=%d", d.IsDNA, d.ExportVersion, d.ImportVersion)
	if d.DNA != nil {
		tw.Line(1, "DNA topology=%s strandedness=%s dam=%t dcm=%t ecoKI=%t length=%d",
			d.DNA.Topology, d.DNA.Strandedness, d.DNA.DamMethylated, d.DNA.DcmMethylated, d.DNA.EcoKIMethylated, d.DNA.Length)
		tw.TextBlock(1, "Sequence", debug.Clip(d.Sequence, 60))
	}
	for i := range d.Features {
		tw.feature(1, i, &d.Features[i])
	}
	for i, p := range d.Primers {
		tw.Line(1, "Primer[%d] name=%q sequence=%q description=%q", i, p.Name, p.Sequence, p.Description)
	}
	if d.Notes != nil {
		tw.Line(1, "Notes: %d", len(d.Notes))
		tw.notes(2, d.Notes)
	}
	if d.History != nil {
		tw.history(1, d.History)
	}
	return tw
}

func (tw treeWriter) feature(depth, idx int, f *Feature) {
	tw.Line(depth, "Feature[%d] %q type=%q strand=%s range=%d..%d color=%s", idx, f.Name, f.Type, f.Strand, f.Start, f.End, f.Color)
	for i, s := range f.Segments {
		tw.Line(depth+1, "Segment[%d] %d-%d type=%q color=%s name=%q", i, s.Start, s.End, s.Type, s.Color, s.Name)
	}
	for _, q := range f.Qualifiers {
		switch q.Value.Shape {
		case QualifierScalar:
			tw.TextBlock(depth+1, "Q "+q.Name, q.Value.Scalar.String())
		case QualifierList:
			tw.Line(depth+1, "Q %s: %d values", q.Name, len(q.Value.List))
			for i, v := range q.Value.List {
				tw.TextBlock(depth+2, fmt.Sprintf("[%d]", i), v.String())
			}
		case QualifierMap:
			tw.Line(depth+1, "Q %s: %d keys", q.Name, len(q.Value.Map))
			for _, e := range q.Value.Map {
				tw.TextBlock(depth+2, e.Key, e.Value.String())
			}
		}
	}
}

func (tw treeWriter) notes(depth int, ns Notes) {
	for _, n := range ns {
		if n.Children != nil {
			tw.Line(depth, "%s:", n.Name)
			tw.notes(depth+1, n.Children)
			continue
		}
		tw.TextBlock(depth, n.Name, n.Value)
	}
}

func (tw treeWriter) history(depth int, h *AssemblyNode) {
	tw.Line(depth, "History %q length=%s operation=%q fragments=%d", h.Name, h.Length, h.Operation, len(h.Fragments))
	for i, f := range h.Fragments {
		tw.Line(depth+1, "Fragment[%d] %q length=%s operation=%q template=%q", i, f.Name, f.Length, f.Operation, f.Template)
		for j, p := range f.AmplifyPrimers {
			tw.Line(depth+2, "Primer[%d] %q tm=%s sequence=%q", j, p.Name, p.MeltingTemp, p.Sequence)
		}
	}
}
