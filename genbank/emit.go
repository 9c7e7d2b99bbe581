// Package genbank renders a decoded document as a GenBank-style flat file.
// It is a pure transformation over document.Document with no knowledge of
// the binary container; the emitted column and line conventions follow what
// downstream flat-file consumers expect.
package genbank

import (
	"fmt"
	"io"
	"strings"

	"sgc/document"
)

const (
	// continuation indent for DEFINITION/COMMENT and reference fields
	contIndent = "            "
	// indent of feature qualifier lines
	qualIndent = "                     "
	// indent of synthesized multi-segment note continuation lines
	segIndent = "                        "
)

// String renders doc as flat-file text.
func String(doc *document.Document) string {
	var b strings.Builder
	emit(&b, doc)
	return b.String()
}

// Write renders doc as flat-file text into w.
func Write(w io.Writer, doc *document.Document) error {
	_, err := io.WriteString(w, String(doc))
	return err
}

func emit(b *strings.Builder, doc *document.Document) {
	length := 0
	topology := document.TopologyLinear
	if doc.DNA != nil {
		length = doc.DNA.Length
		topology = doc.DNA.Topology
	}

	// The date is fixed boilerplate: the flat-file syntax requires one and
	// the container does not record it.
	fmt.Fprintf(b, "LOCUS       Exported              %6d bp ds-DNA     %8s SYN 15-APR-2012\n", length, topology)
	fmt.Fprintf(b, "DEFINITION  %s\n", reindent(noteOrDot(doc.Notes, "Description")))
	b.WriteString("ACCESSION   .\n")
	b.WriteString("VERSION     .\n")
	fmt.Fprintf(b, "KEYWORDS    %s\n", noteOrDot(doc.Notes, "CustomMapLabel"))
	b.WriteString("SOURCE      .\n")
	b.WriteString("  ORGANISM  .\n")

	emitReferences(b, doc, length)

	comment := strings.ReplaceAll(noteOrDot(doc.Notes, "Comments"), `\`, "")
	fmt.Fprintf(b, "COMMENT     %s\n", reindent(comment))

	b.WriteString("FEATURES             Location/Qualifiers\n")
	for i := range doc.Features {
		emitFeature(b, &doc.Features[i])
	}

	emitOrigin(b, doc.Sequence)
}

// emitReferences writes one block per reference found in the notes, then a
// synthetic self-reference recording the export itself.
func emitReferences(b *strings.Builder, doc *document.Document, length int) {
	count := 0
	if refs, ok := doc.Notes.Lookup("References"); ok {
		for _, ref := range refs.Children {
			count++
			fmt.Fprintf(b, "REFERENCE   %d  (bases 1 to %d )\n", count, length)
			for _, field := range ref.Children {
				if field.Children != nil {
					continue
				}
				fmt.Fprintf(b, "  %s   %s\n", strings.ToUpper(field.Name), field.Value)
			}
		}
	}

	count++
	fmt.Fprintf(b, "REFERENCE   %d  (bases 1 to %d )\n", count, length)
	b.WriteString("  AUTHORS   sgc\n")
	b.WriteString("  TITLE     Direct Submission\n")
	b.WriteString("  JOURNAL   Exported from a SnapGene container by sgc\n")
}

func emitFeature(b *strings.Builder, f *document.Feature) {
	segments := f.StandardSegments()

	var location string
	if len(segments) > 1 {
		ranges := make([]string, 0, len(segments))
		for _, s := range segments {
			ranges = append(ranges, fmt.Sprintf("%d..%d", s.Start, s.End))
		}
		location = "join(" + strings.Join(ranges, ",") + ")"
	} else {
		location = fmt.Sprintf("%d..%d", f.Start, f.End)
	}
	if f.Strand == document.StrandReverse {
		location = "complement(" + location + ")"
	}
	fmt.Fprintf(b, "     %s %s\n", pad(f.Type, 15), location)

	// The feature name leads the qualifier list; the label qualifier is
	// suppressed below since it repeats it.
	fmt.Fprintf(b, "%s/note=\"%s\"\n", qualIndent, f.Name)

	for _, q := range f.Qualifiers {
		switch q.Name {
		case "label":
			// already emitted via the feature name
		case "note":
			for _, v := range q.Value.List {
				text := v.String()
				if strings.HasPrefix(text, "color:") {
					// the synthesized color note is folded into the trailer below
					continue
				}
				fmt.Fprintf(b, "%s/note=\"%s\"\n", qualIndent, text)
			}
		default:
			fmt.Fprintf(b, "%s/%s=\"%s\"\n", qualIndent, q.Name, renderValue(q.Value))
		}
	}

	if len(segments) > 1 {
		fmt.Fprintf(b, "%s/note=\"This feature has %d segments:", qualIndent, len(segments))
		for i, s := range segments {
			name := s.Name
			if name != "" {
				name = " / " + name
			}
			fmt.Fprintf(b, "\n%s%d:  %d .. %d / %s%s", segIndent, i, s.Start, s.End, s.Color, name)
		}
		b.WriteString("\"\n")
	} else {
		fmt.Fprintf(b, "%s/note=\"color: %s", qualIndent, f.Color)
		switch f.Strand {
		case document.StrandReverse:
			b.WriteString("; direction: LEFT\"\n")
		case document.StrandForward:
			b.WriteString("; direction: RIGHT\"\n")
		default:
			b.WriteString("\"\n")
		}
	}
}

// emitOrigin renders the sequence as rows of 60 bases: a right-justified
// position counter followed by six space-separated 10-character chunks.
func emitOrigin(b *strings.Builder, seq string) {
	b.WriteString("ORIGIN\n")
	for i := 0; i < len(seq); i += 60 {
		fmt.Fprintf(b, "%9d", i)
		for j := i; j < min(i+60, len(seq)); j += 10 {
			b.WriteByte(' ')
			b.WriteString(seq[j:min(j+10, len(seq))])
		}
		b.WriteByte('\n')
	}
	b.WriteString("//\n")
}

// noteOrDot returns the named note leaf or the flat-file placeholder.
func noteOrDot(notes document.Notes, name string) string {
	if v, ok := notes.Get(name); ok {
		return v
	}
	return "."
}

// reindent keeps embedded newlines but re-aligns continuation lines under
// the field body column. No reflow happens here.
func reindent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n"+contIndent)
}

func renderValue(v document.QualifierValue) string {
	switch v.Shape {
	case document.QualifierList:
		parts := make([]string, 0, len(v.List))
		for _, tv := range v.List {
			parts = append(parts, tv.String())
		}
		return strings.Join(parts, "; ")
	case document.QualifierMap:
		parts := make([]string, 0, len(v.Map))
		for _, e := range v.Map {
			parts = append(parts, e.Key+": "+e.Value.String())
		}
		return strings.Join(parts, "; ")
	default:
		return v.Scalar.String()
	}
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
