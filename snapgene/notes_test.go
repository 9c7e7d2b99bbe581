package snapgene

import (
	"testing"
)

func TestDecodeNotes(t *testing.T) {
	payload := []byte(`
		<Notes>
			<Description>&lt;html&gt;&lt;body&gt;An example plasmid&lt;/body&gt;&lt;/html&gt;</Description>
			<CustomMapLabel>pExample</CustomMapLabel>
			<References>
				<Reference journal="Nature" title="A title" authors="Doe J"/>
			</References>
		</Notes>`)

	notes, err := decodeNotes(payload)
	if err != nil {
		t.Fatalf("decodeNotes failed: %v", err)
	}

	desc, ok := notes.Get("Description")
	if !ok || desc != "An example plasmid" {
		t.Errorf("description = %q, %v", desc, ok)
	}
	label, ok := notes.Get("CustomMapLabel")
	if !ok || label != "pExample" {
		t.Errorf("label = %q, %v", label, ok)
	}

	refs, ok := notes.Lookup("References")
	if !ok || len(refs.Children) != 1 {
		t.Fatalf("references = %+v, %v", refs, ok)
	}
	ref := refs.Children[0]
	if journal, ok := ref.Children.Get("journal"); !ok || journal != "Nature" {
		t.Errorf("journal = %q, %v", journal, ok)
	}
	if authors, ok := ref.Children.Get("authors"); !ok || authors != "Doe J" {
		t.Errorf("authors = %q, %v", authors, ok)
	}
}

func TestDecodeNotesBadMarkup(t *testing.T) {
	if _, err := decodeNotes([]byte("<Notes>")); err == nil {
		t.Error("expected error for unterminated markup")
	}
	if _, err := decodeNotes([]byte("<Other/>")); err == nil {
		t.Error("expected error for wrong root element")
	}
}

func TestDecodePrimers(t *testing.T) {
	payload := []byte(`
		<Primers>
			<Primer name="T7" sequence="TAATACGACTCACTATAGGG" description="T7 promoter primer"/>
			<Primer name="M13fwd" sequence="GTAAAACGACGGCCAGT"/>
		</Primers>`)

	primers, err := decodePrimers(payload)
	if err != nil {
		t.Fatalf("decodePrimers failed: %v", err)
	}
	if len(primers) != 2 {
		t.Fatalf("primers = %d, want 2", len(primers))
	}
	if primers[0].Name != "T7" || primers[0].Description != "T7 promoter primer" {
		t.Errorf("primer 0 = %+v", primers[0])
	}
	if primers[1].Sequence != "GTAAAACGACGGCCAGT" || primers[1].Description != "" {
		t.Errorf("primer 1 = %+v", primers[1])
	}
}

func TestDecodePrimersMissingAttributes(t *testing.T) {
	if _, err := decodePrimers([]byte(`<Primers><Primer sequence="ACGT"/></Primers>`)); err == nil {
		t.Error("expected error for primer without name")
	}
	if _, err := decodePrimers([]byte(`<Primers><Primer name="p"/></Primers>`)); err == nil {
		t.Error("expected error for primer without sequence")
	}
}
