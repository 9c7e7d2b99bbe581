// Package fasta emits the sequence of a decoded document as a FASTA record,
// the hand-off format for downstream sequence tooling.
package fasta

import (
	"fmt"
	"io"

	"sgc/document"
)

// lineWidth is the conventional FASTA wrap column.
const lineWidth = 60

// RecordID picks an identifier for the record: the assembly history root
// name when present, then the custom map label from the notes, then a fixed
// fallback.
func RecordID(doc *document.Document) string {
	if doc.History != nil && doc.History.Name != "" {
		return doc.History.Name
	}
	if label, ok := doc.Notes.Get("CustomMapLabel"); ok && label != "" {
		return label
	}
	return "sequence"
}

// Write renders doc as a single FASTA record under the given id. An empty id
// falls back to RecordID. Documents without a sequence block produce an
// error since an empty record is never useful downstream.
func Write(w io.Writer, doc *document.Document, id string) error {
	if doc.DNA == nil {
		return fmt.Errorf("document has no sequence")
	}
	if id == "" {
		id = RecordID(doc)
	}

	header := ">" + id
	if desc, ok := doc.Notes.Get("Description"); ok && desc != "" {
		header += " " + desc
	}
	if _, err := io.WriteString(w, header+"\n"); err != nil {
		return err
	}

	seq := doc.Sequence
	for i := 0; i < len(seq); i += lineWidth {
		end := min(i+lineWidth, len(seq))
		if _, err := io.WriteString(w, seq[i:end]+"\n"); err != nil {
			return err
		}
	}
	return nil
}
