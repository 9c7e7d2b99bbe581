package snapgene

import (
	"fmt"

	"github.com/beevik/etree"

	"sgc/document"
	"sgc/utils/htmltext"
)

// decodeNotes interprets a notes block payload: a Notes root holding
// free-form document metadata. Every string leaf is flattened through the
// rich-text normalizer since notes routinely embed markup and later end up
// inside double-quoted flat-file fields.
func decodeNotes(payload []byte) (document.Notes, error) {
	root, err := parseMarkup(payload)
	if err != nil {
		return nil, err
	}
	if root.Tag != "Notes" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}
	return decodeNoteChildren(root), nil
}

// decodeNoteChildren maps an element to an ordered note list: attributes
// first, then child elements, leaves normalized. Elements without attributes
// or children become text leaves.
func decodeNoteChildren(el *etree.Element) document.Notes {
	notes := document.Notes{}
	for _, child := range el.ChildElements() {
		notes = append(notes, decodeNote(child))
	}
	return notes
}

func decodeNote(el *etree.Element) document.Note {
	attrs := el.Attr
	children := el.ChildElements()
	if len(attrs) == 0 && len(children) == 0 {
		return document.Note{Name: el.Tag, Value: htmltext.Flatten(el.Text())}
	}

	n := document.Note{Name: el.Tag, Children: document.Notes{}}
	for _, a := range attrs {
		n.Children = append(n.Children, document.Note{Name: a.Key, Value: htmltext.Flatten(a.Value)})
	}
	for _, child := range children {
		n.Children = append(n.Children, decodeNote(child))
	}
	return n
}
