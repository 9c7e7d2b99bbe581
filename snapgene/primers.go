package snapgene

import (
	"fmt"

	"sgc/document"
)

// decodePrimers interprets a primer block payload: a Primers root with one
// Primer element per entry. Description is optional, name and sequence are
// not.
func decodePrimers(payload []byte) ([]document.Primer, error) {
	root, err := parseMarkup(payload)
	if err != nil {
		return nil, err
	}
	if root.Tag != "Primers" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	primers := []document.Primer{}
	for _, pe := range root.SelectElements("Primer") {
		name, err := requireAttr(pe, "name")
		if err != nil {
			return nil, err
		}
		seq, err := requireAttr(pe, "sequence")
		if err != nil {
			return nil, fmt.Errorf("primer %q: %w", name, err)
		}
		primers = append(primers, document.Primer{
			Name:        name,
			Sequence:    seq,
			Description: pe.SelectAttrValue("description", ""),
		})
	}
	return primers, nil
}
