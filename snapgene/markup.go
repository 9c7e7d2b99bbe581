package snapgene

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// Several block payloads embed XML. parseMarkup is the single seam between
// the binary layer and the markup library; sub-decoders only ever see the
// root element.
func parseMarkup(payload []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(payload); err != nil {
		return nil, fmt.Errorf("unreadable markup: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("markup has no root element")
	}
	return root, nil
}

// requireAttr returns the attribute value or an error naming the element.
func requireAttr(el *etree.Element, name string) (string, error) {
	if a := el.SelectAttr(name); a != nil {
		return a.Value, nil
	}
	return "", fmt.Errorf("element %s is missing required attribute %q", el.Tag, name)
}
