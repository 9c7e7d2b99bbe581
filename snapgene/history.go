package snapgene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
	"go.uber.org/zap"

	"sgc/document"
)

// decodeHistory interprets a history block payload. The payload is tried as
// plain text first; newer files store it compressed, so an undecodable
// payload goes through the decompression fallback. History is supplementary
// provenance data: any failure here drops the block and decoding continues,
// which is why this decoder returns nil instead of an error.
func decodeHistory(payload []byte, log *zap.Logger) *document.AssemblyNode {
	text := payload
	if !utf8.Valid(payload) {
		plain, err := decompress(payload)
		if err != nil {
			log.Warn("Discarding unreadable history block", zap.Error(err))
			return nil
		}
		if !utf8.Valid(plain) {
			log.Warn("Discarding history block, decompressed payload is not text")
			return nil
		}
		text = plain
	}

	node, err := decodeHistoryTree(text)
	if err != nil {
		log.Warn("Discarding malformed history block", zap.Error(err))
		return nil
	}
	return node
}

// decompress restores an LZMA-compressed history payload. Both the xz
// container and the legacy lzma-alone framing occur in the wild, so both are
// tried, in that order.
func decompress(payload []byte) ([]byte, error) {
	if r, err := xz.NewReader(bytes.NewReader(payload)); err == nil {
		if plain, err := io.ReadAll(r); err == nil {
			return plain, nil
		}
	}
	r, err := lzma.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("payload is neither xz nor lzma: %w", err)
	}
	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lzma stream is corrupt: %w", err)
	}
	return plain, nil
}

func decodeHistoryTree(text []byte) (*document.AssemblyNode, error) {
	root, err := parseMarkup(text)
	if err != nil {
		return nil, err
	}
	if root.Tag != "HistoryTree" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}
	top := root.SelectElement("Node")
	if top == nil {
		return nil, errors.New("history tree has no root node")
	}

	node := &document.AssemblyNode{
		Name:      stripNameSuffix(top.SelectAttrValue("name", "")),
		Length:    top.SelectAttrValue("seqLen", ""),
		Operation: top.SelectAttrValue("operation", ""),
	}
	for _, fe := range top.SelectElements("Node") {
		node.Fragments = append(node.Fragments, decodeFragment(fe))
	}
	return node, nil
}

func decodeFragment(fe *etree.Element) document.AssemblyFragment {
	frag := document.AssemblyFragment{
		Name:      stripNameSuffix(fe.SelectAttrValue("name", "")),
		Length:    fe.SelectAttrValue("seqLen", ""),
		Operation: fe.SelectAttrValue("operation", ""),
	}

	oligo := fe.SelectElement("Oligo")
	if oligo == nil {
		// no amplification path at all
		frag.Template = "-"
		return frag
	}
	if !truthy(oligo) {
		return frag
	}

	if ok := collectAmplifyPrimers(fe, &frag); !ok {
		frag.Template = "-"
	}
	return frag
}

// collectAmplifyPrimers walks the optional nested node of an amplified
// fragment. It reports false when any expected piece of the path is missing;
// primers gathered before the miss are kept.
func collectAmplifyPrimers(fe *etree.Element, frag *document.AssemblyFragment) bool {
	nested := fe.SelectElement("Node")
	if nested == nil {
		return false
	}
	primers := nested.SelectElement("Primers")
	if primers == nil {
		return false
	}
	for _, pe := range primers.SelectElements("Primer") {
		site := pe.SelectElement("BindingSite")
		if site == nil {
			return false
		}
		frag.AmplifyPrimers = append(frag.AmplifyPrimers, document.PrimerUse{
			Name:        stripNameSuffix(pe.SelectAttrValue("name", "")),
			MeltingTemp: site.SelectAttrValue("meltingTemperature", ""),
			Sequence:    pe.SelectAttrValue("sequence", ""),
		})
	}

	name := nested.SelectAttr("name")
	if name == nil {
		return false
	}
	frag.Template = stripNameSuffix(stripNameSuffix(name.Value))
	return true
}

// truthy mirrors how the upstream reader treats the Oligo indicator: an
// empty, bare element does not count.
func truthy(el *etree.Element) bool {
	return len(el.Attr) > 0 || len(el.ChildElements()) > 0 || strings.TrimSpace(el.Text()) != ""
}

// stripNameSuffix removes all spaces from a history node name and drops a
// trailing ".dna" or ".gb" segment. Unrecognized suffixes stay untouched.
func stripNameSuffix(name string) string {
	name = strings.ReplaceAll(name, " ", "")
	parts := strings.Split(name, ".")
	switch parts[len(parts)-1] {
	case "dna", "gb":
		return strings.Join(parts[:len(parts)-1], ".")
	}
	return name
}
