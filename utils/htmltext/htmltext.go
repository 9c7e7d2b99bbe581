// Package htmltext flattens rich-text fragments embedded in SnapGene markup
// into plain single-line strings suitable for double-quoted flat-file fields.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Flatten strips any markup from s and normalizes the result: entities are
// resolved, tags are dropped (block boundaries become spaces), whitespace
// runs collapse to single spaces and double quotes are replaced with single
// quotes so the value can be embedded in a quoted field.
func Flatten(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return normalize(s)
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			// tokenizer reports io.EOF as an error token
			return normalize(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// tag boundaries never glue adjacent words together
			b.WriteByte(' ')
		}
	}
}

func normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, `"`, "'")
}
