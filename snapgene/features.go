package snapgene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"sgc/document"
	"sgc/utils/htmltext"
)

// decodeFeatures interprets a features block payload: a Features root with
// one Feature element per annotation.
func decodeFeatures(payload []byte) ([]document.Feature, error) {
	root, err := parseMarkup(payload)
	if err != nil {
		return nil, err
	}
	if root.Tag != "Features" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	var out []document.Feature
	for _, fe := range root.SelectElements("Feature") {
		f, err := decodeFeature(fe)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", fe.SelectAttrValue("name", "?"), err)
		}
		out = append(out, f)
	}
	return out, nil
}

func decodeFeature(el *etree.Element) (document.Feature, error) {
	var f document.Feature

	segEls := el.SelectElements("Segment")
	if len(segEls) == 0 {
		return f, errors.New("feature has no segments")
	}

	// Segment ranges are 1-based inclusive "a-b" pairs. The feature range is
	// 0-based end-exclusive, hence the -1 on the minimum.
	minStart, maxEnd := 0, 0
	for i, se := range segEls {
		rng, err := requireAttr(se, "range")
		if err != nil {
			return f, err
		}
		a, b, err := parseRange(rng)
		if err != nil {
			return f, err
		}
		lo, hi := min(a, b), max(a, b)
		if i == 0 || lo < minStart {
			minStart = lo
		}
		if hi > maxEnd {
			maxEnd = hi
		}
		f.Segments = append(f.Segments, document.Segment{
			Start: a,
			End:   b,
			Color: se.SelectAttrValue("color", ""),
			Type:  se.SelectAttrValue("type", ""),
			Name:  se.SelectAttrValue("name", ""),
		})
	}
	f.Start = minStart - 1
	f.End = maxEnd

	strand, err := decodeStrand(el.SelectAttrValue("directionality", "0"))
	if err != nil {
		return f, err
	}
	f.Strand = strand
	f.Type = el.SelectAttrValue("type", "")
	f.Name = el.SelectAttrValue("name", "")
	f.Color = f.Segments[0].Color
	f.TextColor = "black"

	for _, q := range el.SelectElements("Q") {
		name, err := requireAttr(q, "name")
		if err != nil {
			return f, err
		}
		val, ok, err := decodeQualifierValue(q)
		if err != nil {
			return f, fmt.Errorf("qualifier %q: %w", name, err)
		}
		if !ok {
			continue
		}
		f.Qualifiers.Set(name, val)
	}

	applyQualifierDefaults(&f)
	return f, nil
}

func parseRange(rng string) (int, int, error) {
	left, right, ok := strings.Cut(rng, "-")
	if !ok {
		return 0, 0, fmt.Errorf("unparseable segment range %q", rng)
	}
	a, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, fmt.Errorf("unparseable segment range %q", rng)
	}
	b, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, fmt.Errorf("unparseable segment range %q", rng)
	}
	return a, b, nil
}

func decodeStrand(dir string) (document.Strand, error) {
	switch dir {
	case "0":
		return document.StrandNone, nil
	case "1":
		return document.StrandForward, nil
	case "2":
		return document.StrandReverse, nil
	case "3":
		return document.StrandBoth, nil
	}
	return document.StrandNone, fmt.Errorf("unknown directionality %q", dir)
}

// decodeQualifierValue inspects the V children of a qualifier and picks one
// of the three value encodings the markup uses. The shape is decided once,
// from the attribute cardinality of the first V element:
//
//   - no V, or an empty one: the qualifier is omitted
//   - several V, one attribute each: a plain value list
//   - several V, 2-3 attributes each: a keyed mapping where the first
//     attribute carries the format tag and value and the remaining
//     attribute values become keys
//   - a single V: a scalar
//
// The 3-attribute branch stores the same value under both trailing keys,
// matching the upstream format even though it looks like a quirk.
func decodeQualifierValue(q *etree.Element) (document.QualifierValue, bool, error) {
	vs := q.SelectElements("V")
	if len(vs) == 0 {
		return document.QualifierValue{}, false, nil
	}
	if len(vs) == 1 && len(vs[0].Attr) == 0 && strings.TrimSpace(vs[0].Text()) == "" {
		return document.QualifierValue{}, false, nil
	}

	if len(vs) > 1 {
		if len(vs[0].Attr) == 1 {
			list := make([]document.TypedValue, 0, len(vs))
			for _, v := range vs {
				tv, err := coerceLastAttr(v)
				if err != nil {
					return document.QualifierValue{}, false, err
				}
				list = append(list, tv)
			}
			return document.ListValue(list), true, nil
		}

		var entries []document.MapEntry
		for _, v := range vs {
			switch len(v.Attr) {
			case 1:
				tv, err := coerce(v.Attr[0].Key, v.Attr[0].Value)
				if err != nil {
					return document.QualifierValue{}, false, err
				}
				entries = append(entries, document.MapEntry{Key: v.Attr[0].Value, Value: tv})
			case 2:
				tv, err := coerce(v.Attr[0].Key, v.Attr[0].Value)
				if err != nil {
					return document.QualifierValue{}, false, err
				}
				entries = append(entries, document.MapEntry{Key: v.Attr[1].Value, Value: tv})
			case 3:
				tv, err := coerce(v.Attr[0].Key, v.Attr[0].Value)
				if err != nil {
					return document.QualifierValue{}, false, err
				}
				entries = append(entries,
					document.MapEntry{Key: v.Attr[1].Value, Value: tv},
					document.MapEntry{Key: v.Attr[2].Value, Value: tv})
			default:
				return document.QualifierValue{}, false, fmt.Errorf("value element with %d attributes", len(v.Attr))
			}
		}
		return document.QualifierValue{Shape: document.QualifierMap, Map: entries}, true, nil
	}

	// single V: coerce directly
	v := vs[0]
	if len(v.Attr) == 0 {
		tv, err := coerce("text", v.Text())
		if err != nil {
			return document.QualifierValue{}, false, err
		}
		return document.ScalarValue(tv), true, nil
	}
	tv, err := coerceLastAttr(v)
	if err != nil {
		return document.QualifierValue{}, false, err
	}
	return document.ScalarValue(tv), true, nil
}

// coerceLastAttr coerces the last attribute of a V element, the one the
// upstream decoder pops.
func coerceLastAttr(v *etree.Element) (document.TypedValue, error) {
	a := v.Attr[len(v.Attr)-1]
	return coerce(a.Key, a.Value)
}

// coerce applies the format tag carried by the attribute name: "int" parses
// the raw string as an integer, anything else is normalized as text.
func coerce(format, raw string) (document.TypedValue, error) {
	if format == "int" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return document.TypedValue{}, fmt.Errorf("bad int value %q", raw)
		}
		return document.TypedValue{Kind: document.ValueInt, Int: n}, nil
	}
	return document.TypedValue{Kind: document.ValueText, Text: htmltext.Flatten(raw)}, nil
}

// applyQualifierDefaults enforces the label/note invariants: label falls back
// to the feature name, note is always a list and always ends with the color
// of the first segment.
func applyQualifierDefaults(f *document.Feature) {
	if _, ok := f.Qualifiers.Get("label"); !ok {
		f.Qualifiers.Set("label", document.ScalarValue(document.TypedValue{Kind: document.ValueText, Text: f.Name}))
	}

	note, ok := f.Qualifiers.Get("note")
	if !ok {
		note = document.ListValue(nil)
	}
	switch note.Shape {
	case document.QualifierScalar:
		note = document.ListValue([]document.TypedValue{note.Scalar})
	case document.QualifierMap:
		vals := make([]document.TypedValue, 0, len(note.Map))
		for _, e := range note.Map {
			vals = append(vals, e.Value)
		}
		note = document.ListValue(vals)
	}
	note.List = append(note.List, document.TypedValue{Kind: document.ValueText, Text: "color: " + f.Color})
	f.Qualifiers.Set("note", note)
}
