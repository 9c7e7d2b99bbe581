// Package document defines the in-memory representation of a decoded
// SnapGene file. The whole tree is built in a single decode pass and is not
// mutated afterwards; emitters treat it as read-only.
package document

import "strconv"

// Topology of the sequence.
type Topology string

const (
	TopologyLinear   Topology = "linear"
	TopologyCircular Topology = "circular"
)

// Strandedness of the sequence.
type Strandedness string

const (
	StrandednessSingle Strandedness = "single"
	StrandednessDouble Strandedness = "double"
)

// Strand is feature directionality as encoded in the file.
type Strand int

const (
	StrandNone Strand = iota
	StrandForward
	StrandReverse
	StrandBoth
)

func (s Strand) String() string {
	switch s {
	case StrandForward:
		return "+"
	case StrandReverse:
		return "-"
	case StrandBoth:
		return "="
	default:
		return "."
	}
}

// SequenceProperties carries the decoded property flags of the sequence
// block. Length always equals len(Document.Sequence).
type SequenceProperties struct {
	Topology        Topology
	Strandedness    Strandedness
	DamMethylated   bool
	DcmMethylated   bool
	EcoKIMethylated bool
	Length          int
}

// ValueKind selects how a raw qualifier value string was interpreted.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueInt
)

// TypedValue is a single qualifier value with its source format tag applied.
type TypedValue struct {
	Kind ValueKind
	Text string
	Int  int
}

func (v TypedValue) String() string {
	if v.Kind == ValueInt {
		return strconv.Itoa(v.Int)
	}
	return v.Text
}

// QualifierShape discriminates the three value encodings the feature markup
// uses for qualifiers.
type QualifierShape int

const (
	QualifierScalar QualifierShape = iota
	QualifierList
	QualifierMap
)

// QualifierValue is a tagged union: exactly one of Scalar, List or Map is
// meaningful, selected by Shape.
type QualifierValue struct {
	Shape  QualifierShape
	Scalar TypedValue
	List   []TypedValue
	Map    []MapEntry
}

// MapEntry is one key of a map-shaped qualifier. Kept as a slice to preserve
// source order for stable emission.
type MapEntry struct {
	Key   string
	Value TypedValue
}

// ScalarValue builds a scalar-shaped qualifier value.
func ScalarValue(v TypedValue) QualifierValue {
	return QualifierValue{Shape: QualifierScalar, Scalar: v}
}

// ListValue builds a list-shaped qualifier value.
func ListValue(vs []TypedValue) QualifierValue {
	return QualifierValue{Shape: QualifierList, List: vs}
}

// Qualifier is one named feature qualifier.
type Qualifier struct {
	Name  string
	Value QualifierValue
}

// Qualifiers preserves qualifier insertion order.
type Qualifiers []Qualifier

// Get returns the value stored under name.
func (qs Qualifiers) Get(name string) (QualifierValue, bool) {
	for i := range qs {
		if qs[i].Name == name {
			return qs[i].Value, true
		}
	}
	return QualifierValue{}, false
}

// Set replaces the value stored under name or appends a new qualifier.
func (qs *Qualifiers) Set(name string, v QualifierValue) {
	for i := range *qs {
		if (*qs)[i].Name == name {
			(*qs)[i].Value = v
			return
		}
	}
	*qs = append(*qs, Qualifier{Name: name, Value: v})
}

// Segment is one contiguous sub-range of a feature, 1-based inclusive as
// encoded in the file. Start/End keep the order they were written in.
type Segment struct {
	Start int
	End   int
	Color string
	Type  string
	Name  string
}

// Feature is a single annotation. Start is 0-based, End is exclusive.
// Start > End is possible for wrap-around features on circular sequences.
type Feature struct {
	Start      int
	End        int
	Strand     Strand
	Type       string
	Name       string
	Color      string
	TextColor  string
	Segments   []Segment
	Qualifiers Qualifiers
}

// StandardSegments returns the segments participating in the location of the
// feature, skipping marker kinds.
func (f *Feature) StandardSegments() []Segment {
	var out []Segment
	for _, s := range f.Segments {
		if s.Type == "standard" {
			out = append(out, s)
		}
	}
	return out
}

// Primer is one entry of the primer list block.
type Primer struct {
	Name        string
	Sequence    string
	Description string // empty when the source carries no description
}

// Note is one entry of the free-form notes block. Leaves carry Value, nested
// elements carry Children. Order follows the source markup.
type Note struct {
	Name     string
	Value    string
	Children Notes
}

// Notes preserves note insertion order.
type Notes []Note

// Get returns the leaf value stored under name.
func (ns Notes) Get(name string) (string, bool) {
	for i := range ns {
		if ns[i].Name == name && ns[i].Children == nil {
			return ns[i].Value, true
		}
	}
	return "", false
}

// Lookup returns the note stored under name, leaf or not.
func (ns Notes) Lookup(name string) (Note, bool) {
	for i := range ns {
		if ns[i].Name == name {
			return ns[i], true
		}
	}
	return Note{}, false
}

// PrimerUse is an amplification primer reference inside the assembly history.
type PrimerUse struct {
	Name        string
	MeltingTemp string
	Sequence    string
}

// AssemblyFragment is one direct child of the assembly history root.
type AssemblyFragment struct {
	Name           string
	Length         string
	Operation      string // empty when the source carries no operation
	Template       string // "-" when the amplification path is absent or incomplete
	AmplifyPrimers []PrimerUse
}

// AssemblyNode is the root of the assembly history tree.
type AssemblyNode struct {
	Name      string
	Length    string
	Operation string
	Fragments []AssemblyFragment
}

// Document is the root of a fully decoded SnapGene file.
type Document struct {
	IsDNA         bool
	ExportVersion uint16
	ImportVersion uint16

	DNA      *SequenceProperties // nil when the file carries no sequence block
	Sequence string              // present iff DNA is present, len == DNA.Length

	Features []Feature
	Primers  []Primer // nil when the file carries no primer block
	Notes    Notes    // nil when the file carries no notes block
	History  *AssemblyNode
}
