// Package common holds enums shared between the conversion pipeline and the
// command line surface.
package common

// Specification of requested output type.
// ENUM(genbank, fasta)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtGenbank:
		return ".gb"
	case OutputFmtFasta:
		return ".fasta"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
