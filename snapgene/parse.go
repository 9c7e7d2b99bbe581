// Package snapgene decodes the SnapGene .dna binary container into a
// document.Document. The format is a fixed prologue followed by a TLV block
// stream; each known block type has its own sub-decoder, unknown types are
// skipped. Decoding is a single forward pass, the result is owned by the
// caller.
package snapgene

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"sgc/document"
)

// Block type tags. Files contain more tags than listed here (alignments,
// traces, custom colors); those carry no data we reproduce and are skipped.
const (
	tagSequence byte = 0
	tagPrimers  byte = 5
	tagNotes    byte = 6
	tagHistory  byte = 7
	tagFeatures byte = 10
)

const (
	fileMagic    = 0x09
	headerLength = 14
	headerTitle  = "SnapGene"
)

// Decoder decodes SnapGene streams. The zero value is not usable, construct
// with NewDecoder.
type Decoder struct {
	log     *zap.Logger
	capture func(tag byte, payload []byte)
}

// Option adjusts decoder behavior.
type Option func(*Decoder)

// WithBlockCapture registers a hook receiving every raw block payload before
// it is decoded. Used to stash block contents in debug reports.
func WithBlockCapture(fn func(tag byte, payload []byte)) Option {
	return func(d *Decoder) {
		d.capture = fn
	}
}

// NewDecoder creates a decoder logging through log.
func NewDecoder(log *zap.Logger, opts ...Option) *Decoder {
	d := &Decoder{log: log}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Parse decodes a complete SnapGene stream.
func Parse(r io.Reader, log *zap.Logger) (*document.Document, error) {
	return NewDecoder(log).Parse(r)
}

// Parse reads the stream to its end and returns the decoded document. Any
// error other than a malformed history block aborts the decode; no partial
// document is ever returned.
func (d *Decoder) Parse(r io.Reader) (*document.Document, error) {
	rd := &reader{r: r}

	doc, err := d.parseHeader(rd)
	if err != nil {
		return nil, err
	}

	for {
		tag, err := rd.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		tagOffset := rd.off - 1

		size, err := rd.u32()
		if err != nil {
			return nil, err
		}
		payload, err := rd.bytes(int(size))
		if err != nil {
			return nil, err
		}
		if d.capture != nil {
			d.capture(tag, payload)
		}

		if err := d.decodeBlock(doc, tag, payload); err != nil {
			return nil, &BlockError{Tag: tag, Offset: tagOffset, Err: err}
		}
	}

	return doc, nil
}

// parseHeader validates the fixed prologue: marker byte, length, title and
// the three version fields.
func (d *Decoder) parseHeader(rd *reader) (*document.Document, error) {
	magic, err := rd.u8()
	if err != nil {
		return nil, err
	}
	if magic != fileMagic {
		return nil, fmt.Errorf("%w: 0x%02x", ErrInvalidMagic, magic)
	}

	length, err := rd.u32()
	if err != nil {
		return nil, err
	}
	title, err := rd.bytes(8)
	if err != nil {
		return nil, err
	}
	if length != headerLength || string(title) != headerTitle {
		return nil, fmt.Errorf("%w: length %d, title %q", ErrInvalidHeader, length, title)
	}

	doc := &document.Document{}
	isDNA, err := rd.u16()
	if err != nil {
		return nil, err
	}
	doc.IsDNA = isDNA != 0
	if doc.ExportVersion, err = rd.u16(); err != nil {
		return nil, err
	}
	if doc.ImportVersion, err = rd.u16(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Decoder) decodeBlock(doc *document.Document, tag byte, payload []byte) error {
	switch tag {
	case tagSequence:
		props, seq, err := decodeSequence(payload)
		if err != nil {
			return err
		}
		doc.DNA, doc.Sequence = props, seq

	case tagPrimers:
		primers, err := decodePrimers(payload)
		if err != nil {
			return err
		}
		doc.Primers = primers

	case tagNotes:
		notes, err := decodeNotes(payload)
		if err != nil {
			return err
		}
		doc.Notes = notes

	case tagHistory:
		// the one non-fatal block: failures are logged and dropped inside
		doc.History = decodeHistory(payload, d.log)

	case tagFeatures:
		features, err := decodeFeatures(payload)
		if err != nil {
			return err
		}
		doc.Features = append(doc.Features, features...)

	default:
		d.log.Debug("Skipping unsupported block", zap.Uint8("tag", tag), zap.Int("size", len(payload)))
	}
	return nil
}
