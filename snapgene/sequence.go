package snapgene

import (
	"errors"

	"sgc/document"
)

// Sequence block layout: one property flag byte followed by the sequence
// text. The block length therefore exceeds the sequence length by one.
const (
	flagCircular    = 0x01
	flagDouble      = 0x02
	flagDamMethyl   = 0x04
	flagDcmMethyl   = 0x08
	flagEcoKIMethyl = 0x10
)

func decodeSequence(payload []byte) (*document.SequenceProperties, string, error) {
	if len(payload) < 1 {
		return nil, "", errors.New("sequence block has no property byte")
	}

	flags := payload[0]
	props := &document.SequenceProperties{
		Topology:        document.TopologyLinear,
		Strandedness:    document.StrandednessSingle,
		DamMethylated:   flags&flagDamMethyl != 0,
		DcmMethylated:   flags&flagDcmMethyl != 0,
		EcoKIMethylated: flags&flagEcoKIMethyl != 0,
		Length:          len(payload) - 1,
	}
	if flags&flagCircular != 0 {
		props.Topology = document.TopologyCircular
	}
	if flags&flagDouble != 0 {
		props.Strandedness = document.StrandednessDouble
	}

	return props, string(payload[1:]), nil
}
