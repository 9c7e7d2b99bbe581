package snapgene

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMagic is returned when input does not start with the SnapGene marker byte.
	ErrInvalidMagic = errors.New("not a SnapGene file: bad leading byte")
	// ErrInvalidHeader is returned when the fixed prologue has wrong length or title.
	ErrInvalidHeader = errors.New("not a SnapGene file: bad header block")
	// ErrTruncatedInput is returned when the stream ends in the middle of a block.
	ErrTruncatedInput = errors.New("truncated input")
)

// BlockError reports a mandatory block whose payload could not be decoded.
// History blocks never produce it, their failures are recovered locally.
type BlockError struct {
	Tag    byte
	Offset int64
	Err    error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("malformed block (tag %d) at offset %d: %v", e.Tag, e.Offset, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
