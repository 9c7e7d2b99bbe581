package snapgene

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// reader is a sequential big-endian cursor over the input stream. It only
// moves forward and tracks the absolute offset for error reporting.
type reader struct {
	r   io.Reader
	off int64
}

// next reads the 1-byte block tag. A clean end of input surfaces as io.EOF
// so the block loop can terminate; a partial read never happens for a single
// byte.
func (rd *reader) next() (byte, error) {
	var buf [1]byte
	n, err := io.ReadFull(rd.r, buf[:])
	rd.off += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("%w at offset %d: %v", ErrTruncatedInput, rd.off, err)
	}
	return buf[0], nil
}

// bytes reads exactly n bytes. Running out of input mid-read is always a
// truncation: by the time bytes is called the block framing has promised n
// more bytes.
func (rd *reader) bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(rd.r, buf)
	rd.off += int64(read)
	if err != nil {
		return nil, fmt.Errorf("%w at offset %d: expected %d more bytes", ErrTruncatedInput, rd.off, n-read)
	}
	return buf, nil
}

func (rd *reader) u8() (byte, error) {
	b, err := rd.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (rd *reader) u16() (uint16, error) {
	b, err := rd.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (rd *reader) u32() (uint32, error) {
	b, err := rd.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
