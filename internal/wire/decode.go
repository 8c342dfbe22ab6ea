// Package wire provides the small decode-side primitives the event and
// batch codecs share: reading the variable-length integers and
// length-prefixed byte strings written by pool.ByteBuffer's Append*
// helpers back out of a decompressed payload slice.
package wire

import (
	"encoding/binary"

	"github.com/lanternstack/batchstore/errs"
)

// Uvarint reads a variable-length unsigned integer from the front of b,
// returning the value and the number of bytes consumed.
func Uvarint(b []byte) (uint64, int, error) {
	v, n := binary.Uvarint(b)
	if n <= 0 {
		return 0, 0, errs.ErrTruncatedPayload
	}

	return v, n, nil
}

// Varint reads a variable-length signed integer from the front of b,
// returning the value and the number of bytes consumed.
func Varint(b []byte) (int64, int, error) {
	v, n := binary.Varint(b)
	if n <= 0 {
		return 0, 0, errs.ErrTruncatedPayload
	}

	return v, n, nil
}

// LenPrefixed reads a uvarint length prefix followed by that many bytes
// from the front of b, returning the payload slice (aliasing b) and the
// total number of bytes consumed.
func LenPrefixed(b []byte) ([]byte, int, error) {
	length, n, err := Uvarint(b)
	if err != nil {
		return nil, 0, err
	}
	end := n + int(length)
	if end > len(b) || end < n {
		return nil, 0, errs.ErrTruncatedPayload
	}

	return b[n:end], end, nil
}

// Byte reads a single byte from the front of b.
func Byte(b []byte) (byte, int, error) {
	if len(b) < 1 {
		return 0, 0, errs.ErrTruncatedPayload
	}

	return b[0], 1, nil
}
