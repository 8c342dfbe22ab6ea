package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor is the Snappy-compatible codec, chosen for batches on the
// hot ingest path where compression speed dominates and a modest ratio is
// acceptable.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes a sealed batch's record-stream bytes with S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress restores a batch's record-stream bytes from their S2-encoded
// form. s2.DecodedLen is checked against MaxDecompressedPayload before
// s2.Decode allocates its output buffer, so a frame header lying about its
// decoded size is rejected before it can exhaust memory.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > MaxDecompressedPayload {
		return nil, fmt.Errorf("s2: decoded size %d exceeds %d byte limit", n, MaxDecompressedPayload)
	}

	return s2.Decode(nil, data)
}
