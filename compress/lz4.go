package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor trades compression ratio for decompression speed, making it
// the preferred codec for batches a Reader expects to open repeatedly
// during query-time selective reads rather than once on ingest.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses a sealed batch's record-stream bytes. A pooled
// lz4.Compressor is used since Writer.Seal calls this on every batch
// boundary and the compressor carries reusable internal state.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dstSize := lz4.CompressBlockBound(len(data))
	dst := make([]byte, dstSize)

	// Get compressor from pool
	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses a batch payload that was compressed with
// Compress. LZ4 blocks carry no decompressed-size header, so the buffer
// is grown adaptively:
//  1. Start with a buffer 4x the compressed size, the typical expansion
//     ratio for a record stream of small telemetry events.
//  2. On ErrInvalidSourceShortBuffer, double the buffer and retry.
//  3. Give up once the buffer would exceed MaxDecompressedPayload, since a
//     legitimate sealed batch never decompresses past that bound and a
//     payload that does is corrupted or adversarial.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4

	for bufSize <= MaxDecompressedPayload {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < MaxDecompressedPayload {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
