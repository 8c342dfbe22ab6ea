package compress

import (
	"fmt"
	"time"

	"github.com/lanternstack/batchstore/errs"
	"github.com/lanternstack/batchstore/format"
)

// Compressor provides high-performance compression and decompression for batch event payloads.
//
// The interface is optimized for batchstore's record-stream payloads, where:
//   - A payload is a concatenation of self-delimiting event records
//   - Repeated type tags and timestamps compress well within a batch
//   - Payload sizes: usually a few KB, growing with the number of events
//     written before Seal
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The input data typically represents a complete serialized batch
	// record stream that has already been encoded by a Writer.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; NoOpCompressor returns the
	//     input slice itself, the other built-in codecs allocate a new one
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor provides high-performance decompression for compressed batch payloads.
//
// This interface mirrors the Compressor interface but focuses on the decompression
// operation. Separate interfaces allow for asymmetric implementations where
// compression and decompression may have different performance characteristics
// or resource requirements.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	originalData, err := decompressor.Decompress(compressedPayload)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: Decompressor implementations must be safe for concurrent use
// or document their thread safety requirements clearly.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input data should be previously compressed using the same compression
	// algorithm. The decompressor validates the data format and returns an error
	// if the data is corrupted or uses an incompatible format.
	//
	// Performance expectations:
	//   - Decompression is typically 2-5x faster than compression
	//   - Memory overhead: 1-2x output size for decompression buffers
	//   - Output size: read from the compressed frame where the format stores
	//     it (Zstd, S2); LZ4 blocks carry no size, so its buffer is grown
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with incompatible algorithm
	//   - Returns error if decompression buffer allocation fails
	//
	// Memory management:
	//   - Returned slice is owned by the caller; NoOpCompressor returns the
	//     input slice itself, the other built-in codecs allocate a new one
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
//
// This interface is useful for implementations that can handle both operations
// efficiently with shared internal state or optimizations.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats provides detailed information about compression operations.
//
// This is useful for monitoring, profiling, and optimization of compression
// performance across batch payload workloads.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.Method

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// Ratio is the ratio of compressed size to original size (< 1.0 for compression)
	Ratio float64

	// CompressionTimeNs is the time taken to compress the data, in nanoseconds
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data, in
	// nanoseconds (if applicable)
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Values equal to 1.0 indicate no compression benefit.
// Values greater than 1.0 indicate compression overhead (rare for batch payloads).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage, computed as
// (1 - CompressionRatio()) * 100.
//
// Higher values indicate better compression. The value is negative when the
// compressed output is larger than the input, and 100 when OriginalSize is
// zero (CompressionRatio then reports 0).
//
// Returns:
//   - float64: Space savings percentage (at most 100)
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// MaxDecompressedPayload bounds how large a single Decompress call is
// allowed to inflate data to. Batches often arrive from untrusted agents
// over the wire, and a corrupted or adversarial header claiming an
// enormous decompressed size must not be allowed to exhaust memory before
// the dictionary or record-stream decoder ever sees the bytes.
const MaxDecompressedPayload = 128 * 1024 * 1024 // 128MiB

// Measure compresses data with codec and returns both the compressed bytes and
// a populated CompressionStats describing the result. Writer.Seal uses this to
// report per-batch compression ratios instead of calling Compress directly.
func Measure(codec Codec, method format.Method, data []byte) ([]byte, CompressionStats, error) {
	start := time.Now()
	compressed, err := codec.Compress(data)
	elapsed := time.Since(start)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	stats := CompressionStats{
		Algorithm:         method,
		OriginalSize:      int64(len(data)),
		CompressedSize:    int64(len(compressed)),
		CompressionTimeNs: elapsed.Nanoseconds(),
	}
	stats.Ratio = stats.CompressionRatio()

	return compressed, stats, nil
}

var builtinCodecs = map[format.Method]Codec{
	format.MethodIdentity: NewNoOpCompressor(),
	format.MethodZstd:     NewZstdCompressor(),
	format.MethodSnappy:   NewS2Compressor(),
	format.MethodLZ4:      NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.Method) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedMethod, compressionType)
}
