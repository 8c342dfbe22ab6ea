// Package compress provides the compression codecs a batch.Writer streams
// its serialized record payload through and a batch.Reader decompresses
// before materializing events.
//
// # Overview
//
// A Codec combines Compressor and Decompressor. Four are built in, keyed
// by format.Method:
//
//   - Identity (format.MethodIdentity): no compression, the payload
//     passes through unchanged. Use when the data is already
//     incompressible or CPU matters more than payload size.
//   - Zstd (format.MethodZstd): best compression ratio, moderate speed.
//     Good default for batches headed to cold storage.
//   - S2 (format.MethodSnappy): Snappy-compatible, balanced speed and
//     ratio, good for hot-path ingestion.
//   - LZ4 (format.MethodLZ4): fastest decompression, moderate ratio, good
//     for read-heavy query workloads.
//
// GetCodec resolves a format.Method to one of the shared built-in Codec
// instances. Measure wraps a Codec's Compress call with timing and returns
// the resulting CompressionStats alongside the compressed bytes; Writer.Seal
// uses it to report the ratio and space savings achieved on each sealed
// batch.
//
// # Thread safety
//
// The built-in codecs hold no per-call mutable state of their own (pooled
// encoder/decoder instances are internally synchronized), so a single
// Codec value may be shared and used concurrently across goroutines; every
// batch.Writer and batch.Reader for the same method uses the same shared
// instance returned by GetCodec.
package compress
