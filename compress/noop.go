package compress

// NoOpCompressor is format.MethodIdentity: the record-stream bytes a
// Writer produces pass through unchanged. Pick it when a batch's payload
// is already incompressible (pre-compressed event fields, high-entropy
// hashes) or when ingest CPU budget outweighs the storage saved by a real
// codec.
//
// Compress and Decompress both return their input slice as-is; the
// returned slice aliases the caller's backing array, so a caller must not
// mutate the bytes it handed in while still holding the result.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op identity codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
