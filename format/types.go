// Package format defines the compression method tag of a sealed batch,
// shared by the compress and batch packages. The wire tag of an event's
// data kind is event.Kind, in the event package.
package format

// Method identifies the compression codec used for a batch's payload.
type Method uint8

const (
	// MethodIdentity stores the payload uncompressed.
	MethodIdentity Method = 0x1
	// MethodZstd compresses the payload with Zstandard.
	MethodZstd Method = 0x2
	// MethodSnappy compresses the payload with the S2/Snappy family codec.
	MethodSnappy Method = 0x3
	// MethodLZ4 compresses the payload with LZ4.
	MethodLZ4 Method = 0x4
)

func (m Method) String() string {
	switch m {
	case MethodIdentity:
		return "None"
	case MethodZstd:
		return "Zstd"
	case MethodSnappy:
		return "S2"
	case MethodLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the known compression methods.
func (m Method) Valid() bool {
	switch m {
	case MethodIdentity, MethodZstd, MethodSnappy, MethodLZ4:
		return true
	default:
		return false
	}
}
