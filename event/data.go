package event

import (
	"net"
	"reflect"
	"time"
)

// Data is a tagged variant over the primitive and container values a Type
// can describe. The zero Data is not meaningful on its own; construct one
// with the typed constructors below.
//
// Serialization of Data is recursive (see EncodeData/DecodeData) and,
// beyond round-tripping through those functions, is the responsibility of
// the caller: the batch engine only requires that Data values compare
// equal after a write/read cycle.
type Data struct {
	Kind  Kind
	Value any
}

// Subnet pairs an address with a prefix length.
type Subnet struct {
	Addr net.IP
	Bits int
}

// Port pairs a transport-layer port number with a protocol name
// ("tcp", "udp", "icmp", or "" if unknown).
type Port struct {
	Number   uint16
	Protocol string
}

// MapEntry is one key/value pair of a KindMap Data value.
type MapEntry struct {
	Key   Data
	Value Data
}

func BoolData(v bool) Data         { return Data{Kind: KindBool, Value: v} }
func Int64Data(v int64) Data       { return Data{Kind: KindInt64, Value: v} }
func Uint64Data(v uint64) Data     { return Data{Kind: KindUint64, Value: v} }
func Float64Data(v float64) Data   { return Data{Kind: KindFloat64, Value: v} }
func DurationData(v time.Duration) Data { return Data{Kind: KindDuration, Value: v} }
func TimeData(v time.Time) Data    { return Data{Kind: KindTime, Value: v.UTC()} }
func StringData(v string) Data     { return Data{Kind: KindString, Value: v} }
func BytesData(v []byte) Data      { return Data{Kind: KindBytes, Value: v} }
func AddressData(v net.IP) Data    { return Data{Kind: KindAddress, Value: v} }
func SubnetData(v Subnet) Data     { return Data{Kind: KindSubnet, Value: v} }
func PortData(v Port) Data         { return Data{Kind: KindPort, Value: v} }
func EnumData(v string) Data       { return Data{Kind: KindEnum, Value: v} }
func RecordData(fields ...Data) Data { return Data{Kind: KindRecord, Value: fields} }
func VectorData(elems ...Data) Data  { return Data{Kind: KindVector, Value: elems} }
func SetData(elems ...Data) Data     { return Data{Kind: KindSet, Value: elems} }
func MapData(entries ...MapEntry) Data { return Data{Kind: KindMap, Value: entries} }

// Equal reports whether d and other hold the same kind and value.
func (d Data) Equal(other Data) bool {
	if d.Kind != other.Kind {
		return false
	}

	switch d.Kind {
	case KindAddress:
		a, _ := d.Value.(net.IP)
		b, _ := other.Value.(net.IP)

		return a.Equal(b)
	case KindSubnet:
		a, _ := d.Value.(Subnet)
		b, _ := other.Value.(Subnet)

		return a.Bits == b.Bits && a.Addr.Equal(b.Addr)
	case KindTime:
		a, _ := d.Value.(time.Time)
		b, _ := other.Value.(time.Time)

		return a.Equal(b)
	case KindRecord, KindVector, KindSet:
		a, _ := d.Value.([]Data)
		b, _ := other.Value.([]Data)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}

		return true
	case KindMap:
		a, _ := d.Value.([]MapEntry)
		b, _ := other.Value.([]MapEntry)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Key.Equal(b[i].Key) || !a[i].Value.Equal(b[i].Value) {
				return false
			}
		}

		return true
	default:
		return reflect.DeepEqual(d.Value, other.Value)
	}
}
