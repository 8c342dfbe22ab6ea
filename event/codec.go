package event

import (
	"math"
	"net"
	"time"

	"github.com/lanternstack/batchstore/endian"
	"github.com/lanternstack/batchstore/errs"
	"github.com/lanternstack/batchstore/internal/pool"
	"github.com/lanternstack/batchstore/internal/wire"
)

// wireEndian is the byte order used for the one fixed-width field in the
// data grammar (KindFloat64). Every other value is varint- or
// length-prefixed and so byte-order free.
var wireEndian = endian.GetLittleEndianEngine()

// EncodeData appends d's value to buf. typ must be the Type that produced
// d (or an equal one); it is consulted for container shapes (field count
// and types, element type, enum value set) so that the wire form never
// repeats schema information already captured by the type dictionary.
func EncodeData(buf *pool.ByteBuffer, typ Type, d Data) error {
	switch typ.Kind {
	case KindBool:
		v, _ := d.Value.(bool)
		if v {
			buf.B = append(buf.B, 1)
		} else {
			buf.B = append(buf.B, 0)
		}

	case KindInt64:
		v, _ := d.Value.(int64)
		buf.AppendVarint(v)

	case KindUint64:
		v, _ := d.Value.(uint64)
		buf.AppendUvarint(v)

	case KindFloat64:
		v, _ := d.Value.(float64)
		buf.B = wireEndian.AppendUint64(buf.B, math.Float64bits(v))

	case KindDuration:
		v, _ := d.Value.(time.Duration)
		buf.AppendVarint(int64(v))

	case KindTime:
		v, _ := d.Value.(time.Time)
		buf.AppendVarint(v.UnixNano())

	case KindString:
		v, _ := d.Value.(string)
		buf.AppendLenPrefixed([]byte(v))

	case KindBytes:
		v, _ := d.Value.([]byte)
		buf.AppendLenPrefixed(v)

	case KindAddress:
		v, _ := d.Value.(net.IP)
		buf.AppendLenPrefixed(addressBytes(v))

	case KindSubnet:
		v, _ := d.Value.(Subnet)
		buf.AppendLenPrefixed(addressBytes(v.Addr))
		buf.B = append(buf.B, byte(v.Bits))

	case KindPort:
		v, _ := d.Value.(Port)
		buf.AppendUvarint(uint64(v.Number))
		buf.AppendLenPrefixed([]byte(v.Protocol))

	case KindEnum:
		v, _ := d.Value.(string)
		idx := enumIndex(typ, v)
		if idx < 0 {
			return errs.ErrUnknownTypeTag
		}
		buf.AppendUvarint(uint64(idx))

	case KindRecord:
		fields, _ := d.Value.([]Data)
		if len(fields) != len(typ.Fields) {
			return errs.ErrUnknownTypeTag
		}
		for i, f := range fields {
			if err := EncodeData(buf, typ.Fields[i].Type, f); err != nil {
				return err
			}
		}

	case KindVector, KindSet:
		elems, _ := d.Value.([]Data)
		buf.AppendUvarint(uint64(len(elems)))
		for _, e := range elems {
			if err := EncodeData(buf, *typ.Elem, e); err != nil {
				return err
			}
		}

	case KindMap:
		entries, _ := d.Value.([]MapEntry)
		buf.AppendUvarint(uint64(len(entries)))
		for _, e := range entries {
			if err := EncodeData(buf, *typ.Key, e.Key); err != nil {
				return err
			}
			if err := EncodeData(buf, *typ.Elem, e.Value); err != nil {
				return err
			}
		}
	}

	return nil
}

// DecodeData reads a value of type typ from the front of b, returning the
// decoded Data and the number of bytes consumed.
func DecodeData(b []byte, typ Type) (Data, int, error) {
	switch typ.Kind {
	case KindBool:
		v, n, err := wire.Byte(b)
		if err != nil {
			return Data{}, 0, err
		}

		return BoolData(v != 0), n, nil

	case KindInt64:
		v, n, err := wire.Varint(b)
		if err != nil {
			return Data{}, 0, err
		}

		return Int64Data(v), n, nil

	case KindUint64:
		v, n, err := wire.Uvarint(b)
		if err != nil {
			return Data{}, 0, err
		}

		return Uint64Data(v), n, nil

	case KindFloat64:
		if len(b) < 8 {
			return Data{}, 0, errs.ErrTruncatedPayload
		}

		return Float64Data(math.Float64frombits(wireEndian.Uint64(b))), 8, nil

	case KindDuration:
		v, n, err := wire.Varint(b)
		if err != nil {
			return Data{}, 0, err
		}

		return DurationData(time.Duration(v)), n, nil

	case KindTime:
		v, n, err := wire.Varint(b)
		if err != nil {
			return Data{}, 0, err
		}

		return TimeData(time.Unix(0, v).UTC()), n, nil

	case KindString:
		s, n, err := wire.LenPrefixed(b)
		if err != nil {
			return Data{}, 0, err
		}

		return StringData(string(s)), n, nil

	case KindBytes:
		s, n, err := wire.LenPrefixed(b)
		if err != nil {
			return Data{}, 0, err
		}
		out := make([]byte, len(s))
		copy(out, s)

		return BytesData(out), n, nil

	case KindAddress:
		s, n, err := wire.LenPrefixed(b)
		if err != nil {
			return Data{}, 0, err
		}

		return AddressData(net.IP(append([]byte(nil), s...))), n, nil

	case KindSubnet:
		s, n, err := wire.LenPrefixed(b)
		if err != nil {
			return Data{}, 0, err
		}
		bits, m, err := wire.Byte(b[n:])
		if err != nil {
			return Data{}, 0, err
		}

		return SubnetData(Subnet{Addr: net.IP(append([]byte(nil), s...)), Bits: int(bits)}), n + m, nil

	case KindPort:
		num, n, err := wire.Uvarint(b)
		if err != nil {
			return Data{}, 0, err
		}
		proto, m, err := wire.LenPrefixed(b[n:])
		if err != nil {
			return Data{}, 0, err
		}

		return PortData(Port{Number: uint16(num), Protocol: string(proto)}), n + m, nil

	case KindEnum:
		idx, n, err := wire.Uvarint(b)
		if err != nil {
			return Data{}, 0, err
		}
		if int(idx) >= len(typ.Enumerators) {
			return Data{}, 0, errs.ErrUnknownTypeTag
		}

		return EnumData(typ.Enumerators[idx]), n, nil

	case KindRecord:
		off := 0
		fields := make([]Data, len(typ.Fields))
		for i, f := range typ.Fields {
			v, n, err := DecodeData(b[off:], f.Type)
			if err != nil {
				return Data{}, 0, err
			}
			fields[i] = v
			off += n
		}

		return RecordData(fields...), off, nil

	case KindVector, KindSet:
		count, n, err := wire.Uvarint(b)
		if err != nil {
			return Data{}, 0, err
		}
		off := n
		elems := make([]Data, count)
		for i := range elems {
			v, m, err := DecodeData(b[off:], *typ.Elem)
			if err != nil {
				return Data{}, 0, err
			}
			elems[i] = v
			off += m
		}
		if typ.Kind == KindSet {
			return SetData(elems...), off, nil
		}

		return VectorData(elems...), off, nil

	case KindMap:
		count, n, err := wire.Uvarint(b)
		if err != nil {
			return Data{}, 0, err
		}
		off := n
		entries := make([]MapEntry, count)
		for i := range entries {
			k, m, err := DecodeData(b[off:], *typ.Key)
			if err != nil {
				return Data{}, 0, err
			}
			off += m
			v, m, err := DecodeData(b[off:], *typ.Elem)
			if err != nil {
				return Data{}, 0, err
			}
			off += m
			entries[i] = MapEntry{Key: k, Value: v}
		}

		return MapData(entries...), off, nil

	default:
		return Data{}, 0, errs.ErrUnknownTypeTag
	}
}

func addressBytes(ip net.IP) []byte {
	if v4 := ip.To4(); v4 != nil {
		return v4
	}

	return ip.To16()
}

func enumIndex(typ Type, value string) int {
	for i, v := range typ.Enumerators {
		if v == value {
			return i
		}
	}

	return -1
}
