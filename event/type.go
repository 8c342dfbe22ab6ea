package event

import (
	"github.com/lanternstack/batchstore/internal/hash"
	"github.com/lanternstack/batchstore/internal/pool"
	"github.com/lanternstack/batchstore/internal/wire"
)

// Field is a named, typed member of a KindRecord Type.
type Field struct {
	Name string
	Type Type
}

// Type is a self-describing schema for an event's Data: a tagged variant
// over the primitive and container kinds listed in Kind. Types are
// value-equal (Equal) and hashable (Hash), and are interned per batch so
// that repeated events of the same type cost only a small dictionary id on
// the wire.
//
// Type is not a comparable Go type (it may contain slices), so code that
// needs to use a Type as a map key should use Key() instead.
type Type struct {
	Kind Kind

	// Name holds the enum's name for KindEnum; unused otherwise.
	Name string
	// Enumerators holds the closed set of values for KindEnum.
	Enumerators []string
	// Fields holds the ordered fields of a KindRecord.
	Fields []Field
	// Elem holds the element type of a KindVector/KindSet, or the value
	// type of a KindMap.
	Elem *Type
	// Key holds the key type of a KindMap.
	Key *Type
}

// Primitive type constructors.
func Bool() Type     { return Type{Kind: KindBool} }
func Int64() Type    { return Type{Kind: KindInt64} }
func Uint64() Type   { return Type{Kind: KindUint64} }
func Float64() Type  { return Type{Kind: KindFloat64} }
func Duration() Type { return Type{Kind: KindDuration} }
func Time() Type     { return Type{Kind: KindTime} }
func String() Type   { return Type{Kind: KindString} }
func Bytes() Type    { return Type{Kind: KindBytes} }
func Address() Type  { return Type{Kind: KindAddress} }
func Subnet() Type   { return Type{Kind: KindSubnet} }
func Port() Type     { return Type{Kind: KindPort} }

// Enum returns a KindEnum type named name with the closed set of
// allowed values.
func Enum(name string, values ...string) Type {
	return Type{Kind: KindEnum, Name: name, Enumerators: values}
}

// Record returns a KindRecord type with the given ordered fields.
func Record(fields ...Field) Type {
	return Type{Kind: KindRecord, Fields: fields}
}

// Vector returns a KindVector type of elem.
func Vector(elem Type) Type {
	return Type{Kind: KindVector, Elem: &elem}
}

// Set returns a KindSet type of elem.
func Set(elem Type) Type {
	return Type{Kind: KindSet, Elem: &elem}
}

// Map returns a KindMap type from key to value.
func Map(key, value Type) Type {
	return Type{Kind: KindMap, Key: &key, Elem: &value}
}

// Equal reports whether t and other describe the same schema.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}

	switch t.Kind {
	case KindEnum:
		if t.Name != other.Name || len(t.Enumerators) != len(other.Enumerators) {
			return false
		}
		for i := range t.Enumerators {
			if t.Enumerators[i] != other.Enumerators[i] {
				return false
			}
		}

		return true
	case KindRecord:
		if len(t.Fields) != len(other.Fields) {
			return false
		}
		for i := range t.Fields {
			if t.Fields[i].Name != other.Fields[i].Name || !t.Fields[i].Type.Equal(other.Fields[i].Type) {
				return false
			}
		}

		return true
	case KindVector, KindSet:
		return t.Elem.Equal(*other.Elem)
	case KindMap:
		return t.Key.Equal(*other.Key) && t.Elem.Equal(*other.Elem)
	default:
		return true
	}
}

// Key returns a canonical byte-string encoding of t suitable for use as a
// map key (Type itself is not comparable) and as the wire representation
// of a type descriptor.
func (t Type) Key() string {
	buf := pool.GetBatchBuffer()
	defer pool.PutBatchBuffer(buf)

	t.appendTo(buf)

	return string(buf.Bytes())
}

// Hash returns the xxHash64 of t's canonical encoding.
func (t Type) Hash() uint64 {
	return hash.ID(t.Key())
}

func (t Type) appendTo(buf *pool.ByteBuffer) {
	buf.B = append(buf.B, byte(t.Kind))

	switch t.Kind {
	case KindEnum:
		buf.AppendLenPrefixed([]byte(t.Name))
		buf.AppendUvarint(uint64(len(t.Enumerators)))
		for _, e := range t.Enumerators {
			buf.AppendLenPrefixed([]byte(e))
		}
	case KindRecord:
		buf.AppendUvarint(uint64(len(t.Fields)))
		for _, f := range t.Fields {
			buf.AppendLenPrefixed([]byte(f.Name))
			f.Type.appendTo(buf)
		}
	case KindVector, KindSet:
		t.Elem.appendTo(buf)
	case KindMap:
		t.Key.appendTo(buf)
		t.Elem.appendTo(buf)
	}
}

// EncodeType writes t's descriptor to buf. This is the `type_descriptor`
// of the wire format's `type_ref := uint32 type_descriptor` first-occurrence
// form.
func EncodeType(buf *pool.ByteBuffer, t Type) {
	t.appendTo(buf)
}

// DecodeType reads a type descriptor from the front of b, returning the
// decoded Type and the number of bytes consumed.
func DecodeType(b []byte) (Type, int, error) {
	return decodeType(b)
}

func decodeType(b []byte) (Type, int, error) {
	kb, n, err := wire.Byte(b)
	if err != nil {
		return Type{}, 0, err
	}
	kind := Kind(kb)
	off := n

	switch kind {
	case KindEnum:
		name, m, err := wire.LenPrefixed(b[off:])
		if err != nil {
			return Type{}, 0, err
		}
		off += m

		count, m, err := wire.Uvarint(b[off:])
		if err != nil {
			return Type{}, 0, err
		}
		off += m

		enumerators := make([]string, count)
		for i := range enumerators {
			s, m, err := wire.LenPrefixed(b[off:])
			if err != nil {
				return Type{}, 0, err
			}
			off += m
			enumerators[i] = string(s)
		}

		return Type{Kind: kind, Name: string(name), Enumerators: enumerators}, off, nil

	case KindRecord:
		count, m, err := wire.Uvarint(b[off:])
		if err != nil {
			return Type{}, 0, err
		}
		off += m

		fields := make([]Field, count)
		for i := range fields {
			name, m, err := wire.LenPrefixed(b[off:])
			if err != nil {
				return Type{}, 0, err
			}
			off += m

			ft, m, err := decodeType(b[off:])
			if err != nil {
				return Type{}, 0, err
			}
			off += m

			fields[i] = Field{Name: string(name), Type: ft}
		}

		return Type{Kind: kind, Fields: fields}, off, nil

	case KindVector, KindSet:
		elem, m, err := decodeType(b[off:])
		if err != nil {
			return Type{}, 0, err
		}
		off += m

		return Type{Kind: kind, Elem: &elem}, off, nil

	case KindMap:
		key, m, err := decodeType(b[off:])
		if err != nil {
			return Type{}, 0, err
		}
		off += m

		val, m, err := decodeType(b[off:])
		if err != nil {
			return Type{}, 0, err
		}
		off += m

		return Type{Kind: kind, Key: &key, Elem: &val}, off, nil

	default:
		return Type{Kind: kind}, off, nil
	}
}
