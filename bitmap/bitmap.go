package bitmap

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/lanternstack/batchstore/errs"
)

// NPos is returned by Run.FindFirst and Run.FindNext when no matching bit
// exists, mirroring the source's word::npos sentinel.
const NPos = ^uint64(0)

// Bitmap is an append-only bit sequence addressing positions 0..Size().
//
// A zero-value Bitmap is not usable; construct one with New.
type Bitmap struct {
	bits *roaring64.Bitmap
	size uint64
}

// New returns an empty bitmap.
func New() *Bitmap {
	return &Bitmap{bits: roaring64.New()}
}

// Of returns a bitmap of length size whose set bits are exactly positions.
// Every position must be < size.
func Of(size uint64, positions ...uint64) *Bitmap {
	b := &Bitmap{bits: roaring64.New(), size: size}
	for _, p := range positions {
		if p >= size {
			panic("bitmap: position out of range")
		}
		b.bits.Add(p)
	}

	return b
}

// Range returns a bitmap of length size with bits [begin, end) set and all
// others clear. It is the concrete form of the `ids(begin, end)` batch
// attachment described by the batch envelope.
func Range(size, begin, end uint64) *Bitmap {
	if end < begin || end > size {
		panic("bitmap: invalid range")
	}
	b := &Bitmap{bits: roaring64.New(), size: size}
	if end > begin {
		b.bits.AddRange(begin, end)
	}

	return b
}

// Size returns the total bit length of the bitmap.
func (b *Bitmap) Size() uint64 { return b.size }

// Empty reports whether the bitmap has zero length.
func (b *Bitmap) Empty() bool { return b.size == 0 }

// Rank returns the number of set bits in the bitmap.
func (b *Bitmap) Rank() uint64 { return b.bits.GetCardinality() }

// At returns the value of bit i. It panics if i >= Size(), matching the
// PreconditionViolation semantics of the source (a programmer error, not a
// recoverable runtime error).
func (b *Bitmap) At(i uint64) bool {
	if i >= b.size {
		panic("bitmap: index out of range")
	}

	return b.bits.Contains(i)
}

// AppendBit appends a single bit to the end of the bitmap.
func (b *Bitmap) AppendBit(v bool) {
	if v {
		b.bits.Add(b.size)
	}
	b.size++
}

// AppendBits appends n copies of bit v.
func (b *Bitmap) AppendBits(v bool, n uint64) {
	if n == 0 {
		return
	}
	if v {
		b.bits.AddRange(b.size, b.size+n)
	}
	b.size += n
}

// AppendBlock appends the low n bits of word w, LSB first. n must be <= 64.
func (b *Bitmap) AppendBlock(w uint64, n uint) {
	if n > 64 {
		panic("bitmap: AppendBlock: n exceeds word width")
	}
	for i := uint(0); i < n; i++ {
		if w&(uint64(1)<<i) != 0 {
			b.bits.Add(b.size)
		}
		b.size++
	}
}

// Clone returns an independent copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{bits: b.bits.Clone(), size: b.size}
}

func (b *Bitmap) sameSize(other *Bitmap) error {
	if b.size != other.size {
		return errs.ErrSizeMismatch
	}

	return nil
}

// And returns the bitwise AND of b and other. Both operands must have the
// same size.
func (b *Bitmap) And(other *Bitmap) (*Bitmap, error) {
	if err := b.sameSize(other); err != nil {
		return nil, err
	}
	r := b.bits.Clone()
	r.And(other.bits)

	return &Bitmap{bits: r, size: b.size}, nil
}

// Or returns the bitwise OR of b and other. Both operands must have the
// same size.
func (b *Bitmap) Or(other *Bitmap) (*Bitmap, error) {
	if err := b.sameSize(other); err != nil {
		return nil, err
	}
	r := b.bits.Clone()
	r.Or(other.bits)

	return &Bitmap{bits: r, size: b.size}, nil
}

// Xor returns the bitwise XOR of b and other. Both operands must have the
// same size.
func (b *Bitmap) Xor(other *Bitmap) (*Bitmap, error) {
	if err := b.sameSize(other); err != nil {
		return nil, err
	}
	r := b.bits.Clone()
	r.Xor(other.bits)

	return &Bitmap{bits: r, size: b.size}, nil
}

// Not returns the bitwise complement of b, a new bitmap of the same size
// where every bit is flipped. Complement is involutive: b.Not().Not()
// equals b.
func (b *Bitmap) Not() *Bitmap {
	universe := roaring64.New()
	if b.size > 0 {
		universe.AddRange(0, b.size)
	}
	universe.Xor(b.bits)

	return &Bitmap{bits: universe, size: b.size}
}

// Nand returns NOT(b AND other).
func (b *Bitmap) Nand(other *Bitmap) (*Bitmap, error) {
	and, err := b.And(other)
	if err != nil {
		return nil, err
	}

	return and.Not(), nil
}

// Nor returns NOT(b OR other).
func (b *Bitmap) Nor(other *Bitmap) (*Bitmap, error) {
	or, err := b.Or(other)
	if err != nil {
		return nil, err
	}

	return or.Not(), nil
}

// Equal reports whether b and other have the same size and the same set
// bits.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.size != other.size {
		return false
	}

	return b.bits.Equals(other.bits)
}
