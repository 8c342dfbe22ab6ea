package batch

import (
	"math"
	"time"

	"github.com/lanternstack/batchstore/bitmap"
	"github.com/lanternstack/batchstore/errs"
	"github.com/lanternstack/batchstore/format"
)

// maxTime and minTime are the conventional first/last timestamps of a
// batch with zero events: first = +infinity, last = -infinity, so that
// the usual min/max accumulation during Write never needs a special case.
var (
	maxTime = time.Unix(0, math.MaxInt64).UTC()
	minTime = time.Unix(0, math.MinInt64).UTC()
)

// Batch is an immutable, sealed container produced by a Writer: a
// compressed record stream plus the envelope metadata callers need
// without decompressing it.
type Batch struct {
	method  format.Method
	payload []byte
	events  uint64
	first   time.Time
	last    time.Time
	ids     *bitmap.Bitmap
}

// Method returns the compression codec used for Payload.
func (b *Batch) Method() format.Method { return b.method }

// Payload returns the compressed record stream. Callers that only need to
// read events should use a Reader instead of decompressing this directly.
func (b *Batch) Payload() []byte { return b.payload }

// Events returns the number of events serialized in the batch.
func (b *Batch) Events() uint64 { return b.events }

// First returns the minimum event timestamp, or the conventional +infinity
// sentinel when Events() == 0.
func (b *Batch) First() time.Time { return b.first }

// Last returns the maximum event timestamp, or the conventional -infinity
// sentinel when Events() == 0.
func (b *Batch) Last() time.Time { return b.last }

// IDs returns the batch's identifier bitmap, or nil if none has been
// attached yet.
func (b *Batch) IDs() *bitmap.Bitmap { return b.ids }

// SetIDRange attaches a dense identifier bitmap of the half-open range
// [begin, end) to the batch: bit i is set for begin <= i < end. It fails
// with errs.ErrRankMismatch, leaving the batch unchanged, unless
// end-begin equals Events().
func (b *Batch) SetIDRange(begin, end uint64) error {
	if end < begin || end-begin != b.events {
		return errs.ErrRankMismatch
	}

	b.ids = bitmap.Range(end, begin, end)

	return nil
}

// SetIDs attaches ids as the batch's identifier bitmap. It fails with
// errs.ErrRankMismatch, leaving the batch unchanged, unless ids.Rank()
// equals Events().
func (b *Batch) SetIDs(ids *bitmap.Bitmap) error {
	if ids.Rank() != b.events {
		return errs.ErrRankMismatch
	}

	b.ids = ids.Clone()

	return nil
}
