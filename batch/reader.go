package batch

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lanternstack/batchstore/bitmap"
	"github.com/lanternstack/batchstore/compress"
	"github.com/lanternstack/batchstore/errs"
	"github.com/lanternstack/batchstore/event"
	"github.com/lanternstack/batchstore/internal/dictionary"
	"github.com/lanternstack/batchstore/internal/options"
	"github.com/lanternstack/batchstore/internal/typecache"
	"github.com/lanternstack/batchstore/internal/wire"
	"github.com/lanternstack/batchstore/log"
)

// ReaderOption configures a Reader at construction time.
type ReaderOption = options.Option[*Reader]

// WithReaderLogger sets the logger a Reader holds. The default is a no-op
// logger. The Reader's own methods do not write any log entries.
func WithReaderLogger(l *zap.Logger) ReaderOption {
	return options.NoError(func(r *Reader) { r.logger = l })
}

// WithTypeCache installs a shared type-descriptor cache. Readers opened
// against different batches that reuse the same schemas can pass the same
// cache so structurally identical types collapse onto one shared Type
// value instead of one allocation per batch.
func WithTypeCache(cache *typecache.Cache[uint64, event.Type]) ReaderOption {
	return options.NoError(func(r *Reader) { r.typeCache = cache })
}

// Reader lazily decompresses and deserializes the events of a sealed
// Batch, re-hydrating interned types from the batch-local dictionary and
// assigning identifiers from the batch's id bitmap as it goes.
//
// A Reader borrows its Batch's payload for its own lifetime and is not
// safe for concurrent use; distinct Readers over the same Batch may run
// concurrently.
type Reader struct {
	batch     *Batch
	payload   []byte
	offset    int
	available uint64

	dict *dictionary.Reader
	ids  *bitmap.OnesCursor

	typeCache *typecache.Cache[uint64, event.Type]
	logger    *zap.Logger
}

// NewReader decompresses b's payload and returns a Reader positioned at
// its first event. Decompression happens eagerly so that a malformed
// payload is reported here rather than on the first call to Materialize.
func NewReader(b *Batch, opts ...ReaderOption) (*Reader, error) {
	codec, err := compress.GetCodec(b.method)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(b.payload)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		batch:     b,
		payload:   payload,
		available: b.events,
		logger:    log.Nop(),
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	if r.typeCache != nil {
		r.dict = dictionary.NewReaderWithCache(r.typeCache)
	} else {
		r.dict = dictionary.NewReader()
	}

	if b.ids != nil {
		r.ids = b.ids.Ones()
	}

	return r, nil
}

// Materialize decodes and returns the next event in payload order,
// assigning it an identifier from the batch's id bitmap if one is set.
// It fails with errs.ErrExhausted once every event has been consumed, and
// with a codec error (such as errs.ErrTruncatedPayload or
// errs.ErrUnknownTypeTag) on a truncated or malformed payload.
func (r *Reader) Materialize() (event.Event, error) {
	if r.available == 0 {
		return event.Event{}, errs.ErrExhausted
	}

	typ, err := r.readTypeRef()
	if err != nil {
		return event.Event{}, err
	}

	ts, n, err := wire.Varint(r.payload[r.offset:])
	if err != nil {
		return event.Event{}, err
	}
	r.offset += n

	data, n, err := event.DecodeData(r.payload[r.offset:], typ)
	if err != nil {
		return event.Event{}, err
	}
	r.offset += n

	e := event.New(time.Unix(0, ts).UTC(), typ, data)
	if r.ids != nil && !r.ids.Done() {
		e.ID = r.ids.Next()
	}

	r.available--

	return e, nil
}

// readTypeRef reads the dictionary id fronting a record. If the id is new
// (equal to the current dictionary length) it is followed by a type
// descriptor, which is learned before returning.
func (r *Reader) readTypeRef() (event.Type, error) {
	id, n, err := wire.Uvarint(r.payload[r.offset:])
	if err != nil {
		return event.Type{}, err
	}
	r.offset += n

	switch {
	case int(id) < r.dict.Len():
		return r.dict.Lookup(uint32(id))

	case int(id) == r.dict.Len():
		typ, n, err := event.DecodeType(r.payload[r.offset:])
		if err != nil {
			return event.Type{}, err
		}
		r.offset += n
		r.dict.Learn(typ)

		return typ, nil

	default:
		return event.Type{}, errs.ErrUnknownTypeTag
	}
}

// Read materializes every remaining event in the batch, in payload order.
func (r *Reader) Read() ([]event.Event, error) {
	out := make([]event.Event, 0, r.available)
	for r.available > 0 {
		e, err := r.Materialize()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}

// ReadSelective returns the subset of the batch's remaining events whose
// assigned identifier is set in query, in identifier order. It merge-joins
// the monotone materialization stream against query's bit runs, never
// materializing an event twice and never advancing past the last wanted
// identifier.
//
// Events are consumed from the reader as this walk proceeds; a Reader
// that has already partially Read or ReadSelective will only see what
// remains.
func (r *Reader) ReadSelective(query *bitmap.Bitmap) ([]event.Event, error) {
	out := []event.Event{}
	var pending *event.Event

	runs := query.Runs()
	var n uint64

	// next returns the absolute position of the first set bit in run
	// strictly after absolute identifier k, or bitmap.NPos if none. k may
	// fall before the run's own start, in which case this degenerates to
	// the run's own first set bit.
	next := func(run bitmap.Run, k uint64) uint64 {
		var local uint64
		if k < n {
			local = run.FindFirst()
		} else {
			local = run.FindNext(k - n)
		}
		if local == bitmap.NPos {
			return bitmap.NPos
		}

		return n + local
	}

	for !runs.Done() {
		run := runs.Next()

		first := run.FindFirst()
		if first == bitmap.NPos {
			n += run.Size()
			continue
		}
		target := n + first

		if pending != nil && pending.ID > target {
			target = next(run, pending.ID-1)
			if target == pending.ID {
				out = append(out, *pending)
				pending = nil
				target = next(run, target)
			}
		}

		for target != bitmap.NPos {
			if pending != nil && pending.ID < target {
				// A pending event carried from an earlier run is now
				// behind the current target; it can never match anything
				// from here on, so it is discarded without emitting.
				pending = nil
			}

			if pending == nil {
				for pending == nil {
					e, err := r.Materialize()
					if err != nil {
						if errors.Is(err, errs.ErrExhausted) {
							return out, nil
						}

						return nil, err
					}
					if e.ID >= target {
						pending = &e
					}
				}
			}

			switch {
			case pending.ID > target:
				target = next(run, pending.ID-1)
			case pending.ID == target:
				out = append(out, *pending)
				pending = nil
				target = next(run, target)
			}
		}

		n += run.Size()
	}

	return out, nil
}
