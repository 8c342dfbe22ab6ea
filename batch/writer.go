package batch

import (
	"time"

	"go.uber.org/zap"

	"github.com/lanternstack/batchstore/compress"
	"github.com/lanternstack/batchstore/errs"
	"github.com/lanternstack/batchstore/event"
	"github.com/lanternstack/batchstore/format"
	"github.com/lanternstack/batchstore/internal/dictionary"
	"github.com/lanternstack/batchstore/internal/options"
	"github.com/lanternstack/batchstore/internal/pool"
	"github.com/lanternstack/batchstore/log"
)

// Option configures a Writer at construction time.
type Option = options.Option[*Writer]

// WithLogger sets the logger a Writer uses for debug-level tracing. The
// default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return options.NoError(func(w *Writer) { w.logger = l })
}

// Writer accepts events one at a time, interning each distinct event type
// the first time it is seen, and produces an immutable Batch on Seal.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	method format.Method
	codec  compress.Codec
	buf    *pool.ByteBuffer
	dict   *dictionary.Writer

	events uint64
	first  time.Time
	last   time.Time

	logger *zap.Logger
}

// NewWriter returns a Writer that compresses sealed payloads with method.
func NewWriter(method format.Method, opts ...Option) (*Writer, error) {
	if !method.Valid() {
		return nil, errs.ErrUnsupportedMethod
	}

	codec, err := compress.GetCodec(method)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		method: method,
		codec:  codec,
		buf:    pool.GetBatchBuffer(),
		dict:   dictionary.NewWriter(),
		first:  maxTime,
		last:   minTime,
		logger: log.Nop(),
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// Write appends e to the growing batch. e.ID is ignored: identifiers are
// assigned at read time from the sealed Batch's identifier bitmap, never
// stored per-event in the payload.
func (w *Writer) Write(e event.Event) {
	if e.Timestamp.Before(w.first) {
		w.first = e.Timestamp
	}
	if e.Timestamp.After(w.last) {
		w.last = e.Timestamp
	}

	id, isNew := w.dict.Intern(e.Type)
	w.buf.AppendUvarint(uint64(id))
	if isNew {
		event.EncodeType(w.buf, e.Type)
	}

	w.buf.AppendVarint(e.Timestamp.UnixNano())
	// EncodeData only fails on a malformed Type/Data pairing (for example
	// an enum value outside its closed set), which Write has no business
	// error to report for; a caller handing over a self-consistent event
	// never observes this.
	_ = event.EncodeData(w.buf, e.Type, e.Data)

	w.events++
}

// Seal compresses the accumulated record stream into an immutable Batch
// and resets the writer so it is immediately reusable with the same
// method and an empty dictionary.
func (w *Writer) Seal() (*Batch, error) {
	compressed, stats, err := compress.Measure(w.codec, w.method, w.buf.Bytes())
	if err != nil {
		return nil, err
	}

	payload := make([]byte, len(compressed))
	copy(payload, compressed)

	b := &Batch{
		method:  w.method,
		payload: payload,
		events:  w.events,
		first:   w.first,
		last:    w.last,
	}

	w.logger.Debug("batch sealed",
		zap.Uint64("events", w.events),
		zap.Int("dictionary_size", w.dict.Len()),
		zap.Int64("raw_bytes", stats.OriginalSize),
		zap.Int64("compressed_bytes", stats.CompressedSize),
		zap.Float64("compression_ratio", stats.Ratio),
		zap.Float64("space_savings_pct", stats.SpaceSavings()),
	)

	w.buf.Reset()
	w.dict.Reset()
	w.events = 0
	w.first = maxTime
	w.last = minTime

	return b, nil
}
