package dictionary

import (
	"github.com/lanternstack/batchstore/errs"
	"github.com/lanternstack/batchstore/event"
	"github.com/lanternstack/batchstore/internal/collision"
	"github.com/lanternstack/batchstore/internal/typecache"
)

// Reader is the decode-side counterpart to Writer: a vector-indexed table
// of event.Type values, populated in the same first-seen order the writer
// assigned identifiers in.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	types      []event.Type
	cache      *typecache.Cache[uint64, event.Type]
	collisions *collision.Tracker
}

// NewReader returns an empty Reader.
func NewReader() *Reader {
	return &Reader{}
}

// NewReaderWithCache returns an empty Reader that consults cache, keyed by
// event.Type.Hash(), before recording a freshly decoded type. Readers of
// many related batches that share most of their schemas can pass the same
// cache so that structurally identical types collapse onto one shared
// Type value instead of one allocation per batch.
func NewReaderWithCache(cache *typecache.Cache[uint64, event.Type]) *Reader {
	return &Reader{cache: cache, collisions: collision.NewTracker()}
}

// Learn records t as the next type in assignment order and returns its
// identifier. The caller is responsible for only calling Learn when the
// batch payload indicates a new type descriptor was present.
//
// If the Reader was built with a cache and an equal type has already been
// seen through it, the cached Type value is recorded instead of t. A cache
// hit under the same hash for a genuinely different type is a collision,
// not a match: t is kept and the cache entry is overwritten rather than
// silently substituting the wrong schema.
func (r *Reader) Learn(t event.Type) uint32 {
	if r.cache != nil {
		h := t.Hash()
		if cached, ok := r.cache.Get(h); ok && cached.Equal(t) {
			t = cached
		} else {
			if ok {
				r.collisions.Observe(h, cached.Key())
				r.collisions.Observe(h, t.Key())
			}
			r.cache.Put(h, t)
		}
	}

	id := uint32(len(r.types))
	r.types = append(r.types, t)

	return id
}

// HasTypeHashCollision reports whether a cache hit under a shared hash has
// ever been rejected because the cached and decoded types were not equal.
// Always false when the Reader was not built with a cache.
func (r *Reader) HasTypeHashCollision() bool {
	return r.collisions != nil && r.collisions.HasCollision()
}

// Lookup returns the type previously learned under id.
func (r *Reader) Lookup(id uint32) (event.Type, error) {
	if int(id) >= len(r.types) {
		return event.Type{}, errs.ErrUnknownTypeTag
	}

	return r.types[id], nil
}

// Len returns the number of types learned so far.
func (r *Reader) Len() int {
	return len(r.types)
}

// Reset clears the Reader so it can be reused for a new batch.
func (r *Reader) Reset() {
	r.types = r.types[:0]
}
