package identifier

import (
	"sync/atomic"

	"github.com/lanternstack/batchstore/errs"
)

// Sequential is a Service that hands out consecutive ranges from a single
// in-process counter, starting at 1. It is safe for concurrent use.
type Sequential struct {
	next atomic.Uint64
}

// NewSequential returns a Sequential allocator whose first Request begins
// at identifier 1.
func NewSequential() *Sequential {
	s := &Sequential{}
	s.next.Store(1)

	return s
}

// Request reserves the next n identifiers and returns them as a half-open
// range. Request(0) returns an empty range at the current cursor without
// advancing it.
func (s *Sequential) Request(n uint64) (from, to uint64, err error) {
	if n == 0 {
		cur := s.next.Load()
		return cur, cur, nil
	}

	from = s.next.Add(n) - n
	to = from + n
	if to < from {
		return 0, 0, errs.ErrInvalidRange
	}

	return from, to, nil
}
