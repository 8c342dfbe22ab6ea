// Package collision detects genuine collisions in a hash-keyed cache: two
// non-equal values that happen to produce the same hash. It never treats a
// collision as fatal, only as a signal that a cache hit under that hash
// can no longer be trusted blindly.
package collision

// Tracker records the first observed key rendering for each hash it has
// seen, so a second, different key under the same hash can be
// recognized as a real collision rather than a cache hit.
//
// A Tracker is not safe for concurrent use; callers that share one across
// goroutines must synchronize externally.
type Tracker struct {
	seen         map[uint64]string
	hasCollision bool
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint64]string)}
}

// Observe records that hash was produced for the value rendered as key.
// It reports whether this call is a genuine collision: the same hash was
// previously observed for a different key.
func (t *Tracker) Observe(hash uint64, key string) (isCollision bool) {
	existing, ok := t.seen[hash]
	if !ok {
		t.seen[hash] = key

		return false
	}

	if existing == key {
		return false
	}

	t.hasCollision = true

	return true
}

// HasCollision reports whether any Observe call has detected a collision
// since the Tracker was created or last Reset.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Reset clears all observed hashes and the collision flag.
func (t *Tracker) Reset() {
	clear(t.seen)
	t.hasCollision = false
}
