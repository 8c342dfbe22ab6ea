package identifier

// Service requests disjoint ranges of the identifier space. A call to
// Request(n) returns a half-open range [from, to) of n identifiers,
// reserved for the caller's exclusive use; no other Request call against
// the same Service will ever return an overlapping range. Identifier 0 is
// reserved as "invalid/unassigned" and is never returned.
type Service interface {
	Request(n uint64) (from, to uint64, err error)
}
