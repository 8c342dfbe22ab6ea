// Package batch implements the core storage and retrieval engine: packing
// a stream of heterogeneous event.Event values into a compressed,
// self-describing binary container (Writer, Batch) and answering full and
// selective reads over that container (Reader).
//
// A Batch is immutable once sealed. Its identifier bitmap may be attached
// exactly once, either from a caller-supplied bitmap or from a half-open
// range handed out by an identifier.Service; the writer itself never
// assigns identifiers.
package batch
