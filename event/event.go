package event

import "time"

// Event is the (identifier, timestamp, typed data) triple the batch writer
// accepts and the batch reader reproduces. ID is not stored by the
// writer: the batch reader assigns it from the batch's identifier bitmap
// during materialization, so a freshly constructed Event passed to
// Writer.Write may leave it zero.
type Event struct {
	ID        uint64
	Timestamp time.Time
	Type      Type
	Data      Data
}

// New returns an Event with the given timestamp, type and data. ID is left
// zero; the batch reader assigns it when the event is read back.
func New(ts time.Time, typ Type, data Data) Event {
	return Event{Timestamp: ts.UTC(), Type: typ, Data: data}
}

// Equal reports whether e and other carry the same identifier, timestamp,
// type and data.
func (e Event) Equal(other Event) bool {
	return e.ID == other.ID &&
		e.Timestamp.Equal(other.Timestamp) &&
		e.Type.Equal(other.Type) &&
		e.Data.Equal(other.Data)
}
