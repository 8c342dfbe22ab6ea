package dictionary

import "github.com/lanternstack/batchstore/event"

// Writer interns event.Type values as they are encountered while writing a
// batch. It assigns dense, sequential identifiers in first-seen order and
// reports whether a given intern call introduced a new entry, so the
// caller knows whether it must also emit the type's descriptor.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	ids   map[string]uint32
	types []event.Type
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{ids: make(map[string]uint32)}
}

// Intern returns the identifier for t, assigning and recording a new one if
// t has not been seen before. isNew reports whether this call introduced
// the entry.
func (w *Writer) Intern(t event.Type) (id uint32, isNew bool) {
	key := t.Key()
	if id, ok := w.ids[key]; ok {
		return id, false
	}

	id = uint32(len(w.types))
	w.ids[key] = id
	w.types = append(w.types, t)

	return id, true
}

// Len returns the number of distinct types interned so far.
func (w *Writer) Len() int {
	return len(w.types)
}

// Types returns the interned types in assignment order. The returned slice
// aliases the Writer's internal state and must not be modified.
func (w *Writer) Types() []event.Type {
	return w.types
}

// Reset clears the Writer so it can be reused for a new batch.
func (w *Writer) Reset() {
	clear(w.ids)
	w.types = w.types[:0]
}
