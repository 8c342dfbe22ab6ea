// Package dictionary implements the per-batch type-interning table shared
// by the batch writer and reader: dense, sequential identifiers assigned
// to event.Type values in first-seen order, so that repeated events of
// the same type cost only a small integer on the wire instead of a full
// type descriptor.
package dictionary
