// Package event defines the event, type and data value model the batch
// writer and reader operate on.
//
// Event is the (identifier, timestamp, typed data) triple of the storage
// engine. Type is a self-describing, value-equal, hashable schema for an
// event's Data, interned per batch so repeated events of the same type
// cost only a small dictionary id on the wire. Data is a recursively
// serializable tagged variant over the primitive and container kinds a
// Type can describe.
//
// This package owns the self-delimiting binary grammar for Type and Data:
// EncodeType/DecodeType and EncodeData/DecodeData. The batch package is
// the only caller — it drives the type-interning dictionary and decides
// when a type descriptor needs to be written or read.
package event
