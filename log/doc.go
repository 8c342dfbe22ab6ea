// Package log provides the structured logger used by the batch writer and
// reader for diagnostic tracing. It is a thin wrapper around
// go.uber.org/zap: batch.Writer logs one debug-level entry with its
// counters and compression figures on each Seal, batch.Reader writes no
// log entries, and both default to a no-op logger when the caller does
// not configure one.
package log
