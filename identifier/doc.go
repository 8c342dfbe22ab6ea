// Package identifier names the interface of the identifier-allocation
// service: an external collaborator, in the full system, that hands out
// disjoint ranges of the 64-bit identifier space on request. Only the
// interface is part of this module's contract; Sequential is a minimal
// in-memory implementation sufficient to exercise batch.Batch.SetIDRange
// without a real allocation service.
package identifier
