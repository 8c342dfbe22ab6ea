// Package bitmap provides an append-only bit sequence with a run-oriented
// iteration protocol, used by the batch package to represent an event
// batch's identifier set and the identifier sets passed to selective
// reads.
//
// Storage, rank, random access and the Boolean combinators (AND, OR, XOR,
// NAND, NOR, complement) are delegated to a 64-bit roaring bitmap
// (github.com/RoaringBitmap/roaring/v2/roaring64), which keeps a sparse,
// sorted representation of set-bit positions under the hood. The run
// iterator itself — the thing the batch reader's selective-read algorithm
// actually depends on for correctness — is built on top of that sorted
// stream here: consecutive set-bit positions are coalesced into a single
// homogeneous "ones" run, and the gap before the next set bit (or the end
// of the bitmap) becomes a homogeneous "zero" run. A bitmap with long
// stretches of unset bits therefore costs O(number of runs), not O(size),
// to walk — the property the selective read needs to skip large
// non-matching regions of a query bitmap in O(1) per run.
package bitmap
