// Package typecache provides a small, capacity-bounded least-recently-used
// cache keyed by a content hash. It backs external lookups against the
// batch dictionary's interned types (for example a service mapping a
// known type hash straight to a reader-side Type without re-parsing a
// descriptor), and is generic so it can hold any value the caller needs
// alongside a key.
package typecache
