// Package corekit is a generic container library whose containers take
// their storage from a pluggable allocator.
//
// The packages, leaves first:
//
//   - core/alloc: allocation strategies (Heap, Inline, Mapped)
//   - core/rawbuf: the growable buffer every container is built on
//   - core/array: ordered dynamic arrays, optionally with inline storage
//   - core/rawset: an open-chained hash table with duplicate-key runs
//   - core/set: typed multisets and unique-key maps
//   - core/atom: a concurrent, case-insensitive string interning table
//   - core/objpool: a concurrent pool of keyed objects with try-only borrows
//   - core/metrics: Prometheus collectors for atom tables and pools
//
// The root package only configures logging; see SetLogger.
//
// # Debug Checks
//
// Container preconditions (index ranges, non-empty pops, layout overflow)
// are checked only when building with -tags corekit_debug. Release builds
// rely on Go's bounds checks, which do not cover slots between a
// container's length and its capacity.
package corekit
