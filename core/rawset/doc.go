// Package rawset implements the open-chained hash table that backs corekit's
// sets and maps.
//
// # Overview
//
// A Table stores three parallel arrays:
//
//   - data: the payload values, in insertion order modulo swap-removal
//   - entries: one Entry per payload slot carrying the hash and the
//     prev/next links of its bucket chain
//   - buckets: slot hash%len(buckets) holds the first entry of that
//     bucket's chain, or None
//
// data and entries always have the same length and are changed together.
// Only data is parameterized by an allocator; entries and buckets live on
// the heap.
//
// # Runs
//
// Several entries may carry the same hash (a multimap). Entries with equal
// hashes are kept contiguous inside their bucket chain, forming a run. A new
// duplicate is linked in front of its run, so walking a run with
// FindNextIndex yields the newest entry first and stops at the first entry
// with a different hash.
//
// # Load Factor
//
// Before an insert, the table is considered full when it has no buckets or
// when the entry count exceeds round(0.7 * buckets). A full table is
// rehashed to 2*buckets + 8.
//
// # Removal
//
// RemoveData swap-removes: the last entry moves into the vacated slot and
// every link that pointed at the last slot is redirected. The link fixup is
// a pure function over the entry and bucket slices.
//
// # Thread Safety
//
// Tables are not safe for concurrent use.
package rawset
