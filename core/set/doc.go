// Package set provides hash sets and maps with duplicate-key support on top
// of rawset.
//
// # Items and Keys
//
// A Set stores values that carry their own key (Item). Keys are hashed by a
// Hasher supplied at construction and compared with == on every lookup, so
// hash collisions between different keys are resolved. The helpers HashInt,
// HashString and HashMethod cover the common key kinds.
//
// Keys may change while a value sits in a Set, as long as the caller calls
// Rehash before the next lookup. Items that implement ImmutableKeyer and
// return true are skipped by Rehash.
//
// # Duplicates
//
// Set is a multiset: Insert never replaces. FindFirstIndex/FindNextIndex
// enumerate every value stored under a key, and RemoveAll removes them.
// Map is the unique-key variant built on Set.
//
// # Indices
//
// Insert returns the slot of the new value. Slots are stable until the
// next removal, which moves the last value into the removed slot.
package set
