package set

import (
	"iter"
	"unsafe"

	"github.com/joshuapare/corekit/core/alloc"
	"github.com/joshuapare/corekit/core/rawset"
)

// None is returned by the index lookups when nothing matches.
const None = rawset.None

// Of is a multiset of T keyed by K with payload storage from allocator A.
// The zero value is an empty set hashing keys with HashComparable.
type Of[T Item[K], K comparable, A any, PA alloc.Strategy[T, A]] struct {
	table rawset.Table[T, A, PA]
	hash  Hasher[K]
}

// Set is a heap-backed multiset.
type Set[T Item[K], K comparable] = Of[T, K, alloc.Heap[T], *alloc.Heap[T]]

// New returns an empty heap-backed set hashing keys with hash. A nil hash
// selects HashComparable.
func New[T Item[K], K comparable](hash Hasher[K]) *Set[T, K] {
	return &Set[T, K]{hash: hash}
}

// NewOf returns an empty set whose payload storage comes from A.
func NewOf[T Item[K], K comparable, A any, PA alloc.Strategy[T, A]](hash Hasher[K]) *Of[T, K, A, PA] {
	return &Of[T, K, A, PA]{hash: hash}
}

// WithTableSize returns an empty heap-backed set with n buckets.
func WithTableSize[T Item[K], K comparable](hash Hasher[K], n int) *Set[T, K] {
	s := &Set[T, K]{hash: hash}
	if n > 0 {
		s.table.Rehash(n)
	}
	return s
}

func (s *Of[T, K, A, PA]) hashKey(k K) uint64 {
	if s.hash == nil {
		return HashComparable(k)
	}
	return s.hash(k)
}

// Insert adds v, even if values with the same key are present, and returns
// its slot.
func (s *Of[T, K, A, PA]) Insert(v T) int {
	return s.table.InsertData(s.hashKey(v.Key()), func(slot *T) { *slot = v })
}

// FindFirstIndex returns the slot of the most recently inserted value
// with key, or None.
func (s *Of[T, K, A, PA]) FindFirstIndex(key K) int {
	return s.matchFrom(s.table.FindFirstIndex(s.hashKey(key)), key)
}

// FindNextIndex returns the next slot holding the same key as slot i, or
// None.
func (s *Of[T, K, A, PA]) FindNextIndex(i int) int {
	key := (*s.table.At(i)).Key()
	return s.matchFrom(s.table.FindNextIndex(i), key)
}

// matchFrom walks a hash run from i to the first slot whose key equals key.
func (s *Of[T, K, A, PA]) matchFrom(i int, key K) int {
	for i != None && (*s.table.At(i)).Key() != key {
		i = s.table.FindNextIndex(i)
	}
	return i
}

// Find returns a pointer to the first value with key.
func (s *Of[T, K, A, PA]) Find(key K) (*T, bool) {
	i := s.FindFirstIndex(key)
	if i == None {
		return nil, false
	}
	return s.table.At(i), true
}

// Contains reports whether any value has key.
func (s *Of[T, K, A, PA]) Contains(key K) bool {
	return s.FindFirstIndex(key) != None
}

// Count returns the number of values stored under key.
func (s *Of[T, K, A, PA]) Count(key K) int {
	n := 0
	for i := s.FindFirstIndex(key); i != None; i = s.FindNextIndex(i) {
		n++
	}
	return n
}

// SwapRemove removes and returns the value in slot i. The last value moves
// into slot i.
func (s *Of[T, K, A, PA]) SwapRemove(i int) T {
	var v T
	s.table.RemoveData(i, func(slot *T) { v = *slot })
	return v
}

// RemoveAll removes every value whose current key equals key, appending
// them to dst. Pass a small stack array's [:0] to avoid allocating for the
// common single-match case.
func (s *Of[T, K, A, PA]) RemoveAll(key K, dst []T) []T {
	for i := s.FindFirstIndex(key); i != None; i = s.FindFirstIndex(key) {
		dst = append(dst, s.SwapRemove(i))
	}
	return dst
}

// RemoveElement removes the value p points at, if p points into the set's
// live storage.
func (s *Of[T, K, A, PA]) RemoveElement(p *T) (T, bool) {
	i, ok := s.indexOf(p)
	if !ok {
		var zero T
		return zero, false
	}
	return s.SwapRemove(i), true
}

// indexOf maps a pointer into the payload back to its slot.
func (s *Of[T, K, A, PA]) indexOf(p *T) (int, bool) {
	live := s.table.Slice()
	if p == nil || len(live) == 0 {
		return 0, false
	}
	size := unsafe.Sizeof(*p)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(live)))
	addr := uintptr(unsafe.Pointer(p))
	if size == 0 {
		return 0, addr == base
	}
	if addr < base || (addr-base)%size != 0 {
		return 0, false
	}
	i := (addr - base) / size
	if i >= uintptr(len(live)) {
		return 0, false
	}
	return int(i), true
}

// Rehash recomputes the hash of every value whose key may have changed and
// rebuilds the chains.
func (s *Of[T, K, A, PA]) Rehash() {
	if s.table.TableSize() == 0 {
		return
	}
	live := s.table.Slice()
	for i := range live {
		if !immutableKey(&live[i]) {
			s.table.SetHash(i, s.hashKey(live[i].Key()))
		}
	}
	s.table.Rehash(s.table.TableSize())
}

// Clear removes every value. Capacity and table size are kept.
func (s *Of[T, K, A, PA]) Clear() { s.table.Clear(nil) }

// Len returns the number of values.
func (s *Of[T, K, A, PA]) Len() int { return s.table.Len() }

// IsEmpty reports whether the set has no values.
func (s *Of[T, K, A, PA]) IsEmpty() bool { return s.table.IsEmpty() }

// Cap returns the value capacity.
func (s *Of[T, K, A, PA]) Cap() int { return s.table.Cap() }

// Reserve makes room for additional more values.
func (s *Of[T, K, A, PA]) Reserve(additional int) { s.table.Reserve(additional) }

// SetCapacity resizes the value storage, never below Len.
func (s *Of[T, K, A, PA]) SetCapacity(n int) { s.table.SetCapacity(n) }

// At returns a pointer to the value in slot i. Changing its key requires a
// Rehash before the next lookup.
func (s *Of[T, K, A, PA]) At(i int) *T { return s.table.At(i) }

// Get returns the value in slot i.
func (s *Of[T, K, A, PA]) Get(i int) T { return *s.table.At(i) }

// Slice returns the values in slot order.
func (s *Of[T, K, A, PA]) Slice() []T { return s.table.Slice() }

// All yields slot/value pairs in slot order.
func (s *Of[T, K, A, PA]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.table.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}
