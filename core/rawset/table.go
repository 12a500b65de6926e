package rawset

import (
	"math"

	"github.com/joshuapare/corekit/core/alloc"
	"github.com/joshuapare/corekit/core/array"
	"github.com/joshuapare/corekit/core/rawbuf"
	"github.com/joshuapare/corekit/internal/assert"
	"github.com/joshuapare/corekit/internal/buf"
	"github.com/joshuapare/corekit/internal/logger"
)

// None marks the absence of an entry index.
const None = -1

const maxLoadFactor = 0.7

// Entry is the chain metadata for one payload slot.
type Entry struct {
	Hash  uint64
	Index int // position of this entry; equals its slot in the table
	Prev  int
	Next  int
}

// Table is an open-chained multimap over payload values of type T.
// The zero value is an empty table with no buckets.
type Table[T any, A any, PA alloc.Strategy[T, A]] struct {
	data    rawbuf.Buffer[T, A, PA]
	entries array.Array[Entry]
	buckets array.Array[int]
}

// WithTableSize returns an empty table with n buckets preallocated.
func WithTableSize[T any, A any, PA alloc.Strategy[T, A]](n int) *Table[T, A, PA] {
	t := &Table[T, A, PA]{}
	if n > 0 {
		t.resetBuckets(n)
	}
	return t
}

func bucketOf(hash uint64, n int) int {
	return int(hash % uint64(n))
}

// FindFirstIndex returns the first entry with the given hash, or None.
func (t *Table[T, A, PA]) FindFirstIndex(hash uint64) int {
	buckets := t.buckets.Slice()
	if len(buckets) == 0 {
		return None
	}
	entries := t.entries.Slice()
	i := buckets[bucketOf(hash, len(buckets))]
	for i != None && entries[i].Hash != hash {
		i = entries[i].Next
	}
	return i
}

// FindNextIndex returns the entry after i in i's run, or None at the end
// of the run. Precondition: i is a live entry.
func (t *Table[T, A, PA]) FindNextIndex(i int) int {
	entries := t.entries.Slice()
	assert.That(buf.InRange(i, len(entries)), "entry %d out of range [0,%d)", i, len(entries))
	next := entries[i].Next
	if next == None || entries[next].Hash != entries[i].Hash {
		return None
	}
	return next
}

func (t *Table[T, A, PA]) isFull() bool {
	n := t.buckets.Len()
	return n == 0 || t.entries.Len() > int(math.Round(float64(n)*maxLoadFactor))
}

func (t *Table[T, A, PA]) resetBuckets(n int) {
	t.buckets.Clear()
	t.buckets.SetCapacity(n)
	t.buckets.InsertRange(0, n, None)
}

// link threads e into its bucket chain: in front of its run if one exists,
// otherwise at the head of the bucket. e.Index must already be set.
func (t *Table[T, A, PA]) link(e *Entry) {
	entries := t.entries.Slice()
	buckets := t.buckets.Slice()
	slot := bucketOf(e.Hash, len(buckets))

	e.Next = t.FindFirstIndex(e.Hash)
	if e.Next == None {
		e.Next = buckets[slot]
	}
	if e.Next == None {
		buckets[slot] = e.Index
		return
	}

	next := &entries[e.Next]
	e.Prev = next.Prev
	next.Prev = e.Index
	if e.Prev == None {
		buckets[slot] = e.Index
	} else {
		entries[e.Prev].Next = e.Index
	}
}

// Rehash rebuilds the chains over size buckets. Precondition: size > 0.
func (t *Table[T, A, PA]) Rehash(size int) {
	assert.That(size > 0, "rehash to %d buckets", size)
	if logger.DebugEnabled() {
		logger.Debug("rawset rehash", "entries", t.entries.Len(), "from", t.buckets.Len(), "to", size)
	}
	t.resetBuckets(size)

	entries := t.entries.Slice()
	for i := range entries {
		entries[i].Prev, entries[i].Next = None, None
	}
	for i := range entries {
		e := entries[i]
		t.link(&e)
		entries[i] = e
	}
}

// InsertData links a new entry with the given hash and constructs its
// payload with ctor. It returns the new entry's index. Duplicate hashes are
// allowed.
func (t *Table[T, A, PA]) InsertData(hash uint64, ctor rawbuf.Ctor[T]) int {
	if t.isFull() {
		t.Rehash(t.buckets.Len()*2 + 8)
	}
	e := Entry{Hash: hash, Index: t.entries.Len(), Prev: None, Next: None}
	t.link(&e)
	t.entries.PushBack(e)
	t.data.AllocateBack(ctor)
	return e.Index
}

// RemoveData unlinks entry i and destructs its payload with dtor. The last
// entry moves into slot i. Precondition: 0 <= i < Len().
func (t *Table[T, A, PA]) RemoveData(i int, dtor rawbuf.Dtor[T]) {
	assert.That(buf.InRange(i, t.entries.Len()), "remove entry %d out of range [0,%d)", i, t.entries.Len())
	swapRemoveLinks(t.entries.Slice(), t.buckets.Slice(), i)
	t.entries.PopBack()
	t.data.SwapRemove(i, dtor)
}

// swapRemoveLinks unlinks entries[index] and moves the last entry into its
// slot, redirecting every link that named the last slot. entries[len-1] is
// left stale for the caller to drop.
func swapRemoveLinks(entries []Entry, buckets []int, index int) {
	last := len(entries) - 1
	removed := entries[index]
	entries[index] = entries[last]

	if removed.Prev == last {
		removed.Prev = index
	}
	if removed.Next == last {
		removed.Next = index
	}

	if removed.Prev == None {
		buckets[bucketOf(removed.Hash, len(buckets))] = removed.Next
	} else {
		entries[removed.Prev].Next = removed.Next
	}
	if removed.Next != None {
		entries[removed.Next].Prev = removed.Prev
	}

	if index == last {
		return
	}

	moved := &entries[index]
	moved.Index = index
	if moved.Prev == None {
		buckets[bucketOf(moved.Hash, len(buckets))] = index
	} else {
		entries[moved.Prev].Next = index
	}
	if moved.Next != None {
		entries[moved.Next].Prev = index
	}
}

// Clear destructs every payload with dtor, drops every entry and empties
// every bucket. Capacity and table size are kept.
func (t *Table[T, A, PA]) Clear(dtor rawbuf.SliceDtor[T]) {
	t.data.Clear(dtor)
	t.entries.Clear()
	buckets := t.buckets.Slice()
	for i := range buckets {
		buckets[i] = None
	}
}

// Cap returns the entry capacity.
func (t *Table[T, A, PA]) Cap() int { return t.entries.Cap() }

// SetCapacity resizes both the entry and payload arrays.
func (t *Table[T, A, PA]) SetCapacity(n int) {
	t.entries.SetCapacity(n)
	t.data.SetCapacity(n)
}

// Reserve makes room for additional more entries.
func (t *Table[T, A, PA]) Reserve(additional int) {
	want, err := buf.CheckGrowth(t.entries.Len(), additional)
	assert.That(err == nil, "reserve: %v", err)
	if want > t.Cap() {
		t.SetCapacity(want)
	}
}

// Free drops the payload block; the table must be empty.
func (t *Table[T, A, PA]) Free() {
	t.data.Free()
	t.entries.Free()
	t.buckets.Free()
}

// Len returns the number of entries.
func (t *Table[T, A, PA]) Len() int { return t.entries.Len() }

// IsEmpty reports whether the table has no entries.
func (t *Table[T, A, PA]) IsEmpty() bool { return t.entries.IsEmpty() }

// TableSize returns the number of buckets.
func (t *Table[T, A, PA]) TableSize() int { return t.buckets.Len() }

// Hash returns the hash stored for entry i.
func (t *Table[T, A, PA]) Hash(i int) uint64 { return t.entries.At(i).Hash }

// SetHash overwrites the hash stored for entry i without relinking it.
// Call Rehash afterwards to restore the chains.
func (t *Table[T, A, PA]) SetHash(i int, h uint64) { t.entries.At(i).Hash = h }

// Entry returns a copy of entry i's metadata.
func (t *Table[T, A, PA]) Entry(i int) Entry { return *t.entries.At(i) }

// At returns a pointer to payload i.
func (t *Table[T, A, PA]) At(i int) *T { return t.data.At(i) }

// Slice returns the live payloads in slot order.
func (t *Table[T, A, PA]) Slice() []T { return t.data.Slice() }
