// Package array provides an ordered, growable sequence whose storage comes
// from a pluggable allocator.
//
// Array[T] keeps its elements on the Go heap. Inline[T, S] embeds S = [N]T
// and keeps up to N elements inside the array value itself before spilling:
//
//	var small array.Inline[int32, [4]int32]
//	small.PushBack(1) // no heap allocation
//
// Arrays are not safe for concurrent use and must not be copied once
// populated.
package array

import (
	"iter"

	"github.com/joshuapare/corekit/core/alloc"
	"github.com/joshuapare/corekit/core/rawbuf"
	"github.com/joshuapare/corekit/internal/assert"
)

// Of is an array of T backed by allocator A. Most code uses the Array or
// Inline aliases.
type Of[T any, A any, PA alloc.Strategy[T, A]] struct {
	buf rawbuf.Buffer[T, A, PA]
}

// Array is a heap-backed array.
type Array[T any] = Of[T, alloc.Heap[T], *alloc.Heap[T]]

// Inline is an array with inline storage S, which must be [N]T.
type Inline[T any, S any] = Of[T, alloc.Inline[T, S], *alloc.Inline[T, S]]

// Cloner is implemented by element types that need more than a shallow
// copy when InsertRange replicates a value.
type Cloner[T any] interface {
	Clone() T
}

// WithCapacity returns an empty array with room for n elements.
func WithCapacity[T any, A any, PA alloc.Strategy[T, A]](n int) *Of[T, A, PA] {
	a := &Of[T, A, PA]{}
	a.buf.SetCapacity(n)
	return a
}

// From returns a heap array holding vals in order.
func From[T any](vals ...T) *Array[T] {
	a := WithCapacity[T, alloc.Heap[T]](len(vals))
	for _, v := range vals {
		a.PushBack(v)
	}
	return a
}

func value[T any](v T) rawbuf.Ctor[T] {
	return func(slot *T) { *slot = v }
}

func clone[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// Cap returns the number of elements the array can hold without growing.
func (a *Of[T, A, PA]) Cap() int { return a.buf.Cap() }

// Len returns the number of elements.
func (a *Of[T, A, PA]) Len() int { return a.buf.Len() }

// IsEmpty reports whether the array has no elements.
func (a *Of[T, A, PA]) IsEmpty() bool { return a.buf.IsEmpty() }

// Reserve makes room for at least additional more elements.
func (a *Of[T, A, PA]) Reserve(additional int) { a.buf.Reserve(additional) }

// SetCapacity resizes the backing block to n elements, never below Len.
func (a *Of[T, A, PA]) SetCapacity(n int) { a.buf.SetCapacity(n) }

// PushFront inserts v before the first element. O(Len()).
func (a *Of[T, A, PA]) PushFront(v T) { a.buf.AllocateFront(value(v)) }

// PushBack appends v. O(1) amortized.
func (a *Of[T, A, PA]) PushBack(v T) { a.buf.AllocateBack(value(v)) }

// Insert places v at index i, shifting later elements up.
// Precondition: 0 <= i <= Len().
func (a *Of[T, A, PA]) Insert(i int, v T) { a.buf.AllocateAt(i, value(v)) }

// InsertRange fills [start, end) with copies of v, shifting the elements
// that were at start and beyond to end and beyond. Values implementing
// Cloner are cloned for every slot. Precondition: 0 <= start <= Len() and
// start <= end.
func (a *Of[T, A, PA]) InsertRange(start, end int, v T) {
	assert.That(start >= 0 && start <= a.Len(), "insert range start %d out of range [0,%d]", start, a.Len())
	assert.That(start <= end, "insert range [%d,%d) is reversed", start, end)
	a.buf.AllocateRange(start, end-start, func(slot *T) { *slot = clone(v) })
}

func take[T any](out *T) rawbuf.Dtor[T] {
	return func(slot *T) { *out = *slot }
}

// Remove deletes and returns the element at i, preserving order. O(Len()).
func (a *Of[T, A, PA]) Remove(i int) T {
	var v T
	a.buf.Remove(i, take(&v))
	return v
}

// SwapRemove deletes and returns the element at i, moving the last element
// into its place. O(1).
func (a *Of[T, A, PA]) SwapRemove(i int) T {
	var v T
	a.buf.SwapRemove(i, take(&v))
	return v
}

// PopFront removes and returns the first element. Precondition: !IsEmpty().
func (a *Of[T, A, PA]) PopFront() T {
	assert.That(!a.IsEmpty(), "pop from empty array")
	return a.Remove(0)
}

// PopBack removes and returns the last element. Precondition: !IsEmpty().
func (a *Of[T, A, PA]) PopBack() T {
	assert.That(!a.IsEmpty(), "pop from empty array")
	return a.SwapRemove(a.Len() - 1)
}

// Clear removes every element and keeps the capacity.
func (a *Of[T, A, PA]) Clear() { a.buf.Clear(nil) }

// Free empties the array and releases its block.
func (a *Of[T, A, PA]) Free() {
	a.buf.Clear(nil)
	a.buf.Free()
}

// At returns a pointer to the element at i. The pointer is invalidated by
// anything that grows, shrinks or reorders the array.
func (a *Of[T, A, PA]) At(i int) *T { return a.buf.At(i) }

// Get returns the element at i.
func (a *Of[T, A, PA]) Get(i int) T { return *a.buf.At(i) }

// Set overwrites the element at i.
func (a *Of[T, A, PA]) Set(i int, v T) { *a.buf.At(i) = v }

// Slice returns the elements as a slice aliasing the array's storage.
func (a *Of[T, A, PA]) Slice() []T { return a.buf.Slice() }

// All yields index/value pairs in order.
func (a *Of[T, A, PA]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.buf.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Pointers yields index/pointer pairs in order so elements can be updated
// in place. The array must not change length while iterating.
func (a *Of[T, A, PA]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		s := a.buf.Slice()
		for i := range s {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}
