// Package rawbuf implements the growable, capacity-tracked element buffer
// underneath every corekit container.
//
// A Buffer knows nothing about what its elements mean: callers place
// values with a constructor callback and take them out with a destructor
// callback, and the buffer only moves them around. Only [0, Len()) is live;
// the rest of the block up to Cap() is zeroed spare room.
//
// Buffers are not safe for concurrent use and must not be copied after
// first use (an Inline allocator would leave the copy aliasing the
// original's storage).
package rawbuf

import (
	"github.com/joshuapare/corekit/core/alloc"
	"github.com/joshuapare/corekit/internal/assert"
	"github.com/joshuapare/corekit/internal/buf"
)

// Ctor initializes a freshly allocated, zeroed slot.
type Ctor[T any] func(slot *T)

// Dtor consumes a slot that is about to be vacated.
type Dtor[T any] func(slot *T)

// SliceDtor consumes every live slot at once.
type SliceDtor[T any] func(live []T)

// Buffer is a growable block of T whose storage comes from the allocator A.
// The zero value is an empty buffer with capacity 0.
type Buffer[T any, A any, PA alloc.Strategy[T, A]] struct {
	alloc A // first: a trailing zero-size field would be padded
	data  []T
	count int
}

// WithCapacity returns a buffer whose capacity is exactly n.
func WithCapacity[T any, A any, PA alloc.Strategy[T, A]](n int) *Buffer[T, A, PA] {
	b := &Buffer[T, A, PA]{}
	b.SetCapacity(n)
	return b
}

// Len returns the number of live elements.
func (b *Buffer[T, A, PA]) Len() int { return b.count }

// Cap returns the number of elements the current block holds.
func (b *Buffer[T, A, PA]) Cap() int { return len(b.data) }

// IsEmpty reports whether there are no live elements.
func (b *Buffer[T, A, PA]) IsEmpty() bool { return b.count == 0 }

// Layout returns the layout of the current block.
func (b *Buffer[T, A, PA]) Layout() alloc.Layout {
	return alloc.LayoutOf[T](len(b.data))
}

// Allocator exposes the embedded allocator.
func (b *Buffer[T, A, PA]) Allocator() PA { return PA(&b.alloc) }

// Slice returns the live elements. The slice aliases the buffer and is
// invalidated by any operation that changes the buffer's length or
// capacity.
func (b *Buffer[T, A, PA]) Slice() []T { return b.data[:b.count:b.count] }

// At returns a pointer to slot i. Precondition: 0 <= i < Len().
func (b *Buffer[T, A, PA]) At(i int) *T {
	assert.That(buf.InRange(i, b.count), "index %d out of range [0,%d)", i, b.count)
	return &b.data[i]
}

// SetCapacity moves the live elements into a block of n elements. n is
// clamped to Len() so live data is never truncated; asking for the current
// capacity is a no-op. A capacity of 0 releases the block.
func (b *Buffer[T, A, PA]) SetCapacity(n int) {
	n = max(n, b.count)
	if n == len(b.data) {
		return
	}
	a := PA(&b.alloc)
	old := b.data
	next := a.Acquire(alloc.LayoutOf[T](n), old)
	if !alloc.SameBlock(old, next) {
		copy(next, old[:b.count])
		if cap(old) > 0 {
			clear(old[:b.count])
			a.Release(old, alloc.LayoutOf[T](len(old)))
		}
	} else if n < len(old) {
		clear(old[n:])
	}
	b.data = next
}

// Reserve makes room for additional more elements, growing through the
// allocator's policy only when the current block is too small.
func (b *Buffer[T, A, PA]) Reserve(additional int) {
	want, err := buf.CheckGrowth(b.count, additional)
	assert.That(err == nil, "reserve: %v", err)
	if want > len(b.data) {
		b.SetCapacity(PA(&b.alloc).Grow(b.Layout(), want).Len)
	}
}

// Free releases the block. The buffer must be empty; call Clear first.
func (b *Buffer[T, A, PA]) Free() {
	assert.That(b.count == 0, "free of buffer holding %d elements", b.count)
	b.SetCapacity(0)
}

func (b *Buffer[T, A, PA]) growIfFull() {
	if b.count == len(b.data) {
		b.SetCapacity(PA(&b.alloc).Grow(b.Layout(), b.count+1).Len)
	}
}

func construct[T any](slot *T, ctor Ctor[T]) {
	var zero T
	*slot = zero
	if ctor != nil {
		ctor(slot)
	}
}

// AllocateFront shifts every live element up one slot and constructs a new
// element in slot 0. O(Len()).
func (b *Buffer[T, A, PA]) AllocateFront(ctor Ctor[T]) {
	b.growIfFull()
	copy(b.data[1:b.count+1], b.data[:b.count])
	construct(&b.data[0], ctor)
	b.count++
}

// AllocateBack constructs a new element after the last live one.
// O(1) amortized.
func (b *Buffer[T, A, PA]) AllocateBack(ctor Ctor[T]) {
	b.growIfFull()
	construct(&b.data[b.count], ctor)
	b.count++
}

// AllocateAt constructs a new element at index, shifting the tail up one
// slot. Precondition: 0 <= index <= Len().
func (b *Buffer[T, A, PA]) AllocateAt(index int, ctor Ctor[T]) {
	assert.That(index >= 0 && index <= b.count, "insert index %d out of range [0,%d]", index, b.count)
	switch index {
	case 0:
		b.AllocateFront(ctor)
	case b.count:
		b.AllocateBack(ctor)
	default:
		b.growIfFull()
		copy(b.data[index+1:b.count+1], b.data[index:b.count])
		construct(&b.data[index], ctor)
		b.count++
	}
}

// AllocateRange constructs n new elements at [index, index+n), shifting
// the tail up n slots in a single move. ctor runs once per new slot, in
// index order. Precondition: 0 <= index <= Len() and n >= 0.
func (b *Buffer[T, A, PA]) AllocateRange(index, n int, ctor Ctor[T]) {
	assert.That(index >= 0 && index <= b.count, "insert index %d out of range [0,%d]", index, b.count)
	assert.That(n >= 0, "negative range length %d", n)
	if n == 0 {
		return
	}
	b.Reserve(n)
	copy(b.data[index+n:b.count+n], b.data[index:b.count])
	for i := index; i < index+n; i++ {
		construct(&b.data[i], ctor)
	}
	b.count += n
}

// SwapRemove destructs slot index and moves the last live element into it.
// The moved-from slot is not destructed again. O(1).
// Precondition: 0 <= index < Len().
func (b *Buffer[T, A, PA]) SwapRemove(index int, dtor Dtor[T]) {
	assert.That(buf.InRange(index, b.count), "remove index %d out of range [0,%d)", index, b.count)
	if dtor != nil {
		dtor(&b.data[index])
	}
	b.count--
	if index != b.count {
		b.data[index] = b.data[b.count]
	}
	var zero T
	b.data[b.count] = zero
}

// Remove destructs slot index and shifts every following element down one
// slot. O(Len()). Precondition: 0 <= index < Len().
func (b *Buffer[T, A, PA]) Remove(index int, dtor Dtor[T]) {
	assert.That(buf.InRange(index, b.count), "remove index %d out of range [0,%d)", index, b.count)
	if dtor != nil {
		dtor(&b.data[index])
	}
	copy(b.data[index:], b.data[index+1:b.count])
	b.count--
	var zero T
	b.data[b.count] = zero
}

// Clear hands every live element to dtor as one slice and empties the
// buffer. Capacity is retained. The slice is zeroed once dtor returns, so
// dtor must not keep it.
func (b *Buffer[T, A, PA]) Clear(dtor SliceDtor[T]) {
	live := b.data[:b.count]
	b.count = 0
	if dtor != nil {
		dtor(live)
	}
	clear(live)
}
