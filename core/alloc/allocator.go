package alloc

import "unsafe"

// Allocator acquires, releases and sizes blocks of T.
type Allocator[T any] interface {
	// Acquire returns a block of exactly l.Len elements. current is the
	// block the caller holds right now (nil if none); strategies may use it
	// to decide where the new block lives. Acquire never returns a short
	// block: allocation failure panics.
	Acquire(l Layout, current []T) []T

	// Release gives back a block previously returned by Acquire.
	Release(mem []T, l Layout)

	// Grow returns the layout of the block that should replace one of
	// layout l when at least minLen elements are needed. The element size
	// and alignment are preserved.
	Grow(l Layout, minLen int) Layout
}

// Strategy is the constraint containers use to embed an allocator A by value
// while calling its pointer methods.
type Strategy[T, A any] interface {
	*A
	Allocator[T]
}

// SameBlock reports whether a and b start at the same address. Containers use
// it to avoid releasing a block that Acquire handed straight back.
func SameBlock[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
