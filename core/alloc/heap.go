package alloc

// Heap allocates blocks from the Go heap. It has no state and no size.
type Heap[T any] struct{}

// Acquire implements Allocator.
func (*Heap[T]) Acquire(l Layout, _ []T) []T {
	if l.Len == 0 {
		return nil
	}
	return make([]T, l.Len)
}

// Release implements Allocator. The garbage collector reclaims the block
// once the caller drops it.
func (*Heap[T]) Release([]T, Layout) {}

// Grow implements Allocator: max(minLen, 2*l.Len).
func (*Heap[T]) Grow(l Layout, minLen int) Layout {
	return doubled(l, minLen)
}
