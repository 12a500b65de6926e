package rawbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/corekit/core/alloc"
	precond "github.com/joshuapare/corekit/internal/assert"
)

type heapBuf[T any] = Buffer[T, alloc.Heap[T], *alloc.Heap[T]]

type inline4 = Buffer[int32, alloc.Inline[int32, [4]int32], *alloc.Inline[int32, [4]int32]]

func set[T any](v T) Ctor[T] {
	return func(slot *T) { *slot = v }
}

func TestBuffer_ZeroValueIsEmpty(t *testing.T) {
	var b heapBuf[int]
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())
	assert.True(t, b.IsEmpty())
	assert.Empty(t, b.Slice())
	assert.Equal(t, 0, b.Layout().Len)
}

func TestBuffer_AllocateBackGrowsThroughAllocator(t *testing.T) {
	var b heapBuf[int]

	caps := make([]int, 0, 5)
	for i := range 5 {
		b.AllocateBack(set(i * 10))
		caps = append(caps, b.Cap())
	}
	assert.Equal(t, []int{1, 2, 4, 4, 8}, caps)
	assert.Equal(t, []int{0, 10, 20, 30, 40}, b.Slice())
	assert.GreaterOrEqual(t, b.Cap(), b.Len())
}

func TestBuffer_NilCtorLeavesZeroValue(t *testing.T) {
	var b heapBuf[string]
	b.AllocateBack(set("x"))
	b.AllocateBack(nil)
	assert.Equal(t, []string{"x", ""}, b.Slice())
}

func TestBuffer_AllocateFrontAndAt(t *testing.T) {
	var b heapBuf[int]
	b.AllocateBack(set(2))
	b.AllocateFront(set(0))
	b.AllocateAt(1, set(1))
	b.AllocateAt(3, set(3))
	b.AllocateAt(0, set(-1))
	assert.Equal(t, []int{-1, 0, 1, 2, 3}, b.Slice())
}

func TestBuffer_AllocateRangeShiftsTailOnce(t *testing.T) {
	var b heapBuf[int]
	for _, v := range []int{1, 2, 3} {
		b.AllocateBack(set(v))
	}

	calls := 0
	b.AllocateRange(1, 3, func(slot *int) {
		// The tail is already in its final slots when the first new
		// element is constructed.
		assert.Equal(t, []int{2, 3}, b.data[4:6])
		calls++
		*slot = 10 * calls
	})
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 10, 20, 30, 2, 3}, b.Slice())

	b.AllocateRange(b.Len(), 0, set(7))
	assert.Equal(t, 6, b.Len())
	b.AllocateRange(b.Len(), 2, nil)
	assert.Equal(t, []int{1, 10, 20, 30, 2, 3, 0, 0}, b.Slice())
}

func TestBuffer_SwapRemove(t *testing.T) {
	var b heapBuf[string]
	for _, s := range []string{"a", "b", "c", "d"} {
		b.AllocateBack(set(s))
	}

	var dropped []string
	dtor := func(slot *string) { dropped = append(dropped, *slot) }

	b.SwapRemove(1, dtor)
	assert.Equal(t, []string{"a", "d", "c"}, b.Slice())
	assert.Equal(t, []string{"b"}, dropped, "moved-from slot is not destructed")
	assert.Empty(t, b.data[3], "vacated slot is zeroed")

	// Removing the last element moves nothing.
	b.SwapRemove(2, dtor)
	assert.Equal(t, []string{"a", "d"}, b.Slice())
	assert.Equal(t, []string{"b", "c"}, dropped)
	assert.Equal(t, 4, b.Cap())
}

func TestBuffer_RemoveShifts(t *testing.T) {
	var b heapBuf[int]
	for i := range 5 {
		b.AllocateBack(set(i))
	}
	var got int
	b.Remove(1, func(slot *int) { got = *slot })
	assert.Equal(t, 1, got)
	assert.Equal(t, []int{0, 2, 3, 4}, b.Slice())
	assert.Zero(t, b.data[4])

	b.Remove(3, nil)
	assert.Equal(t, []int{0, 2, 3}, b.Slice())
}

func TestBuffer_ClearKeepsCapacity(t *testing.T) {
	var b heapBuf[*int]
	for i := range 3 {
		b.AllocateBack(set(&i))
	}
	capBefore := b.Cap()

	var seen int
	b.Clear(func(live []*int) { seen = len(live) })
	assert.Equal(t, 3, seen)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, capBefore, b.Cap())
	for _, p := range b.data {
		assert.Nil(t, p)
	}

	b.Clear(nil)
	assert.True(t, b.IsEmpty())
}

func TestBuffer_SetCapacity(t *testing.T) {
	b := WithCapacity[int, alloc.Heap[int]](8)
	assert.Equal(t, 8, b.Cap())

	for i := range 3 {
		b.AllocateBack(set(i))
	}

	// Clamped to the live count.
	b.SetCapacity(1)
	assert.Equal(t, 3, b.Cap())
	assert.Equal(t, []int{0, 1, 2}, b.Slice())

	b.SetCapacity(16)
	assert.Equal(t, 16, b.Cap())
	assert.Equal(t, []int{0, 1, 2}, b.Slice())

	b.Clear(nil)
	b.Free()
	assert.Equal(t, 0, b.Cap())
	assert.Nil(t, b.data)
}

func TestBuffer_Reserve(t *testing.T) {
	var b heapBuf[int]
	b.Reserve(10)
	assert.Equal(t, 10, b.Cap())

	for i := range 10 {
		b.AllocateBack(set(i))
	}
	assert.Equal(t, 10, b.Cap(), "no growth while reserved room lasts")

	b.Reserve(0)
	assert.Equal(t, 10, b.Cap())

	b.Reserve(1)
	assert.Equal(t, 20, b.Cap(), "reserve past capacity doubles")
}

func TestBuffer_At(t *testing.T) {
	var b heapBuf[int]
	b.AllocateBack(set(7))
	*b.At(0) = 8
	assert.Equal(t, []int{8}, b.Slice())
}

func TestBuffer_AtBetweenLenAndCap(t *testing.T) {
	b := WithCapacity[int, alloc.Heap[int]](4)
	b.AllocateBack(set(1))

	if precond.Enabled {
		require.Panics(t, func() { b.At(2) })
		return
	}
	// Release builds do not check [Len, Cap): the slot is spare zeroed room.
	require.NotPanics(t, func() { assert.Zero(t, *b.At(2)) })
	require.Panics(t, func() { b.At(4) }, "past capacity is a runtime bounds failure")
}

func TestBuffer_InlineServesThenSpills(t *testing.T) {
	var b inline4
	a := b.Allocator()

	b.AllocateBack(set[int32](1))
	assert.Equal(t, 4, b.Cap(), "inline growth takes all of N at once")
	assert.True(t, a.Owns(b.data))

	for i := int32(2); i <= 4; i++ {
		b.AllocateBack(set(i))
	}
	assert.True(t, a.Owns(b.data))

	b.AllocateBack(set[int32](5))
	assert.Equal(t, 8, b.Cap())
	assert.False(t, a.Owns(b.data))
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, b.Slice())

	// Shrinking below N does not move back inline.
	for b.Len() > 2 {
		b.SwapRemove(b.Len()-1, nil)
	}
	b.SetCapacity(2)
	assert.Equal(t, 2, b.Cap())
	assert.False(t, a.Owns(b.data))
	assert.Equal(t, []int32{1, 2}, b.Slice())
}

func TestBuffer_InlineShrinkInPlace(t *testing.T) {
	var b inline4
	for i := range int32(3) {
		b.AllocateBack(set(i))
	}
	b.SetCapacity(3)
	assert.Equal(t, 3, b.Cap())
	assert.True(t, b.Allocator().Owns(b.data))
	assert.Equal(t, []int32{0, 1, 2}, b.Slice())
}
