package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutOf(t *testing.T) {
	l := LayoutOf[int64](4)
	assert.Equal(t, 4, l.Len)
	assert.Equal(t, uintptr(8), l.Elem)
	assert.Equal(t, unsafe.Alignof(int64(0)), l.Align)
	assert.Equal(t, uintptr(32), l.Size())

	type pair struct {
		a uint8
		b uint32
	}
	lp := LayoutOf[pair](3)
	assert.Equal(t, unsafe.Sizeof(pair{}), lp.Elem)
	assert.Equal(t, uintptr(4), lp.Align)
	assert.Equal(t, 3*unsafe.Sizeof(pair{}), lp.Size())
}

func TestLayout_WithLenKeepsElement(t *testing.T) {
	l := LayoutOf[uint16](2).WithLen(10)
	assert.Equal(t, 10, l.Len)
	assert.Equal(t, uintptr(2), l.Elem)
	assert.Equal(t, uintptr(20), l.Size())
}

func TestHeap_GrowDoubles(t *testing.T) {
	var h Heap[int]

	// push, push, push from empty: 1, 2, 4
	l := h.Grow(LayoutOf[int](0), 1)
	assert.Equal(t, 1, l.Len)
	l = h.Grow(l, 2)
	assert.Equal(t, 2, l.Len)
	l = h.Grow(l, 3)
	assert.Equal(t, 4, l.Len)

	// A large request wins over doubling.
	l = h.Grow(l, 100)
	assert.Equal(t, 100, l.Len)
	assert.Equal(t, l.Align, LayoutOf[int](0).Align, "alignment preserved")
}

func TestHeap_AcquireRelease(t *testing.T) {
	var h Heap[string]
	assert.Nil(t, h.Acquire(LayoutOf[string](0), nil))

	mem := h.Acquire(LayoutOf[string](5), nil)
	require.Len(t, mem, 5)
	for _, s := range mem {
		assert.Empty(t, s)
	}
	h.Release(mem, LayoutOf[string](5))
	assert.Zero(t, unsafe.Sizeof(h))
}

func TestInline_SizeIsStorage(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof([4]int32{}), unsafe.Sizeof(Inline[int32, [4]int32]{}))
	assert.Equal(t, 4, (&Inline[int32, [4]int32]{}).Cap())
}

func TestInline_ServesSmallLayoutsInline(t *testing.T) {
	var a Inline[int, [4]int]

	mem := a.Acquire(LayoutOf[int](3), nil)
	require.Len(t, mem, 3)
	assert.True(t, a.Owns(mem))

	mem[0] = 7
	assert.Equal(t, 7, a.storage[0], "block aliases embedded storage")
}

func TestInline_SpillsAndStaysOnHeap(t *testing.T) {
	var a Inline[int, [4]int]

	inline := a.Acquire(LayoutOf[int](4), nil)
	require.True(t, a.Owns(inline))

	spilled := a.Acquire(LayoutOf[int](5), inline)
	require.Len(t, spilled, 5)
	assert.False(t, a.Owns(spilled))

	// Shrinking below N while on the heap does not move back inline.
	shrunk := a.Acquire(LayoutOf[int](2), spilled)
	assert.False(t, a.Owns(shrunk))

	// Starting over from nothing may use the storage again.
	fresh := a.Acquire(LayoutOf[int](2), nil)
	assert.True(t, a.Owns(fresh))
}

func TestInline_Grow(t *testing.T) {
	var a Inline[int, [4]int]

	l := a.Grow(LayoutOf[int](0), 1)
	assert.Equal(t, 4, l.Len, "fills the whole inline capacity")

	l = a.Grow(l, 5)
	assert.Equal(t, 8, l.Len, "doubles once spilled")
}

func TestInline_ReleaseOfStorageIsNoop(t *testing.T) {
	var a Inline[int, [2]int]
	mem := a.Acquire(LayoutOf[int](2), nil)
	mem[1] = 9
	a.Release(mem, LayoutOf[int](2))
	assert.Equal(t, 9, a.storage[1])
}

func TestInline_RejectsNonArrayStorage(t *testing.T) {
	var a Inline[int32, int64]
	require.Equal(t, 2, a.Cap())
	require.PanicsWithError(t, "alloc: inline storage must be an array of the element type: int64 is not an array of int32", func() {
		a.Acquire(LayoutOf[int32](1), nil)
	})
}

func TestInline_ZeroSizeElementsUseHeap(t *testing.T) {
	var a Inline[struct{}, [8]struct{}]
	assert.Equal(t, 0, a.Cap())
	mem := a.Acquire(LayoutOf[struct{}](3), nil)
	assert.Len(t, mem, 3)
	assert.False(t, a.Owns(mem))
}

func TestSameBlock(t *testing.T) {
	a := make([]int, 4)
	assert.True(t, SameBlock(a, a[:2]))
	assert.False(t, SameBlock(a, make([]int, 4)))
	assert.False(t, SameBlock[int](nil, a))
}

func TestMapped_AcquireWriteRelease(t *testing.T) {
	var m Mapped
	l := LayoutOf[byte](4096)

	mem := m.Acquire(l, nil)
	require.Len(t, mem, 4096)
	for i := range mem {
		require.Zero(t, mem[i])
	}
	copy(mem, "interned")
	assert.Equal(t, "interned", string(mem[:8]))

	m.Release(mem, l)
	m.Release(nil, l)
	assert.Nil(t, m.Acquire(LayoutOf[byte](0), nil))
}

func TestMapped_Grow(t *testing.T) {
	var m Mapped
	assert.Equal(t, 8192, m.Grow(LayoutOf[byte](4096), 4097).Len)
}
