package alloc

import (
	"unsafe"

	"github.com/joshuapare/corekit/internal/assert"
	"github.com/joshuapare/corekit/internal/buf"
)

// Layout describes a block of Len elements of Elem bytes each, aligned to
// Align.
type Layout struct {
	Len   int
	Elem  uintptr
	Align uintptr
}

// LayoutOf returns the layout of a block holding n values of type T.
func LayoutOf[T any](n int) Layout {
	var zero T
	l := Layout{Len: n, Elem: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
	_, ok := buf.ByteSize(n, l.Elem)
	assert.That(ok, "layout of %d elements of %d bytes overflows", n, l.Elem)
	return l
}

// Size returns the block size in bytes.
func (l Layout) Size() uintptr {
	return uintptr(l.Len) * l.Elem
}

// WithLen returns the same element layout resized to n elements.
func (l Layout) WithLen(n int) Layout {
	_, ok := buf.ByteSize(n, l.Elem)
	assert.That(ok, "layout of %d elements of %d bytes overflows", n, l.Elem)
	l.Len = n
	return l
}

// doubled is the heap growth policy: at least minLen, at least twice the
// current length.
func doubled(l Layout, minLen int) Layout {
	assert.That(minLen > l.Len, "grow to %d elements from %d", minLen, l.Len)
	n, ok := buf.MulOverflowSafe(l.Len, 2)
	if !ok || n < minLen {
		n = minLen
	}
	return l.WithLen(n)
}
