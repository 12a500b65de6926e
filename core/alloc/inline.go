package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/corekit/internal/logger"
)

// Inline embeds S, which must be an array type [N]T, and serves blocks of
// up to N elements from it. Larger blocks come from the heap.
//
// The struct is exactly S: a container embedding Inline grows by
// N*sizeof(T) bytes and nothing else. Whether the current block is the
// embedded one is decided by pointer identity.
//
// An Inline value must not be copied once it has handed out its storage.
type Inline[T any, S any] struct {
	storage S
}

// Cap returns N, the number of elements the embedded storage holds.
func (a *Inline[T, S]) Cap() int {
	return inlineLen[T, S]()
}

// Acquire implements Allocator. The embedded storage is returned when the
// layout fits and the caller is not already on a heap block.
func (a *Inline[T, S]) Acquire(l Layout, current []T) []T {
	if l.Len == 0 {
		return nil
	}
	n := inlineLen[T, S]()
	spilled := cap(current) > 0 && !a.Owns(current)
	if l.Len <= n && !spilled {
		return a.storageSlice()[:l.Len]
	}
	if !spilled && logger.DebugEnabled() {
		logger.Debug("inline storage spilled to heap", "inline", n, "len", l.Len)
	}
	return make([]T, l.Len)
}

// Release implements Allocator. Releasing the embedded storage is a no-op.
func (a *Inline[T, S]) Release([]T, Layout) {}

// Grow implements Allocator. While minLen fits inline the whole inline
// capacity is used; beyond that growth doubles like Heap.
func (a *Inline[T, S]) Grow(l Layout, minLen int) Layout {
	if n := inlineLen[T, S](); minLen <= n {
		return l.WithLen(n)
	}
	return doubled(l, minLen)
}

// Owns reports whether mem is backed by the embedded storage.
func (a *Inline[T, S]) Owns(mem []T) bool {
	if cap(mem) == 0 || inlineLen[T, S]() == 0 {
		return false
	}
	return unsafe.SliceData(mem) == (*T)(unsafe.Pointer(&a.storage))
}

func (a *Inline[T, S]) storageSlice() []T {
	mustBeArrayOf[T, S]()
	return unsafe.Slice((*T)(unsafe.Pointer(&a.storage)), inlineLen[T, S]())
}

// inlineLen is N for S = [N]T. Zero-size element types never use inline
// storage.
func inlineLen[T, S any]() int {
	var t T
	var s S
	if unsafe.Sizeof(t) == 0 {
		return 0
	}
	return int(unsafe.Sizeof(s) / unsafe.Sizeof(t))
}

// mustBeArrayOf rejects storage types that are not [N]T. Viewing any other
// type as []T would hide pointers from the garbage collector.
func mustBeArrayOf[T, S any]() {
	st := reflect.TypeFor[S]()
	if st.Kind() != reflect.Array || st.Elem() != reflect.TypeFor[T]() {
		panic(fmt.Errorf("%w: %v is not an array of %v", ErrInlineStorage, st, reflect.TypeFor[T]()))
	}
}
