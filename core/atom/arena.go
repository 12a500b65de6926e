package atom

import (
	"github.com/joshuapare/corekit/core/alloc"
	"github.com/joshuapare/corekit/internal/logger"
)

// arena hands out immutable byte ranges from fixed-size slabs. Slabs are
// never resized, so pointers into them stay valid until release.
type arena struct {
	alloc    alloc.Allocator[byte]
	slabSize int
	slabs    [][]byte
	free     []byte
	used     int
}

func newArena(a alloc.Allocator[byte], slabSize int) arena {
	return arena{alloc: a, slabSize: slabSize}
}

// copyString stores s and returns a pointer to the stored bytes.
// Precondition: 0 < len(s) <= slabSize.
func (a *arena) copyString(s string) *byte {
	if len(a.free) < len(s) {
		slab := a.alloc.Acquire(alloc.LayoutOf[byte](a.slabSize), nil)
		a.slabs = append(a.slabs, slab)
		a.free = slab
		if logger.DebugEnabled() {
			logger.Debug("atom slab acquired", "bytes", a.slabSize, "slabs", len(a.slabs))
		}
	}
	dst := a.free[:len(s):len(s)]
	a.free = a.free[len(s):]
	copy(dst, s)
	a.used += len(s)
	return &dst[0]
}

func (a *arena) release() {
	for _, slab := range a.slabs {
		a.alloc.Release(slab, alloc.LayoutOf[byte](len(slab)))
	}
	a.slabs = nil
	a.free = nil
	a.used = 0
}
