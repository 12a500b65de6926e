package alloc

import (
	"fmt"

	"github.com/joshuapare/corekit/internal/logger"
)

// Mapped allocates byte blocks directly from the operating system, outside
// the Go heap. Blocks must be released explicitly; the garbage collector
// never frees or scans them. On platforms without a mapping primitive
// Mapped falls back to heap blocks (see OffHeap).
type Mapped struct{}

// OffHeap reports whether Mapped blocks really live outside the Go heap on
// this platform.
func (*Mapped) OffHeap() bool { return mappedOffHeap }

// Acquire implements Allocator. A mapping failure panics.
func (*Mapped) Acquire(l Layout, _ []byte) []byte {
	if l.Len == 0 {
		return nil
	}
	mem, err := mapBlock(l.Len)
	if err != nil {
		panic(fmt.Errorf("%w: %d bytes: %w", ErrMapFailed, l.Len, err))
	}
	if logger.DebugEnabled() {
		logger.Debug("mapped block", "bytes", l.Len, "offHeap", mappedOffHeap)
	}
	return mem
}

// Release implements Allocator. Releasing a block twice, or releasing a
// block that did not come from Acquire, is undefined.
func (*Mapped) Release(mem []byte, _ Layout) {
	if cap(mem) == 0 {
		return
	}
	if err := unmapBlock(mem); err != nil {
		logger.Warn("unmap failed", "bytes", cap(mem), "error", err)
	}
}

// Grow implements Allocator: max(minLen, 2*l.Len).
func (*Mapped) Grow(l Layout, minLen int) Layout {
	return doubled(l, minLen)
}
