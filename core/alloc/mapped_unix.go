//go:build linux || darwin || freebsd

package alloc

import (
	"golang.org/x/sys/unix"
)

const mappedOffHeap = true

// mapBlock maps n zeroed, private, anonymous bytes.
func mapBlock(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// unmapBlock unmaps a block returned by mapBlock. x/sys tracks mappings by
// their last byte, so mem may be any reslice that kept the original cap.
func unmapBlock(mem []byte) error {
	return unix.Munmap(mem[:cap(mem)])
}
