//go:build windows

package alloc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const mappedOffHeap = true

// mapBlock commits n zeroed read-write bytes.
func mapBlock(n int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(n), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n), nil //nolint:govet // address owned by VirtualAlloc, not the Go heap
}

// unmapBlock releases the whole reservation that starts at mem.
func unmapBlock(mem []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(unsafe.SliceData(mem))), 0, windows.MEM_RELEASE)
}
