//go:build !linux && !darwin && !freebsd && !windows

package alloc

const mappedOffHeap = false

func mapBlock(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func unmapBlock([]byte) error { return nil }
