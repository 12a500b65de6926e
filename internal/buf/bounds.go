// Package buf holds overflow-checked arithmetic for capacity and layout
// calculations.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is what count * elementSize calculations go through before a block is acquired.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// ByteSize returns n * elemSize in bytes, or ok = false if n is negative or
// the product does not fit in an int.
func ByteSize(n int, elemSize uintptr) (int, bool) {
	if n < 0 || elemSize > math.MaxInt {
		return 0, false
	}
	return MulOverflowSafe(n, int(elemSize))
}

// CheckGrowth validates a count + additional capacity request and returns
// the wanted capacity:
//
//	want, err := buf.CheckGrowth(b.Len(), additional)
//	if err != nil {
//	    panic(err)
//	}
func CheckGrowth(count, additional int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if additional < 0 {
		return 0, fmt.Errorf("negative additional capacity: %d", additional)
	}
	want, ok := AddOverflowSafe(count, additional)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d + additional=%d", count, additional)
	}
	return want, nil
}

// InRange reports whether index lies in [0, n).
func InRange(index, n int) bool {
	return index >= 0 && index < n
}
