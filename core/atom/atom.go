package atom

import (
	"strings"
	"unsafe"
)

// Atom is an interned string. The zero Atom is the empty string.
//
// Atoms are comparable with ==, which compares the stored pointer and
// hash rather than the text.
type Atom struct {
	hash uint64
	ptr  *byte
	n    int
}

// String returns the canonical text: the casing of the first string
// interned under this atom.
func (a Atom) String() string {
	if a.ptr == nil {
		return ""
	}
	return unsafe.String(a.ptr, a.n)
}

// Len returns the length of the canonical text in bytes.
func (a Atom) Len() int { return a.n }

// Hash returns the case-folded FNV-1a hash. It makes Atom usable as a
// set.HashMethod key.
func (a Atom) Hash() uint64 { return a.hash }

// IsNone reports whether a is the zero Atom.
func (a Atom) IsNone() bool { return a.ptr == nil }

// Compare orders atoms by their canonical text.
func Compare(a, b Atom) int {
	if a == b {
		return 0
	}
	return strings.Compare(a.String(), b.String())
}
