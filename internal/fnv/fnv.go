// Package fnv implements 32-bit FNV-1a string hashing, with a variant that
// lowercases ASCII inline so case-insensitive keys hash without allocating.
package fnv

// FNV-1a constants for 32-bit hash.
const (
	Basis32 uint32 = 2166136261
	Prime32 uint32 = 16777619
)

// String computes the FNV-1a hash of s.
func String(s string) uint32 {
	h := Basis32
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= Prime32
	}
	return h
}

// StringLower computes the FNV-1a hash of s, lowercasing ASCII as it goes.
// This is the hot path for case-insensitive keys.
func StringLower(s string) uint32 {
	h := Basis32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		h ^= uint32(c)
		h *= Prime32
	}
	return h
}
