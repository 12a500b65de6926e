package set

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"

	"github.com/joshuapare/corekit/internal/fnv"
)

// Item is a value that carries its own key.
type Item[K comparable] interface {
	Key() K
}

// ImmutableKeyer is implemented by items that can promise their key never
// changes while stored.
type ImmutableKeyer interface {
	ImmutableKey() bool
}

// Hasher hashes a key.
type Hasher[K any] func(K) uint64

// Integer is the set of key types HashInt accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// HashInt uses the integer itself as its hash.
func HashInt[K Integer](k K) uint64 { return uint64(k) }

// HashString hashes a string key with FNV-1a.
func HashString[K ~string](k K) uint64 { return uint64(fnv.String(string(k))) }

// HashStringXX hashes a string key with 64-bit xxHash. It spreads long
// keys better than HashString at the cost of a wider state.
func HashStringXX[K ~string](k K) uint64 { return xxhash.Sum64String(string(k)) }

var comparableSeed = maphash.MakeSeed()

// HashComparable hashes any comparable key with a per-process seed. Sets
// and maps built without a hasher use it. Hashes differ between runs.
func HashComparable[K comparable](k K) uint64 { return maphash.Comparable(comparableSeed, k) }

// HashMethod hashes keys that know their own hash, such as atom.Atom.
func HashMethod[K interface{ Hash() uint64 }](k K) uint64 { return k.Hash() }

func immutableKey[T any](v *T) bool {
	k, ok := any(*v).(ImmutableKeyer)
	return ok && k.ImmutableKey()
}
