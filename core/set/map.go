package set

import (
	"fmt"
	"iter"
)

// Entry is a Map key/value pair. The key is fixed once inserted.
type Entry[K comparable, V any] struct {
	key   K
	Value V
}

// Key implements Item.
func (e Entry[K, V]) Key() K { return e.key }

// ImmutableKey implements ImmutableKeyer.
func (Entry[K, V]) ImmutableKey() bool { return true }

// Map is a hash map with unique keys. The zero value is an empty map
// hashing keys with HashComparable.
type Map[K comparable, V any] struct {
	set Set[Entry[K, V], K]
}

// NewMap returns an empty map hashing keys with hash.
func NewMap[K comparable, V any](hash Hasher[K]) *Map[K, V] {
	m := &Map[K, V]{}
	m.set.hash = hash
	return m
}

// Insert stores v under k. If k was present its value is replaced and the
// previous value returned with replaced = true.
func (m *Map[K, V]) Insert(k K, v V) (old V, replaced bool) {
	if e, ok := m.set.Find(k); ok {
		old, e.Value = e.Value, v
		return old, true
	}
	m.set.Insert(Entry[K, V]{key: k, Value: v})
	return old, false
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if e, ok := m.set.Find(k); ok {
		return e.Value, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the value stored under k. The pointer is
// invalidated by the next insert or removal.
func (m *Map[K, V]) GetMut(k K) (*V, bool) {
	if e, ok := m.set.Find(k); ok {
		return &e.Value, true
	}
	return nil, false
}

// MustGet returns the value stored under k and panics if there is none.
func (m *Map[K, V]) MustGet(k K) V {
	v, ok := m.Get(k)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrKeyNotFound, k))
	}
	return v
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool { return m.set.Contains(k) }

// Remove deletes k and returns its value.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	var one [1]Entry[K, V]
	removed := m.set.RemoveAll(k, one[:0])
	if len(removed) == 0 {
		var zero V
		return zero, false
	}
	return removed[0].Value, true
}

// GetOrInsertMut returns a pointer to the value under k, inserting v first
// if k is absent.
func (m *Map[K, V]) GetOrInsertMut(k K, v V) *V {
	i := m.set.FindFirstIndex(k)
	if i == None {
		i = m.set.Insert(Entry[K, V]{key: k, Value: v})
	}
	return &m.set.At(i).Value
}

// GetOrInsertDefaultMut is GetOrInsertMut with the zero value.
func (m *Map[K, V]) GetOrInsertDefaultMut(k K) *V {
	var zero V
	return m.GetOrInsertMut(k, zero)
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int { return m.set.Len() }

// IsEmpty reports whether the map has no keys.
func (m *Map[K, V]) IsEmpty() bool { return m.set.IsEmpty() }

// Cap returns the entry capacity.
func (m *Map[K, V]) Cap() int { return m.set.Cap() }

// Reserve makes room for additional more keys.
func (m *Map[K, V]) Reserve(additional int) { m.set.Reserve(additional) }

// SetCapacity resizes the entry storage, never below Len.
func (m *Map[K, V]) SetCapacity(n int) { m.set.SetCapacity(n) }

// Clear removes every key.
func (m *Map[K, V]) Clear() { m.set.Clear() }

// All yields key/value pairs in storage order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.set.Slice() {
			if !yield(e.key, e.Value) {
				return
			}
		}
	}
}

// Keys yields every key in storage order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.set.Slice() {
			if !yield(e.key) {
				return
			}
		}
	}
}
