package set

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_InsertReplaces(t *testing.T) {
	m := NewMap[string, int](HashString[string])

	old, replaced := m.Insert("a", 1)
	assert.False(t, replaced)
	assert.Zero(t, old)

	old, replaced = m.Insert("a", 2)
	assert.True(t, replaced)
	assert.Equal(t, 1, old)
	assert.Equal(t, 1, m.Len(), "keys stay unique")

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMap_Remove(t *testing.T) {
	m := NewMap[int, string](HashInt[int])
	m.Insert(1, "one")
	m.Insert(2, "two")

	v, ok := m.Remove(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.False(t, m.Contains(1))

	_, ok = m.Remove(1)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestMap_GetMut(t *testing.T) {
	m := NewMap[int, []string](HashInt[int])
	m.Insert(1, nil)
	p, ok := m.GetMut(1)
	require.True(t, ok)
	*p = append(*p, "x")
	assert.Equal(t, []string{"x"}, m.MustGet(1))

	_, ok = m.GetMut(2)
	assert.False(t, ok)
}

func TestMap_GetOrInsert(t *testing.T) {
	m := NewMap[string, int](HashString[string])
	for _, w := range strings.Fields("a b a c a b") {
		*m.GetOrInsertDefaultMut(w)++
	}
	assert.Equal(t, 3, m.MustGet("a"))
	assert.Equal(t, 2, m.MustGet("b"))
	assert.Equal(t, 1, m.MustGet("c"))
	assert.Equal(t, 3, m.Len())

	p := m.GetOrInsertMut("d", 10)
	assert.Equal(t, 10, *p)
	p = m.GetOrInsertMut("d", 20)
	assert.Equal(t, 10, *p, "existing value wins")
}

func TestMap_MustGetMissingPanics(t *testing.T) {
	m := NewMap[string, int](HashString[string])
	require.PanicsWithError(t, "set: key not found: x", func() { m.MustGet("x") })
}

func TestMap_IterationAndClear(t *testing.T) {
	m := NewMap[int, int](HashInt[int])
	for i := range 10 {
		m.Insert(i, i*i)
	}
	assert.Equal(t, 81, maps.Collect(m.All())[9])

	keys := slices.Sorted(m.Keys())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, keys)

	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.False(t, m.Contains(3))
}

func TestMap_UniqueUnderChurn(t *testing.T) {
	m := NewMap[int, int](HashInt[int])
	for round := range 5 {
		for k := range 50 {
			m.Insert(k, round)
		}
		for k := 0; k < 50; k += 3 {
			m.Remove(k)
		}
	}
	seen := map[int]bool{}
	for k, v := range m.All() {
		assert.False(t, seen[k], "key %d twice", k)
		seen[k] = true
		assert.Equal(t, 4, v)
	}
	assert.Equal(t, 33, m.Len())
}

func TestMap_ZeroValueIsUsable(t *testing.T) {
	var m Map[string, int]
	_, replaced := m.Insert("a", 1)
	assert.False(t, replaced)
	old, replaced := m.Insert("a", 2)
	assert.True(t, replaced)
	assert.Equal(t, 1, old)
	*m.GetOrInsertDefaultMut("b") += 3

	assert.Equal(t, 2, m.MustGet("a"))
	assert.Equal(t, 3, m.MustGet("b"))
	v, ok := m.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, m.Len())
}
