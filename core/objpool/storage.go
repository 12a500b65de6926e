package objpool

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/joshuapare/corekit/core/set"
	"github.com/joshuapare/corekit/internal/logger"
)

// Storage holds the objects of one value type T keyed by K.
type Storage[T set.Item[K], K comparable] struct {
	mu      sync.RWMutex
	typ     reflect.Type
	objects *set.Set[*Object[T, K], K]
}

func newStorage[T set.Item[K], K comparable](hash set.Hasher[K], tableSize int) *Storage[T, K] {
	return &Storage[T, K]{
		typ:     reflect.TypeFor[T](),
		objects: set.WithTableSize[*Object[T, K]](hash, tableSize),
	}
}

// Insert adds v under v.Key(). A live object with the same key makes the
// insert fail with ErrDuplicateKey; an object pending destroy does not.
func (s *Storage[T, K]) Insert(v T) (*Object[T, K], error) {
	o := &Object[T, K]{value: v, key: v.Key()}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.find(o.key); ok {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, o.key)
	}
	s.objects.Insert(o)
	return o, nil
}

// find returns the live (not pending destroy) object under key. The caller
// holds s.mu.
func (s *Storage[T, K]) find(key K) (*Object[T, K], bool) {
	for i := s.objects.FindFirstIndex(key); i != set.None; i = s.objects.FindNextIndex(i) {
		if o := s.objects.Get(i); !o.IsPendingDestroy() {
			return o, true
		}
	}
	return nil, false
}

// Get returns the object under key. Objects pending destroy are not
// returned.
func (s *Storage[T, K]) Get(key K) (*Object[T, K], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(key)
}

// RequestDrop schedules the object under key for removal. It returns false
// if no live object has that key. The object stays reachable through
// existing pointers until Prune finds it unborrowed.
func (s *Storage[T, K]) RequestDrop(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.find(key)
	if !ok {
		return false
	}
	return o.pending.CompareAndSwap(false, true)
}

// Prune destroys and removes every object pending destroy that has no
// outstanding borrow. It returns the number removed.
func (s *Storage[T, K]) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for i := s.objects.Len() - 1; i >= 0; i-- {
		o := s.objects.Get(i)
		if o.IsPendingDestroy() && o.state.TryDestroy() {
			s.objects.SwapRemove(i)
			removed++
		}
	}
	if removed > 0 && logger.DebugEnabled() {
		logger.Debug("objpool pruned", "type", s.typ, "removed", removed, "remaining", s.objects.Len())
	}
	return removed
}

// Len returns the number of stored objects, including those pending
// destroy.
func (s *Storage[T, K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects.Len()
}
