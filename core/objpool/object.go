package objpool

import "sync/atomic"

// Object is a pooled value with its borrow state. Objects are always
// handled by pointer.
type Object[T any, K comparable] struct {
	value   T
	key     K
	state   BorrowState
	pending atomic.Bool
}

// Key implements set.Item. The key is captured at insert and never changes.
func (o *Object[T, K]) Key() K { return o.key }

// ImmutableKey implements set.ImmutableKeyer.
func (o *Object[T, K]) ImmutableKey() bool { return true }

// IsPendingDestroy reports whether the object has been scheduled for
// removal by RequestDrop.
func (o *Object[T, K]) IsPendingDestroy() bool { return o.pending.Load() }

// TryRead returns the value under a shared borrow. The pointer must not be
// written through and must not be used after ref.Release().
func (o *Object[T, K]) TryRead() (*T, *ReadRef, error) {
	ref, err := o.state.TryRead()
	if err != nil {
		return nil, nil, err
	}
	return &o.value, ref, nil
}

// TryWrite returns the value under the exclusive borrow.
func (o *Object[T, K]) TryWrite() (*T, *WriteRef, error) {
	ref, err := o.state.TryWrite()
	if err != nil {
		return nil, nil, err
	}
	return &o.value, ref, nil
}
