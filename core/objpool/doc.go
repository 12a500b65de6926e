// Package objpool keeps keyed objects of many types in one Pool and hands
// out try-only shared and exclusive borrows of them.
//
// # Overview
//
// A Pool holds one Storage per concrete value type. Each Storage is a hash
// set of boxed Objects keyed by the value's own key, guarded by an
// RWMutex for structural changes. Aliasing is tracked per Object by a
// BorrowState, a single atomic word:
//
//   - 0: free
//   - 1..2^63-1: that many shared borrows
//   - high bit set: one exclusive borrow
//   - all ones: destroyed
//
// Borrows never block. TryRead fails with ErrExclusive while an exclusive
// borrow is held; TryWrite fails with ErrShared or ErrExclusive while any
// borrow is held. Both fail with ErrDestroyed once the object is gone.
//
// # Lifecycle
//
//	pool := objpool.NewPool(objpool.DefaultOptions())
//	users := objpool.StorageFor[User](pool, set.HashInt[int64])
//
//	obj, err := users.Insert(User{ID: 7})
//	v, ref, err := obj.TryRead()
//	...
//	ref.Release()
//
//	users.RequestDrop(7) // hidden from Get from now on
//	pool.Prune()         // removed once no borrow is outstanding
//
// Objects are boxed, so an Object pointer and any borrow taken from it stay
// valid while the storage grows and while other objects are pruned.
package objpool
