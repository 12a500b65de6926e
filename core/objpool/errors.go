package objpool

import "errors"

var (
	// ErrExclusive indicates the object is exclusively borrowed.
	ErrExclusive = errors.New("objpool: object is exclusively borrowed")

	// ErrShared indicates the object has outstanding shared borrows.
	ErrShared = errors.New("objpool: object is borrowed")

	// ErrDestroyed indicates the object has been destroyed.
	ErrDestroyed = errors.New("objpool: object destroyed")

	// ErrDuplicateKey indicates an insert under a key that is already live.
	ErrDuplicateKey = errors.New("objpool: duplicate key")
)
