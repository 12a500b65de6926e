package objpool

import (
	"sync/atomic"

	"github.com/joshuapare/corekit/internal/assert"
)

const (
	exclusiveBit = uint64(1) << 63
	destroyed    = ^uint64(0)
)

// BorrowState tracks the borrows of one object. The zero value is free.
type BorrowState struct {
	word atomic.Uint64
}

// TryRead takes a shared borrow. A failed attempt leaves the state
// untouched.
func (b *BorrowState) TryRead() (*ReadRef, error) {
	for {
		old := b.word.Load()
		if err := readConflict(old); err != nil {
			return nil, err
		}
		assert.That(old+1 < exclusiveBit, "shared borrow count overflow")
		if b.word.CompareAndSwap(old, old+1) {
			return &ReadRef{state: b}, nil
		}
	}
}

func readConflict(word uint64) error {
	switch {
	case word == destroyed:
		return ErrDestroyed
	case word&exclusiveBit != 0:
		return ErrExclusive
	}
	return nil
}

// TryWrite takes the exclusive borrow.
func (b *BorrowState) TryWrite() (*WriteRef, error) {
	for {
		old := b.word.Load()
		switch {
		case old == destroyed:
			return nil, ErrDestroyed
		case old&exclusiveBit != 0:
			return nil, ErrExclusive
		case old != 0:
			return nil, ErrShared
		}
		if b.word.CompareAndSwap(0, exclusiveBit) {
			return &WriteRef{state: b}, nil
		}
	}
}

// TryDestroy marks a free object destroyed. It fails while any borrow is
// held or if the object is already destroyed.
func (b *BorrowState) TryDestroy() bool {
	return b.word.CompareAndSwap(0, destroyed)
}

// IsDestroyed reports whether TryDestroy has succeeded.
func (b *BorrowState) IsDestroyed() bool {
	return b.word.Load() == destroyed
}

// noCopy makes go vet's copylocks check flag copies of the refs. A copied
// ref would release its borrow a second time.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ReadRef is a held shared borrow. Refs are handed out by pointer and must
// not be copied.
type ReadRef struct {
	_     noCopy
	state *BorrowState
}

// Release gives the borrow back. Releasing twice is a no-op.
func (r *ReadRef) Release() {
	if r.state == nil {
		return
	}
	r.state.word.Add(^uint64(0))
	r.state = nil
}

// Clone takes another shared borrow of the same object. It cannot fail
// while r is held.
func (r *ReadRef) Clone() *ReadRef {
	assert.That(r.state != nil, "clone of released borrow")
	r.state.word.Add(1)
	return &ReadRef{state: r.state}
}

// WriteRef is a held exclusive borrow. Like ReadRef it must not be copied.
type WriteRef struct {
	_     noCopy
	state *BorrowState
}

// Release gives the borrow back. Releasing twice is a no-op.
func (w *WriteRef) Release() {
	if w.state == nil {
		return
	}
	w.state.word.Store(0)
	w.state = nil
}
