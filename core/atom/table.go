package atom

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/joshuapare/corekit/core/alloc"
	"github.com/joshuapare/corekit/core/rawset"
	"github.com/joshuapare/corekit/internal/logger"
)

// entry is one interned string. key holds the folded form when it differs
// from the canonical text; otherwise the canonical text is compared
// directly.
type entry struct {
	atom Atom
	key  string
}

func (e *entry) compareKey() string {
	if e.key != "" {
		return e.key
	}
	return e.atom.String()
}

type shard struct {
	mu    sync.Mutex
	index rawset.Table[entry, alloc.Heap[entry], *alloc.Heap[entry]]
	arena arena
}

// Table is a concurrent, case-insensitive string interning table.
type Table struct {
	opts   Options
	mask   uint64
	shards []shard
	closed atomic.Bool
}

// Stats summarizes a Table's contents.
type Stats struct {
	Strings int // distinct atoms
	Bytes   int // canonical text bytes stored
	Slabs   int // arena slabs in use
}

// NewTable returns an empty table. Zero option fields take their defaults.
func NewTable(opts Options) *Table {
	opts = opts.normalized()
	t := &Table{
		opts:   opts,
		mask:   uint64(opts.Shards - 1),
		shards: make([]shard, opts.Shards),
	}
	for i := range t.shards {
		var a alloc.Allocator[byte] = &alloc.Heap[byte]{}
		if opts.OffHeap {
			a = &alloc.Mapped{}
		}
		t.shards[i].arena = newArena(a, opts.SlabSize)
	}
	return t
}

// Intern returns the Atom for s, adding s if no string equal to it under
// case folding has been interned yet.
func (t *Table) Intern(s string) (Atom, error) {
	if t.closed.Load() {
		return Atom{}, ErrClosed
	}
	if s == "" {
		return Atom{}, nil
	}
	if len(s) > t.opts.MaxStringLen {
		return Atom{}, fmt.Errorf("%w: %d bytes, max %d", ErrTooLong, len(s), t.opts.MaxStringLen)
	}

	key, hash := foldKey(s)
	sh := &t.shards[hash&t.mask]

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if t.closed.Load() {
		return Atom{}, ErrClosed
	}

	for i := sh.index.FindFirstIndex(hash); i != rawset.None; i = sh.index.FindNextIndex(i) {
		e := sh.index.At(i)
		if equalFoldASCII(e.compareKey(), key) {
			return e.atom, nil
		}
	}

	a := Atom{hash: hash, ptr: sh.arena.copyString(s), n: len(s)}
	e := entry{atom: a}
	if key != s {
		e.key = key
	}
	sh.index.InsertData(hash, func(slot *entry) { *slot = e })
	return a, nil
}

// InternBytes is Intern for a byte slice. b is copied; the caller may reuse
// it.
func (t *Table) InternBytes(b []byte) (Atom, error) {
	return t.Intern(string(b))
}

// MustIntern is Intern that panics on error.
func (t *Table) MustIntern(s string) Atom {
	a, err := t.Intern(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Lookup returns the Atom for s if one has been interned, without adding
// it.
func (t *Table) Lookup(s string) (Atom, bool) {
	if s == "" {
		return Atom{}, true
	}
	if len(s) > t.opts.MaxStringLen || t.closed.Load() {
		return Atom{}, false
	}
	key, hash := foldKey(s)
	sh := &t.shards[hash&t.mask]

	sh.mu.Lock()
	defer sh.mu.Unlock()
	for i := sh.index.FindFirstIndex(hash); i != rawset.None; i = sh.index.FindNextIndex(i) {
		if e := sh.index.At(i); equalFoldASCII(e.compareKey(), key) {
			return e.atom, true
		}
	}
	return Atom{}, false
}

// Stats returns a snapshot of the table's size.
func (t *Table) Stats() Stats {
	var st Stats
	for i := range t.shards {
		sh := &t.shards[i]
		sh.mu.Lock()
		st.Strings += sh.index.Len()
		st.Bytes += sh.arena.used
		st.Slabs += len(sh.arena.slabs)
		sh.mu.Unlock()
	}
	return st
}

// Close releases every slab. Further calls to Intern return ErrClosed and
// existing Atoms must no longer be used. Close is idempotent.
func (t *Table) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	var st Stats
	for i := range t.shards {
		sh := &t.shards[i]
		sh.mu.Lock()
		st.Strings += sh.index.Len()
		st.Slabs += len(sh.arena.slabs)
		sh.index.Clear(nil)
		sh.arena.release()
		sh.mu.Unlock()
	}
	logger.Info("atom table closed", "strings", st.Strings, "slabs", st.Slabs)
	return nil
}
