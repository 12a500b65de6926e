// Package atom interns strings case-insensitively into compact, comparable
// handles.
//
// # Overview
//
// A Table maps every string to an Atom. Strings that are equal under case
// folding map to the same Atom, and two Atoms are equal (==) exactly when
// their strings are equal under case folding:
//
//	tbl := atom.NewTable(atom.DefaultOptions())
//	defer tbl.Close()
//
//	a := tbl.MustIntern("Name Test")
//	b := tbl.MustIntern("nAMe tESt")
//	a == b          // true
//	b.String()      // "Name Test": the first writer's casing wins
//
// # Folding
//
// ASCII strings are folded by lowercasing A-Z, which is done inline while
// hashing without allocating. Strings with any non-ASCII byte are folded
// with golang.org/x/text/cases.Fold before hashing and comparison.
//
// # Storage
//
// The canonical text of each Atom is copied once into a slab arena owned by
// the table and never moves, so an Atom is three words and String() does
// not allocate. With Options.OffHeap the slabs are mapped outside the Go
// heap; Atoms must not be used after the table is closed.
//
// # Concurrency
//
// Table is safe for concurrent use. Entries are sharded by the low bits of
// their hash with one mutex per shard, so interning contends only on equal
// shards.
//
// # Limits
//
// Strings longer than Options.MaxStringLen bytes (128 by default) are
// rejected with ErrTooLong. The empty string interns to the zero Atom.
package atom
