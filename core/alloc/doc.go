// Package alloc provides the allocation strategies that back corekit's
// containers.
//
// # Overview
//
// Every container in corekit stores its elements in a block obtained from an
// Allocator. The allocator decides where a block lives and how much larger
// the next block should be when the container runs out of room:
//
//   - Acquire(layout, current): obtain a block of layout.Len elements
//   - Release(block, layout): give a block back
//   - Grow(layout, minLen): compute the layout of the next, larger block
//
// # Implementations
//
// Heap: the default strategy. Blocks come from the Go heap and growth at
// least doubles the element count.
//
// Inline: embeds a fixed array [N]T inside the container itself. Blocks of
// up to N elements are served from that array without touching the heap;
// larger blocks spill to the heap. Once a container has spilled it stays on
// the heap until its block is released, even if it later shrinks below N.
//
// Mapped: byte blocks obtained straight from the operating system
// (anonymous mmap on Unix, VirtualAlloc on Windows). Mapped memory is
// invisible to the garbage collector, so it only ever holds pointer-free
// bytes and must be released explicitly.
//
// # Embedding an allocator
//
// Containers embed their allocator by value so that an Inline strategy adds
// exactly N*sizeof(T) bytes to the container. Methods are declared on the
// pointer type, so containers take the pointer-method constraint Strategy:
//
//	type Buffer[T any, A any, PA alloc.Strategy[T, A]] struct {
//	    alloc A
//	    data  []T
//	}
//
//	block := PA(&b.alloc).Acquire(alloc.LayoutOf[T](16), b.data)
//
// The allocator field must come first in the container: a trailing
// zero-size field would otherwise be padded.
//
// # Failure
//
// Allocation failure is fatal: Acquire panics rather than returning an
// error. Layout arithmetic overflow is a precondition violation checked in
// debug builds (-tags corekit_debug).
//
// # Thread Safety
//
// Allocators are owned by a single container and are not safe for
// concurrent use.
package alloc
