package atom

// Default option values.
const (
	DefaultShards       = 16
	DefaultMaxStringLen = 128
	DefaultSlabSize     = 64 << 10
)

// Options configures a Table.
type Options struct {
	// Shards is the number of independently locked partitions. It is
	// rounded up to a power of two. Default: 16.
	Shards int

	// MaxStringLen is the longest string, in bytes, that can be interned.
	// Default: 128.
	MaxStringLen int

	// SlabSize is the size of each arena slab in bytes. It is raised to
	// MaxStringLen if smaller. Default: 64 KiB.
	SlabSize int

	// OffHeap maps slabs outside the Go heap (see alloc.Mapped). The
	// garbage collector then never scans interned text, but every Atom
	// dangles once the table is closed.
	OffHeap bool
}

// DefaultOptions returns the default table configuration.
func DefaultOptions() Options {
	return Options{
		Shards:       DefaultShards,
		MaxStringLen: DefaultMaxStringLen,
		SlabSize:     DefaultSlabSize,
	}
}

func (o Options) normalized() Options {
	if o.Shards <= 0 {
		o.Shards = DefaultShards
	}
	n := 1
	for n < o.Shards {
		n <<= 1
	}
	o.Shards = n
	if o.MaxStringLen <= 0 {
		o.MaxStringLen = DefaultMaxStringLen
	}
	if o.SlabSize <= 0 {
		o.SlabSize = DefaultSlabSize
	}
	o.SlabSize = max(o.SlabSize, o.MaxStringLen)
	return o
}
