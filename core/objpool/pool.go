package objpool

import (
	"reflect"
	"sync"

	"github.com/joshuapare/corekit/core/set"
	"github.com/joshuapare/corekit/internal/logger"
)

// DefaultTableSize is the initial bucket count of a new Storage.
const DefaultTableSize = 64

// Options configures a Pool.
type Options struct {
	// TableSize is the initial bucket count of each Storage. Zero or
	// negative selects the default. Default: 64.
	TableSize int
}

func (o Options) normalized() Options {
	if o.TableSize <= 0 {
		o.TableSize = DefaultTableSize
	}
	return o
}

// DefaultOptions returns the default pool configuration.
func DefaultOptions() Options {
	return Options{TableSize: DefaultTableSize}
}

// storage is the type-erased view the pool keeps of a Storage.
type storage interface {
	Prune() int
	Len() int
}

type registration struct {
	typ     reflect.Type
	storage storage
}

func (r registration) Key() reflect.Type { return r.typ }
func (registration) ImmutableKey() bool  { return true }

func hashType(t reflect.Type) uint64 { return set.HashString(t.String()) }

// Pool holds one Storage per value type.
type Pool struct {
	mu       sync.RWMutex
	opts     Options
	storages *set.Set[registration, reflect.Type]
}

// NewPool returns an empty pool.
func NewPool(opts Options) *Pool {
	return &Pool{
		opts:     opts.normalized(),
		storages: set.New[registration](hashType),
	}
}

// StorageFor returns the pool's storage for T, creating it with hash on
// first use. Later calls reuse the first storage; their hash is ignored.
func StorageFor[T set.Item[K], K comparable](p *Pool, hash set.Hasher[K]) *Storage[T, K] {
	typ := reflect.TypeFor[T]()

	p.mu.RLock()
	r, ok := p.storages.Find(typ)
	p.mu.RUnlock()
	if ok {
		return r.storage.(*Storage[T, K])
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if r, ok := p.storages.Find(typ); ok {
		return r.storage.(*Storage[T, K])
	}
	s := newStorage[T](hash, p.opts.TableSize)
	p.storages.Insert(registration{typ: typ, storage: s})
	if logger.DebugEnabled() {
		logger.Debug("objpool storage registered", "type", typ, "types", p.storages.Len())
	}
	return s
}

// Prune prunes every storage and returns the total number of objects
// removed.
func (p *Pool) Prune() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	total := 0
	for _, r := range p.storages.All() {
		total += r.storage.Prune()
	}
	return total
}

// Types returns the number of registered value types.
func (p *Pool) Types() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.storages.Len()
}

// Len returns the number of objects across all storages.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := 0
	for _, r := range p.storages.All() {
		n += r.storage.Len()
	}
	return n
}
