package fixed

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// defaultTableSize is used when a non-positive size is requested
const defaultTableSize = 10

// entry is the key value pair occupying a single slot
type entry[V any] struct {
	key string
	val V
}

// hashFunc is a type definition for what a hash function should look like
type hashFunc func(key string) uint64

// defaultHashFunc is the default hashFunc used
func defaultHashFunc(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Option configures a Table
type Option func(*options)

type options struct {
	hash hashFunc
}

// WithHashFunc replaces the default xxhash bucket hash
func WithHashFunc(fn func(key string) uint64) Option {
	return func(o *options) {
		if fn != nil {
			o.hash = fn
		}
	}
}

// Table is a direct addressed table with a fixed number of slots. Every key
// maps to exactly one slot and there is no collision resolution at all: no
// probing and no chaining. Inserting a key whose slot is taken silently
// replaces the previous occupant, whatever its key. Anything beyond
// teaching use needs a real collision strategy, see the chained and open
// addressing variants of a hashmap for that.
type Table[V any] struct {
	hash  hashFunc
	slots []*entry[V]
}

// New returns a Table with size slots, or defaultTableSize slots if size < 1
func New[V any](size int, opts ...Option) *Table[V] {
	if size < 1 {
		size = defaultTableSize
	}
	o := options{hash: defaultHashFunc}
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[V]{
		hash:  o.hash,
		slots: make([]*entry[V], size),
	}
}

// index returns the slot a key maps to
func (t *Table[V]) index(key string) int {
	return int(t.hash(key) % uint64(len(t.slots)))
}

// Insert stores the key value pair in the key's slot, overwriting whatever
// was there before
func (t *Table[V]) Insert(key string, val V) {
	t.slots[t.index(key)] = &entry[V]{key: key, val: val}
}

// Get returns the value for key if its slot currently holds that key
func (t *Table[V]) Get(key string) (V, bool) {
	e := t.slots[t.index(key)]
	if e == nil || e.key != key {
		return *new(V), false
	}
	return e.val, true
}

// Delete clears the key's slot only if it holds that key, and reports
// whether anything was removed
func (t *Table[V]) Delete(key string) bool {
	i := t.index(key)
	if e := t.slots[i]; e != nil && e.key == key {
		t.slots[i] = nil
		return true
	}
	return false
}

// Len returns the number of slots, which never changes
func (t *Table[V]) Len() int {
	return len(t.slots)
}

// Count returns the number of occupied slots
func (t *Table[V]) Count() int {
	var n int
	for _, e := range t.slots {
		if e != nil {
			n++
		}
	}
	return n
}

// String renders every slot in order, empty ones as <nil>
func (t *Table[V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range t.slots {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if e == nil {
			sb.WriteString("<nil>")
			continue
		}
		fmt.Fprintf(&sb, "(%s, %v)", e.key, e.val)
	}
	sb.WriteByte(']')
	return sb.String()
}
