package scenery

import (
	"iter"
	"math"

	"github.com/rotisserie/eris"
)

// Handle is a typed reference into a Pool[T]. The type parameter only tags
// the handle so a Handle[Font] cannot be passed where a Handle[Geometry] is
// expected.
type Handle[T any] struct {
	Index      uint32
	Generation uint32
}

// NullHandle returns the handle meaning "no reference". It never validates
// against any pool.
func NullHandle[T any]() Handle[T] {
	return Handle[T]{Index: math.MaxUint32, Generation: math.MaxUint32}
}

// IsNull reports whether h is the null handle.
func (h Handle[T]) IsNull() bool {
	return h.Index == math.MaxUint32 && h.Generation == math.MaxUint32
}

// Pool is a growable store of long-lived resources addressed by Handle.
// Removing a record keeps its slot for reuse; the slot's generation is bumped
// on reuse so handles captured earlier stop validating.
type Pool[T any] struct {
	slots   slotAllocator
	records []T
}

// NewPool creates a pool with room for capacityHint records before growing.
func NewPool[T any](capacityHint int) *Pool[T] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Pool[T]{
		slots:   newSlotAllocator(capacityHint, false),
		records: make([]T, 0, capacityHint),
	}
}

// Add stores payload and returns its handle. A vacant record is reused when
// one exists.
func (p *Pool[T]) Add(payload T) Handle[T] {
	index, generation, err := p.slots.acquire()
	if err != nil {
		// growable allocators never run out
		panic(eris.Wrap(err, "pool: unexpected allocation failure"))
	}
	if int(index) == len(p.records) {
		p.records = append(p.records, payload)
	} else {
		p.records[index] = payload
	}
	return Handle[T]{Index: index, Generation: generation}
}

// Remove clears the payload behind h and marks its record vacant. It reports
// false when h is stale or null.
func (p *Pool[T]) Remove(h Handle[T]) bool {
	if !p.Valid(h) {
		return false
	}
	var zero T
	p.records[h.Index] = zero
	p.slots.release(h.Index)
	return true
}

// Valid reports whether h refers to a live record of this pool.
func (p *Pool[T]) Valid(h Handle[T]) bool {
	return p.slots.valid(h.Index, h.Generation)
}

// Get returns a pointer to the payload behind h. The pointer stays valid
// until the next Add grows the pool.
func (p *Pool[T]) Get(h Handle[T]) (*T, bool) {
	if !p.Valid(h) {
		return nil, false
	}
	return &p.records[h.Index], true
}

// MustGet is Get for handles the caller knows to be live. It panics on a
// stale handle.
func (p *Pool[T]) MustGet(h Handle[T]) *T {
	v, ok := p.Get(h)
	if !ok {
		panic(eris.Wrapf(ErrInvalidHandle, "pool: handle {%d %d}", h.Index, h.Generation))
	}
	return v
}

// Len returns the number of records, vacant ones included.
func (p *Pool[T]) Len() int {
	return p.slots.slots()
}

// PresentLen returns the number of live records.
func (p *Pool[T]) PresentLen() int {
	return p.slots.live
}

// IsEmpty reports whether the pool holds no live record.
func (p *Pool[T]) IsEmpty() bool {
	return p.slots.live == 0
}

// Clear removes every record. Handles issued before Clear stay invalid.
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.records {
		p.records[i] = zero
	}
	p.slots.reset()
}

// All yields every live record with its handle in slot order.
func (p *Pool[T]) All() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		for i := range p.records {
			if !p.slots.alive[i] {
				continue
			}
			h := Handle[T]{Index: uint32(i), Generation: p.slots.generations[i]}
			if !yield(h, &p.records[i]) {
				return
			}
		}
	}
}

// Iter returns a cursor over the live records of the pool.
func (p *Pool[T]) Iter() *PoolIter[T] {
	return &PoolIter[T]{pool: p, index: -1}
}

// PoolIter walks the live records of a Pool. It is exhausted once Next
// returns false; call Reset to walk again.
type PoolIter[T any] struct {
	pool  *Pool[T]
	index int
}

// Next advances to the next live record.
func (it *PoolIter[T]) Next() bool {
	for it.index+1 < len(it.pool.records) {
		it.index++
		if it.pool.slots.alive[it.index] {
			return true
		}
	}
	it.index = len(it.pool.records)
	return false
}

// Get returns the current payload.
func (it *PoolIter[T]) Get() *T {
	return &it.pool.records[it.index]
}

// Handle returns the handle of the current payload.
func (it *PoolIter[T]) Handle() Handle[T] {
	return Handle[T]{Index: uint32(it.index), Generation: it.pool.slots.generations[it.index]}
}

// Reset rewinds the cursor.
func (it *PoolIter[T]) Reset() {
	it.index = -1
}
