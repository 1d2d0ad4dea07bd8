package scenery

import "github.com/rotisserie/eris"

// slotAllocator hands out (index, generation) pairs. A freed slot keeps its
// generation until it is reused, at which point the generation is bumped so
// any pair captured before the release no longer validates.
//
// It backs both the fixed-capacity EntityManager and the growable Pool.
type slotAllocator struct {
	generations []uint32 // generation per slot
	alive       []bool   // whether the slot is currently handed out
	free        []uint32 // stack of released slots, most recent last
	live        int      // number of slots handed out
	capacity    int      // upper bound on slots, 0 means unbounded
}

// newSlotAllocator preallocates room for capacityHint slots. When fixed is
// true the allocator refuses to grow past capacityHint.
func newSlotAllocator(capacityHint int, fixed bool) slotAllocator {
	if capacityHint < 0 {
		capacityHint = 0
	}
	a := slotAllocator{
		generations: make([]uint32, 0, capacityHint),
		alive:       make([]bool, 0, capacityHint),
		free:        make([]uint32, 0, capacityHint),
	}
	if fixed {
		a.capacity = capacityHint
	}
	return a
}

// acquire pops the most recently released slot, or appends a fresh slot at
// generation 0.
func (a *slotAllocator) acquire() (uint32, uint32, error) {
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		a.generations[index]++
		a.alive[index] = true
		a.live++
		return index, a.generations[index], nil
	}
	if a.capacity > 0 && len(a.generations) >= a.capacity {
		return 0, 0, eris.Wrapf(ErrCapacityExhausted, "limit of %d reached", a.capacity)
	}
	a.generations = append(a.generations, 0)
	a.alive = append(a.alive, true)
	a.live++
	return uint32(len(a.generations) - 1), 0, nil
}

// release marks the slot reusable. The caller must have checked validity.
func (a *slotAllocator) release(index uint32) {
	a.alive[index] = false
	a.free = append(a.free, index)
	a.live--
}

// valid reports whether (index, generation) refers to a live slot.
func (a *slotAllocator) valid(index, generation uint32) bool {
	if int(index) >= len(a.generations) {
		return false
	}
	return a.alive[index] && a.generations[index] == generation
}

// slots returns the number of slots ever created.
func (a *slotAllocator) slots() int {
	return len(a.generations)
}

// reset releases every slot, keeping generations so old pairs stay invalid.
func (a *slotAllocator) reset() {
	a.free = a.free[:0]
	for i := len(a.generations) - 1; i >= 0; i-- {
		a.alive[i] = false
		a.free = append(a.free, uint32(i))
	}
	a.live = 0
}
