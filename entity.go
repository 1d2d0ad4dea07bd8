// Package scenery provides the entity, component and transform-hierarchy
// storage core of a real-time 3D engine.
package scenery

import "fmt"

// Entity identifies a logical object. It combines a slot index with a
// generation counter so that references to a recycled slot can be detected.
// Entities are plain values; they own nothing.
type Entity struct {
	// Index is the slot inside the entity table.
	Index uint32
	// Generation is incremented each time the slot is reused.
	Generation uint32
}

// Decompose returns the index and generation of the entity.
func (e Entity) Decompose() (uint32, uint32) {
	return e.Index, e.Generation
}

// String formats e as {index: N generation: N}.
func (e Entity) String() string {
	return fmt.Sprintf("{index: %d generation: %d}", e.Index, e.Generation)
}
