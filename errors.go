package scenery

import "errors"

// Sentinel errors returned by the core. They are wrapped with context, so
// compare with errors.Is or eris.Cause.
var (
	ErrCapacityExhausted       = errors.New("entity capacity exhausted")
	ErrStaleEntity             = errors.New("entity is stale or was never created")
	ErrEntityHasComponents     = errors.New("entity still has components attached")
	ErrDuplicateComponent      = errors.New("entity already has this component type")
	ErrComponentNotFound       = errors.New("entity does not have this component type")
	ErrMutationDuringIteration = errors.New("component list mutated during iteration")
	ErrIndexOutOfRange         = errors.New("component index out of range")
	ErrDirtyTransforms         = errors.New("transforms were mutated without an update")
	ErrHierarchyCycle          = errors.New("transform would become its own ancestor")
	ErrInvalidHandle           = errors.New("handle is stale or null")
	ErrRootRemoval             = errors.New("graph root cannot be removed")
	ErrNotPointLight           = errors.New("light is not a point light")
	ErrGlyphNotFound           = errors.New("font has no glyph for character")
)
