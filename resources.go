package scenery

import "reflect"

// Resources holds at most one value per type, for world-wide singletons such
// as the active camera or frame timing. Values live in a Pool so a removed
// slot is reused by the next resource.
type Resources struct {
	items *Pool[any]
	types map[reflect.Type]Handle[any]
}

func (r *Resources) init() {
	if r.items == nil {
		r.items = NewPool[any](8)
		r.types = make(map[reflect.Type]Handle[any])
	}
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	if r.items == nil {
		return 0
	}
	return r.items.PresentLen()
}

// Clear removes every resource.
func (r *Resources) Clear() {
	if r.items == nil {
		return
	}
	r.items.Clear()
	clear(r.types)
}

// SetResource stores res as the resource of type T, replacing any previous
// one.
func SetResource[T any](r *Resources, res *T) {
	if res == nil {
		panic("cannot set nil resource")
	}
	r.init()
	t := reflect.TypeFor[T]()
	if h, ok := r.types[t]; ok {
		*r.items.MustGet(h) = res
		return
	}
	r.types[t] = r.items.Add(res)
}

// GetResource returns the resource of type T.
func GetResource[T any](r *Resources) (*T, bool) {
	h, ok := r.types[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	v, ok := r.items.Get(h)
	if !ok {
		return nil, false
	}
	return (*v).(*T), true
}

// HasResource reports whether a resource of type T is stored.
func HasResource[T any](r *Resources) bool {
	_, ok := r.types[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource drops the resource of type T. It reports false when there
// was none.
func RemoveResource[T any](r *Resources) bool {
	t := reflect.TypeFor[T]()
	h, ok := r.types[t]
	if !ok {
		return false
	}
	delete(r.types, t)
	return r.items.Remove(h)
}
