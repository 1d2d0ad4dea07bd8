package scenery

import (
	"fmt"
	"reflect"
)

// MaxComponentLists is the number of component lists that can be bound to a
// single EntityManager.
const MaxComponentLists = 256

// ListID identifies a component list registered with an EntityManager.
type ListID uint8

// ComponentInfo describes a component list an entity is attached to.
type ComponentInfo struct {
	ID   ListID
	Name string
}

// listRegistry names the component lists bound to an EntityManager so that
// attachments can be reported per entity.
type listRegistry struct {
	names  [MaxComponentLists]string
	nextID uint16
}

// register assigns the next list ID to name. It panics once
// MaxComponentLists lists exist.
func (r *listRegistry) register(name string) ListID {
	if r.nextID >= MaxComponentLists {
		panic(fmt.Sprintf("ecs: cannot register component list %s: maximum of %d reached", name, MaxComponentLists))
	}
	id := ListID(r.nextID)
	r.names[id] = name
	r.nextID++
	return id
}

func (r *listRegistry) name(id ListID) string {
	return r.names[id]
}

// typeName returns a readable name for the component type T.
func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
