// Package ecs provides a minimal in-memory entity-component store. It is the
// default world implementation behind the engine's storage interface; any
// store exposing the same capability surface can be substituted.
package ecs

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/lattice-games/keepsake/types"
)

var (
	ErrEntityDoesNotExist   = eris.New("entity does not exist")
	ErrComponentNotOnEntity = eris.New("component not on entity")
)

// World is a component store keyed by component name. It is not safe for
// concurrent use.
type World struct {
	nextID types.EntityID
	alive  map[types.EntityID]bool
	stores map[string]map[types.EntityID]any
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[types.EntityID]bool),
		stores: make(map[string]map[types.EntityID]any),
	}
}

// Create mints a new entity ID and marks it alive.
func (w *World) Create() types.EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Destroy marks the entity dead and removes all its components.
func (w *World) Destroy(id types.EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, store := range w.stores {
		delete(store, id)
	}
}

// Alive reports whether the entity exists.
func (w *World) Alive(id types.EntityID) bool {
	return w.alive[id]
}

// Has reports whether the entity owns a component with the given name.
func (w *World) Has(id types.EntityID, component string) bool {
	store, ok := w.stores[component]
	if !ok {
		return false
	}
	_, ok = store[id]
	return ok
}

// Get returns the entity's component value for the given component name.
func (w *World) Get(id types.EntityID, component string) (any, error) {
	if !w.alive[id] {
		return nil, eris.Wrapf(ErrEntityDoesNotExist, "entity %d", id)
	}
	store, ok := w.stores[component]
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotOnEntity, "component %q on entity %d", component, id)
	}
	value, ok := store[id]
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotOnEntity, "component %q on entity %d", component, id)
	}
	return value, nil
}

// Set attaches a component value to the entity, replacing any previous value
// for that component name.
func (w *World) Set(id types.EntityID, component string, value any) error {
	if !w.alive[id] {
		return eris.Wrapf(ErrEntityDoesNotExist, "entity %d", id)
	}
	store, ok := w.stores[component]
	if !ok {
		store = make(map[types.EntityID]any)
		w.stores[component] = store
	}
	store[id] = value
	return nil
}

// Remove detaches the named component from the entity. Removing a component
// the entity does not own is an error.
func (w *World) Remove(id types.EntityID, component string) error {
	if !w.alive[id] {
		return eris.Wrapf(ErrEntityDoesNotExist, "entity %d", id)
	}
	store, ok := w.stores[component]
	if !ok {
		return eris.Wrapf(ErrComponentNotOnEntity, "component %q on entity %d", component, id)
	}
	if _, ok := store[id]; !ok {
		return eris.Wrapf(ErrComponentNotOnEntity, "component %q on entity %d", component, id)
	}
	delete(store, id)
	return nil
}

// EntitiesWith returns the IDs of all entities owning the named component, in
// ascending ID order.
func (w *World) EntitiesWith(component string) []types.EntityID {
	store := w.stores[component]
	ids := make([]types.EntityID, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.alive)
}
