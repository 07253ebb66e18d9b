package keepsake

import "github.com/lattice-games/keepsake/types"

// World is the capability surface the engine needs from an entity-component
// store. The ecs package provides an in-memory implementation; the engine
// never depends on how entities and components are actually stored.
type World interface {
	// Create allocates a new live entity and returns its ID.
	Create() types.EntityID
	// Has reports whether the entity owns a component with the given name.
	Has(id types.EntityID, component string) bool
	// Get returns the entity's component value for the given component name.
	Get(id types.EntityID, component string) (any, error)
	// Set attaches a component value to the entity.
	Set(id types.EntityID, component string, value any) error
	// EntitiesWith returns the IDs of all entities owning the named component.
	EntitiesWith(component string) []types.EntityID
}
