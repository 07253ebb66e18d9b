package types

// EntityID identifies one live entity in a world. IDs are only unique while
// the entity is alive and may be reused after deletion, so they are never
// written to a snapshot directly.
type EntityID uint64

// Ordinal is the dense, snapshot-scoped identifier that stands in for an
// EntityID inside serialized data. Ordinals start at 0 and are assigned in
// marked-set iteration order, so the ordinal-to-entity mapping is a bijection
// within one snapshot.
type Ordinal uint64

// RefMapper converts a single entity reference between its live and wire
// forms. On save it maps a live EntityID to its ordinal; on load it maps an
// ordinal back to a (possibly freshly allocated) live EntityID.
type RefMapper func(EntityID) (EntityID, error)

// EntityRefs is the capability implemented by component types whose payload
// references other entities. MapEntityRefs must call the mapper on every
// entity-valued field and store the result back into the field.
//
// The method must use a pointer receiver; the engine remaps a private copy of
// the component, never the value stored in the world.
type EntityRefs interface {
	MapEntityRefs(mapper RefMapper) error
}
