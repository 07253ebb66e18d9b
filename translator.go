package keepsake

import (
	"github.com/rotisserie/eris"

	"github.com/lattice-games/keepsake/types"
)

// Translator maintains the bijection between live entity IDs and the dense
// ordinals used inside one snapshot. A Translator is scoped to exactly one
// save or one load operation and must never be reused across operations:
// ordinals from a previous operation are meaningless against a new world.
//
// A Translator is not safe for concurrent use.
type Translator struct {
	liveToOrdinal map[types.EntityID]types.Ordinal
	ordinalToLive map[types.Ordinal]types.EntityID

	// Load direction only.
	allocate func() types.EntityID
	limit    uint64
}

// NewSaveTranslator assigns ordinal i to marked[i]. Every entity must appear
// exactly once; a duplicate means the marked set is inconsistent and fails
// with ErrDuplicateEntity.
func NewSaveTranslator(marked []types.EntityID) (*Translator, error) {
	t := &Translator{
		liveToOrdinal: make(map[types.EntityID]types.Ordinal, len(marked)),
		ordinalToLive: make(map[types.Ordinal]types.EntityID, len(marked)),
	}
	for i, id := range marked {
		if _, ok := t.liveToOrdinal[id]; ok {
			return nil, eris.Wrapf(ErrDuplicateEntity, "entity %d", id)
		}
		ord := types.Ordinal(i)
		t.liveToOrdinal[id] = ord
		t.ordinalToLive[ord] = id
	}
	return t, nil
}

// NewLoadTranslator creates a translator for the load direction. Ordinals in
// [0, entityCount) resolve to live entities allocated on first sight via the
// allocate callback; anything outside that range was never defined by the
// snapshot and fails with ErrUnknownEntity.
func NewLoadTranslator(entityCount uint64, allocate func() types.EntityID) *Translator {
	return &Translator{
		liveToOrdinal: make(map[types.EntityID]types.Ordinal, entityCount),
		ordinalToLive: make(map[types.Ordinal]types.EntityID, entityCount),
		allocate:      allocate,
		limit:         entityCount,
	}
}

// ToOrdinal returns the ordinal assigned to the given live entity. An ID with
// no assigned ordinal is a reference pointing outside the persisted subset and
// fails with ErrUnknownEntity.
func (t *Translator) ToOrdinal(id types.EntityID) (types.Ordinal, error) {
	ord, ok := t.liveToOrdinal[id]
	if !ok {
		return 0, eris.Wrapf(ErrUnknownEntity, "entity %d is not in the persisted set", id)
	}
	return ord, nil
}

// ToLive returns the live entity for the given ordinal. In the load direction
// the first sighting of an ordinal allocates a fresh entity; later sightings
// return the same entity, so forward references and an entity's own records
// converge on one live ID regardless of visitation order.
func (t *Translator) ToLive(ord types.Ordinal) (types.EntityID, error) {
	if id, ok := t.ordinalToLive[ord]; ok {
		return id, nil
	}
	if t.allocate == nil || uint64(ord) >= t.limit {
		return 0, eris.Wrapf(ErrUnknownEntity, "ordinal %d is not defined", ord)
	}
	id := t.allocate()
	t.ordinalToLive[ord] = id
	t.liveToOrdinal[id] = ord
	return id, nil
}

// Len returns the number of live entities currently known to the translator.
func (t *Translator) Len() int {
	return len(t.ordinalToLive)
}
