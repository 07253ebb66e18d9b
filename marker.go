package keepsake

import (
	"sort"

	"github.com/lattice-games/keepsake/types"
)

// MarkedName is the component name of the persistence marker.
const MarkedName = "keepsake.marked"

// Marked is the marker component. Its presence on an entity flags that entity
// for persistence; entities without it are invisible to Save. The marker
// carries no data and is never written into a snapshot block; Load re-attaches
// it to every entity it materializes.
type Marked struct{}

func (Marked) Name() string {
	return MarkedName
}

// Mark flags the entity for persistence.
func Mark(w World, id types.EntityID) error {
	return w.Set(id, MarkedName, Marked{})
}

// collectMarked returns the IDs of all marked entities in ascending order.
// The ordering fixes ordinal assignment, which keeps saves of the same world
// deterministic. The set is recomputed on every call; it is never cached.
func collectMarked(w World) []types.EntityID {
	ids := append([]types.EntityID(nil), w.EntitiesWith(MarkedName)...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
