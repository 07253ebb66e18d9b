package keepsake

import (
	"github.com/rs/zerolog"

	"github.com/lattice-games/keepsake/log"
	"github.com/lattice-games/keepsake/types"
)

// Save serializes every marked entity's components, restricted to the given
// ordered type list, into a Snapshot. Types in the list that no marked entity
// owns contribute an empty block. Any failure aborts the operation; a partial
// snapshot is never returned.
func (e *Engine) Save(w World, typeList []string) (*Snapshot, error) {
	metas, err := e.resolveTypeList(typeList)
	if err != nil {
		return nil, err
	}

	marked := collectMarked(w)
	translator, err := NewSaveTranslator(marked)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Entities: uint64(translator.Len()),
		Blocks:   make([]TypeBlock, 0, len(metas)),
	}
	stats := make([]log.BlockStat, 0, len(metas))
	for _, md := range metas {
		block, err := e.serializeType(w, md, marked, translator)
		if err != nil {
			return nil, err
		}
		snap.Blocks = append(snap.Blocks, block)
		stats = append(stats, log.BlockStat{Type: block.Type, Records: len(block.Records)})
	}

	log.Operation(&e.log, zerolog.InfoLevel, "save", snap.Entities, stats)
	return snap, nil
}

// serializeType builds the type block for one component type. Records follow
// the marked-set iteration order, so output is deterministic for a fixed
// marked set.
func (e *Engine) serializeType(
	w World,
	md types.ComponentMetadata,
	marked []types.EntityID,
	translator *Translator,
) (TypeBlock, error) {
	block := TypeBlock{
		Type:   md.Name(),
		Schema: md.GetSchema(),
	}
	for _, id := range marked {
		if !w.Has(id, md.Name()) {
			continue
		}
		comp, err := w.Get(id, md.Name())
		if err != nil {
			return TypeBlock{}, err
		}
		ord, err := translator.ToOrdinal(id)
		if err != nil {
			return TypeBlock{}, err
		}
		payload, err := md.Encode(comp)
		if err != nil {
			return TypeBlock{}, err
		}
		if hasEntityRefs(comp) {
			// Remap references on a decoded copy. A plain struct copy is not
			// enough here: slice and pointer fields would still alias the
			// value held by the live world, and rewriting live IDs to
			// ordinals must never leak into it.
			fresh, err := md.Decode(payload)
			if err != nil {
				return TypeBlock{}, err
			}
			remapped, err := remapEntityRefs(fresh, toWire(translator))
			if err != nil {
				return TypeBlock{}, err
			}
			payload, err = md.Encode(remapped)
			if err != nil {
				return TypeBlock{}, err
			}
		}
		block.Records = append(block.Records, Record{Ordinal: ord, Payload: payload})
	}
	return block, nil
}
