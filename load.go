package keepsake

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lattice-games/keepsake/log"
	"github.com/lattice-games/keepsake/types"
)

// Load replays a Snapshot into the given world, visiting the caller's type
// list in order. Every marked entity of the snapshot is materialized as a
// fresh live entity carrying the Marked component, even if it owns none of
// the listed types. Any failure aborts the operation; callers should load
// into a scratch world and discard it on error, since no rollback is
// performed.
func (e *Engine) Load(w World, snap *Snapshot, typeList []string) error {
	metas, err := e.resolveTypeList(typeList)
	if err != nil {
		return err
	}

	listed := make(map[string]bool, len(metas))
	for _, md := range metas {
		listed[md.Name()] = true
	}
	blockByType := make(map[string]TypeBlock, len(snap.Blocks))
	for _, block := range snap.Blocks {
		if _, ok := blockByType[block.Type]; ok {
			return eris.Wrapf(ErrMalformedSnapshot, "duplicate block for type %q", block.Type)
		}
		if !listed[block.Type] {
			return eris.Wrapf(ErrUnsupportedType, "snapshot block %q is not in the type list", block.Type)
		}
		blockByType[block.Type] = block
	}

	translator := NewLoadTranslator(snap.Entities, w.Create)
	stats := make([]log.BlockStat, 0, len(metas))
	for _, md := range metas {
		block, ok := blockByType[md.Name()]
		if !ok {
			continue
		}
		if len(block.Schema) > 0 {
			if err := md.ValidateAgainstSchema(block.Schema); err != nil {
				return eris.Wrapf(err, "snapshot block %q was saved with an incompatible schema", block.Type)
			}
		}
		if err := e.deserializeType(w, md, block, translator); err != nil {
			return err
		}
		stats = append(stats, log.BlockStat{Type: block.Type, Records: len(block.Records)})
	}

	// Entities that own none of the listed types are still part of the
	// snapshot. Materialize every remaining ordinal and re-attach the marker
	// so a later save persists the same population.
	for ord := types.Ordinal(0); uint64(ord) < snap.Entities; ord++ {
		live, err := translator.ToLive(ord)
		if err != nil {
			return err
		}
		if err := w.Set(live, MarkedName, Marked{}); err != nil {
			return err
		}
	}

	log.Operation(&e.log, zerolog.InfoLevel, "load", snap.Entities, stats)
	return nil
}

// deserializeType re-attaches every record of one type block to its live
// entity, allocating entities on first sight. References inside payloads may
// point at ordinals whose own records have not been visited yet; those
// entities are allocated by the reference itself.
func (e *Engine) deserializeType(
	w World,
	md types.ComponentMetadata,
	block TypeBlock,
	translator *Translator,
) error {
	seen := make(map[types.Ordinal]bool, len(block.Records))
	for _, record := range block.Records {
		if seen[record.Ordinal] {
			return eris.Wrapf(ErrMalformedSnapshot,
				"duplicate record for ordinal %d in block %q", record.Ordinal, block.Type)
		}
		seen[record.Ordinal] = true
		live, err := translator.ToLive(record.Ordinal)
		if err != nil {
			return err
		}
		comp, err := md.Decode(record.Payload)
		if err != nil {
			return err
		}
		remapped, err := remapEntityRefs(comp, fromWire(translator))
		if err != nil {
			return err
		}
		if err := w.Set(live, md.Name(), remapped); err != nil {
			return err
		}
	}
	return nil
}
