package keepsake

import (
	"reflect"

	"github.com/lattice-games/keepsake/types"
)

// toWire maps live entity IDs to ordinals for embedded references.
func toWire(t *Translator) types.RefMapper {
	return func(id types.EntityID) (types.EntityID, error) {
		ord, err := t.ToOrdinal(id)
		return types.EntityID(ord), err
	}
}

// fromWire maps ordinals back to live entity IDs, allocating entities for
// references whose own records have not been visited yet.
func fromWire(t *Translator) types.RefMapper {
	return func(id types.EntityID) (types.EntityID, error) {
		return t.ToLive(types.Ordinal(id))
	}
}

var entityRefsType = reflect.TypeOf((*types.EntityRefs)(nil)).Elem()

// hasEntityRefs reports whether the component type implements the
// types.EntityRefs capability.
func hasEntityRefs(comp any) bool {
	if comp == nil {
		return false
	}
	t := reflect.TypeOf(comp)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return reflect.PtrTo(t).Implements(entityRefsType)
}

// remapEntityRefs rewrites every entity-valued field of the component through
// the mapper. Components that do not implement types.EntityRefs pass through
// unchanged. The rewrite happens on an addressable copy, so the value held by
// the world is never mutated.
func remapEntityRefs(comp any, mapper types.RefMapper) (any, error) {
	if comp == nil {
		return nil, nil
	}
	v := reflect.ValueOf(comp)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	ptr := reflect.New(v.Type())
	ptr.Elem().Set(v)
	refs, ok := ptr.Interface().(types.EntityRefs)
	if !ok {
		return comp, nil
	}
	if err := refs.MapEntityRefs(mapper); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

// MapRef converts one entity reference in place. Intended for use inside
// MapEntityRefs implementations. Optional references held as *EntityID fields
// should be nil-checked by the caller before mapping.
func MapRef(ref *types.EntityID, mapper types.RefMapper) error {
	mapped, err := mapper(*ref)
	if err != nil {
		return err
	}
	*ref = mapped
	return nil
}

// MapRefSlice converts a slice of entity references in place.
func MapRefSlice(refs []types.EntityID, mapper types.RefMapper) error {
	for i := range refs {
		if err := MapRef(&refs[i], mapper); err != nil {
			return err
		}
	}
	return nil
}
