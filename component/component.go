package component

import (
	"reflect"

	"github.com/rotisserie/eris"

	"github.com/lattice-games/keepsake/codec"
	"github.com/lattice-games/keepsake/types"
)

// Interface guard
var _ types.ComponentMetadata = (*componentMetadata[types.Component])(nil)

// componentMetadata represents a type of component. It is used to identify
// a component when getting or setting the component of an entity, and it
// carries the codec and schema for that component type.
type componentMetadata[T types.Component] struct {
	isIDSet  bool
	id       types.ComponentID
	compType reflect.Type
	name     string
	schema   []byte
}

// NewComponentMetadata creates the metadata for component type T.
func NewComponentMetadata[T types.Component]() (types.ComponentMetadata, error) {
	var t T
	compType := reflect.TypeOf(t)

	schema, err := types.SerializeComponentSchema(t)
	if err != nil {
		return nil, err
	}

	return &componentMetadata[T]{
		compType: compType,
		name:     t.Name(),
		schema:   schema,
	}, nil
}

func (c *componentMetadata[T]) GetSchema() []byte {
	return c.schema
}

// SetID sets this component's ID. It must be unique across the registry.
func (c *componentMetadata[T]) SetID(id types.ComponentID) error {
	if c.isIDSet {
		// Components are usually registered once on startup, but tests often
		// reuse the same component type across registries. Allow
		// re-initialization as long as the ID doesn't change.
		if id == c.id {
			return nil
		}
		return eris.Errorf("id for component %v is already set to %v, cannot change to %v", c, c.id, id)
	}
	c.id = id
	c.isIDSet = true
	return nil
}

// String returns the component type name.
func (c *componentMetadata[T]) String() string {
	return c.name
}

// Name returns the component type name.
func (c *componentMetadata[T]) Name() string {
	return c.name
}

// ID returns the component type id.
func (c *componentMetadata[T]) ID() types.ComponentID {
	return c.id
}

func (c *componentMetadata[T]) Encode(v any) ([]byte, error) {
	return codec.Encode(v)
}

func (c *componentMetadata[T]) Decode(bz []byte) (types.Component, error) {
	return codec.Decode[T](bz)
}

func (c *componentMetadata[T]) ValidateAgainstSchema(targetSchema []byte) error {
	valid, err := types.IsSchemaValid(c.schema, targetSchema)
	if err != nil {
		return eris.Wrap(err, "failed to compare component schema")
	}
	if !valid {
		return eris.Wrap(types.ErrComponentSchemaMismatch, c.name)
	}
	return nil
}
