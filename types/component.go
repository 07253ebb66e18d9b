package types

import (
	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"
)

type ComponentID int

var ErrComponentSchemaMismatch = eris.New("component schema mismatch")

// Component is the interface that the user needs to implement to create a new
// component type.
type Component interface {
	// Name returns the name of the component. The name is the stable type tag
	// used in snapshots, so it must not change across runs.
	Name() string
}

// ComponentMetadata wraps the user-defined Component struct and provides the
// functionality the engine needs to move it in and out of a snapshot.
type ComponentMetadata interface { //revive:disable-line:exported
	// SetID sets the ID of this component. It must only be set once.
	SetID(ComponentID) error
	// ID returns the ID of the component.
	ID() ComponentID
	// Encode marshals a component value to its payload bytes.
	Encode(any) ([]byte, error)
	// Decode unmarshals payload bytes back into the concrete component type.
	Decode([]byte) (Component, error)
	// GetSchema returns the JSON schema of the component type.
	GetSchema() []byte
	// ValidateAgainstSchema returns ErrComponentSchemaMismatch if the given
	// schema does not match this component's schema.
	ValidateAgainstSchema(targetSchema []byte) error

	Component
}

func SerializeComponentSchema(component Component) ([]byte, error) {
	componentSchema := jsonschema.Reflect(component)
	schema, err := componentSchema.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "component must be json serializable")
	}
	return schema, nil
}

func IsSchemaValid(jsonSchemaBytes1 []byte, jsonSchemaBytes2 []byte) (bool, error) {
	patch, err := jsondiff.CompareJSON(jsonSchemaBytes1, jsonSchemaBytes2)
	if err != nil {
		return false, eris.Wrap(err, "")
	}
	return patch.String() == "", nil
}
