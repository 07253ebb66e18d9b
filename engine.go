// Package keepsake selectively persists and restores the state of an
// entity-component world. Entities carrying the Marked component, intersected
// with a caller-supplied ordered list of component types, survive a round trip
// through a Snapshot; live entity IDs are translated to dense ordinals on the
// way out and back to (new) live IDs on the way in, including IDs embedded
// inside component data.
package keepsake

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lattice-games/keepsake/component"
	"github.com/lattice-games/keepsake/log"
	"github.com/lattice-games/keepsake/types"
)

type Engine struct {
	components    *component.Manager
	schemaStorage component.SchemaStorage
	log           zerolog.Logger
}

// Option augments the creation of an Engine.
type Option func(*Engine)

// WithLogger routes the engine's operation logs to the given logger. The
// default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}

// WithSchemaStorage persists component schemas at registration time, so a
// component whose shape changed since the last run is rejected before any
// snapshot is touched.
func WithSchemaStorage(storage component.SchemaStorage) Option {
	return func(e *Engine) {
		e.schemaStorage = storage
	}
}

// NewEngine creates an engine with the Marked component pre-registered. All
// other component types must be registered before they can appear in a type
// list.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.components = component.NewManager(e.schemaStorage)

	marked, err := component.NewComponentMetadata[Marked]()
	if err != nil {
		return nil, err
	}
	if err := e.components.RegisterComponent(marked); err != nil {
		return nil, err
	}
	return e, nil
}

// RegisterComponent registers component type T with the engine. The updated
// registry is logged at debug level after every successful registration.
func RegisterComponent[T types.Component](e *Engine) error {
	compMetadata, err := component.NewComponentMetadata[T]()
	if err != nil {
		return err
	}
	if err := e.components.RegisterComponent(compMetadata); err != nil {
		return err
	}
	log.Components(&e.log, e, zerolog.DebugLevel)
	return nil
}

// GetRegisteredComponents returns all registered components ordered by ID.
func (e *Engine) GetRegisteredComponents() []types.ComponentMetadata {
	return e.components.GetComponents()
}

// resolveTypeList maps the caller's ordered type list to component metadata.
// Unknown tags fail with ErrUnsupportedType and repeated tags with
// ErrDuplicateTypeInList, in both cases before any data has moved.
func (e *Engine) resolveTypeList(typeList []string) ([]types.ComponentMetadata, error) {
	metas := make([]types.ComponentMetadata, 0, len(typeList))
	seen := make(map[string]bool, len(typeList))
	for _, name := range typeList {
		if seen[name] {
			return nil, eris.Wrapf(ErrDuplicateTypeInList, "component %q", name)
		}
		seen[name] = true
		md, err := e.components.GetComponentByName(name)
		if err != nil {
			return nil, eris.Wrapf(ErrUnsupportedType, "component %q", name)
		}
		metas = append(metas, md)
	}
	return metas, nil
}
