package component

import (
	"fmt"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/lattice-games/keepsake/storage/redis"
	"github.com/lattice-games/keepsake/types"
)

var ErrComponentNotRegistered = eris.New("component not registered")

// SchemaStorage persists component schemas across runs so that a component
// whose shape drifted since the last run is rejected at registration time.
type SchemaStorage interface {
	GetSchema(componentName string) ([]byte, error)
	SetSchema(componentName string, schemaData []byte) error
}

type Manager struct {
	registeredComponents map[string]types.ComponentMetadata
	nextComponentID      types.ComponentID
	schemaStorage        SchemaStorage
}

// NewManager creates a new component manager. schemaStorage may be nil, in
// which case schemas are only validated against snapshots, not across runs.
func NewManager(schemaStorage SchemaStorage) *Manager {
	return &Manager{
		registeredComponents: make(map[string]types.ComponentMetadata),
		nextComponentID:      1,
		schemaStorage:        schemaStorage,
	}
}

// RegisterComponent registers a component with the component manager.
// There can only be one component with a given name, which is declared by the
// user by implementing the Name() method. If there is a duplicate component
// name, an error will be returned and the component will not be registered.
func (m *Manager) RegisterComponent(compMetadata types.ComponentMetadata) error {
	if err := m.isComponentNameUnique(compMetadata); err != nil {
		return err
	}

	if m.schemaStorage != nil {
		if err := m.validateOrStoreSchema(compMetadata); err != nil {
			return err
		}
	}

	// Set the component ID and register the component. This happens after the
	// schema checks so a component is only registered if its schema is sound.
	if err := compMetadata.SetID(m.nextComponentID); err != nil {
		return err
	}
	m.registeredComponents[compMetadata.Name()] = compMetadata
	m.nextComponentID++

	return nil
}

// GetComponents returns all registered components, ordered by component ID.
func (m *Manager) GetComponents() []types.ComponentMetadata {
	registeredComponents := make([]types.ComponentMetadata, 0, len(m.registeredComponents))
	for _, comp := range m.registeredComponents {
		registeredComponents = append(registeredComponents, comp)
	}
	sort.Slice(registeredComponents, func(i, j int) bool {
		return registeredComponents[i].ID() < registeredComponents[j].ID()
	})
	return registeredComponents
}

// GetComponentByName returns the component metadata for the given component name.
func (m *Manager) GetComponentByName(name string) (types.ComponentMetadata, error) {
	c, ok := m.registeredComponents[name]
	if !ok {
		return nil, eris.Wrap(ErrComponentNotRegistered, fmt.Sprintf("component %q is not registered", name))
	}
	return c, nil
}

// validateOrStoreSchema checks the component against the schema stored from a
// previous run, or stores the schema if this is the first time the component
// is seen.
func (m *Manager) validateOrStoreSchema(compMetadata types.ComponentMetadata) error {
	storedSchema, err := m.schemaStorage.GetSchema(compMetadata.Name())
	if err != nil && !eris.Is(err, redis.ErrNoSchemaFound) {
		return err
	}

	if storedSchema == nil {
		return m.schemaStorage.SetSchema(compMetadata.Name(), compMetadata.GetSchema())
	}

	if err := compMetadata.ValidateAgainstSchema(storedSchema); err != nil {
		if eris.Is(err, types.ErrComponentSchemaMismatch) {
			return eris.Wrap(err,
				fmt.Sprintf("component %q does not match the schema stored in storage", compMetadata.Name()),
			)
		}
		return eris.Wrap(err, "error when validating component schema against stored schema in storage")
	}
	return nil
}

// isComponentNameUnique checks if the component name already exists in the component map.
func (m *Manager) isComponentNameUnique(compMetadata types.ComponentMetadata) error {
	_, ok := m.registeredComponents[compMetadata.Name()]
	if ok {
		return eris.Errorf("component %q is already registered", compMetadata.Name())
	}
	return nil
}
