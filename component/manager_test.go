package component_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rotisserie/eris"
	"gotest.tools/v3/assert"

	"github.com/lattice-games/keepsake/component"
	"github.com/lattice-games/keepsake/storage/redis"
	"github.com/lattice-games/keepsake/types"
)

type Foo struct {
	Value int
}

func (Foo) Name() string { return "foo" }

type Bar struct {
	Value int
}

func (Bar) Name() string { return "bar" }

// fooAltered has foo's name but a different shape.
type fooAltered struct {
	Value string
}

func (fooAltered) Name() string { return "foo" }

func newSchemaStorageForTest(t *testing.T) component.SchemaStorage {
	t.Helper()
	s := miniredis.RunT(t)
	storage := redis.NewStorage(redis.Options{Addr: s.Addr()}, "test")
	return &storage.SchemaStorage
}

func TestRegisterComponents(t *testing.T) {
	manager := component.NewManager(nil)

	fooMetadata, err := component.NewComponentMetadata[Foo]()
	assert.NilError(t, err)
	barMetadata, err := component.NewComponentMetadata[Bar]()
	assert.NilError(t, err)

	assert.NilError(t, manager.RegisterComponent(fooMetadata))
	assert.NilError(t, manager.RegisterComponent(barMetadata))

	// IDs are assigned in registration order.
	assert.Assert(t, fooMetadata.ID() < barMetadata.ID())

	got, err := manager.GetComponentByName("foo")
	assert.NilError(t, err)
	assert.Equal(t, got.Name(), "foo")

	comps := manager.GetComponents()
	assert.Equal(t, len(comps), 2)
	assert.Equal(t, comps[0].Name(), "foo")
	assert.Equal(t, comps[1].Name(), "bar")
}

func TestRegisterDuplicateComponentFails(t *testing.T) {
	manager := component.NewManager(nil)

	first, err := component.NewComponentMetadata[Foo]()
	assert.NilError(t, err)
	second, err := component.NewComponentMetadata[Foo]()
	assert.NilError(t, err)

	assert.NilError(t, manager.RegisterComponent(first))
	assert.Assert(t, manager.RegisterComponent(second) != nil)
}

func TestGetUnregisteredComponentFails(t *testing.T) {
	manager := component.NewManager(nil)
	_, err := manager.GetComponentByName("nope")
	assert.Assert(t, eris.Is(err, component.ErrComponentNotRegistered))
}

func TestSchemaIsValidatedAgainstStorage(t *testing.T) {
	schemas := newSchemaStorageForTest(t)

	manager := component.NewManager(schemas)
	fooMetadata, err := component.NewComponentMetadata[Foo]()
	assert.NilError(t, err)
	assert.NilError(t, manager.RegisterComponent(fooMetadata))

	// A new manager over the same storage accepts the unchanged component.
	rerun := component.NewManager(schemas)
	fooAgain, err := component.NewComponentMetadata[Foo]()
	assert.NilError(t, err)
	assert.NilError(t, rerun.RegisterComponent(fooAgain))

	// A component with the same name but a drifted shape is rejected.
	drifted := component.NewManager(schemas)
	altered, err := component.NewComponentMetadata[fooAltered]()
	assert.NilError(t, err)
	err = drifted.RegisterComponent(altered)
	assert.Assert(t, eris.Is(err, types.ErrComponentSchemaMismatch))
}

func TestMetadataEncodeDecodeRoundTrip(t *testing.T) {
	fooMetadata, err := component.NewComponentMetadata[Foo]()
	assert.NilError(t, err)

	bz, err := fooMetadata.Encode(Foo{Value: 7})
	assert.NilError(t, err)

	decoded, err := fooMetadata.Decode(bz)
	assert.NilError(t, err)
	assert.Equal(t, decoded.(Foo), Foo{Value: 7})

	_, err = fooMetadata.Decode([]byte("{not json"))
	assert.Assert(t, err != nil)
}
