package keepsake_test

import (
	"testing"

	"github.com/rotisserie/eris"
	"gotest.tools/v3/assert"

	"github.com/lattice-games/keepsake"
	"github.com/lattice-games/keepsake/types"
)

func TestSaveTranslatorAssignsDenseOrdinals(t *testing.T) {
	marked := []types.EntityID{42, 7, 100}
	translator, err := keepsake.NewSaveTranslator(marked)
	assert.NilError(t, err)

	for i, id := range marked {
		ord, err := translator.ToOrdinal(id)
		assert.NilError(t, err)
		assert.Equal(t, ord, types.Ordinal(i))

		live, err := translator.ToLive(ord)
		assert.NilError(t, err)
		assert.Equal(t, live, id)
	}
	assert.Equal(t, translator.Len(), 3)
}

func TestSaveTranslatorRejectsDuplicates(t *testing.T) {
	_, err := keepsake.NewSaveTranslator([]types.EntityID{1, 2, 1})
	assert.Assert(t, eris.Is(err, keepsake.ErrDuplicateEntity))
}

func TestSaveTranslatorRejectsUnknownEntity(t *testing.T) {
	translator, err := keepsake.NewSaveTranslator([]types.EntityID{1, 2})
	assert.NilError(t, err)

	_, err = translator.ToOrdinal(99)
	assert.Assert(t, eris.Is(err, keepsake.ErrUnknownEntity))
}

func TestLoadTranslatorAllocatesLazily(t *testing.T) {
	var next types.EntityID = 100
	allocated := 0
	allocate := func() types.EntityID {
		next++
		allocated++
		return next
	}
	translator := keepsake.NewLoadTranslator(3, allocate)

	// Ordinals can be discovered in any order; each allocates exactly once.
	first, err := translator.ToLive(2)
	assert.NilError(t, err)
	again, err := translator.ToLive(2)
	assert.NilError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, allocated, 1)

	second, err := translator.ToLive(0)
	assert.NilError(t, err)
	assert.Assert(t, second != first)
	assert.Equal(t, allocated, 2)

	// The reverse direction works for entities already discovered.
	ord, err := translator.ToOrdinal(first)
	assert.NilError(t, err)
	assert.Equal(t, ord, types.Ordinal(2))
}

func TestLoadTranslatorRejectsUndefinedOrdinal(t *testing.T) {
	var next types.EntityID
	translator := keepsake.NewLoadTranslator(2, func() types.EntityID {
		next++
		return next
	})

	_, err := translator.ToLive(2)
	assert.Assert(t, eris.Is(err, keepsake.ErrUnknownEntity))
}
