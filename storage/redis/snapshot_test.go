package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rotisserie/eris"
	"gotest.tools/v3/assert"

	"github.com/lattice-games/keepsake/storage/redis"
)

func newStorageForTest(t *testing.T) redis.Storage {
	t.Helper()
	s := miniredis.RunT(t)
	return redis.NewStorage(redis.Options{Addr: s.Addr()}, "test")
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	data := []byte(`{"entities":2,"blocks":[]}`)
	id, err := storage.SaveSnapshot(ctx, data)
	assert.NilError(t, err)
	assert.Assert(t, id != "")

	loaded, err := storage.LoadSnapshot(ctx, id)
	assert.NilError(t, err)
	assert.DeepEqual(t, loaded, data)
}

func TestLoadLatestSnapshot(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	_, err := storage.SaveSnapshot(ctx, []byte("first"))
	assert.NilError(t, err)
	_, err = storage.SaveSnapshot(ctx, []byte("second"))
	assert.NilError(t, err)

	loaded, err := storage.LoadSnapshot(ctx, "")
	assert.NilError(t, err)
	assert.Equal(t, string(loaded), "second")
}

func TestLoadMissingSnapshotFails(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	_, err := storage.LoadSnapshot(ctx, "")
	assert.Assert(t, eris.Is(err, redis.ErrNoSnapshotFound))

	_, err = storage.LoadSnapshot(ctx, "no-such-id")
	assert.Assert(t, eris.Is(err, redis.ErrNoSnapshotFound))
}

func TestListSnapshots(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	ids, err := storage.ListSnapshots(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(ids), 0)

	first, err := storage.SaveSnapshot(ctx, []byte("a"))
	assert.NilError(t, err)
	second, err := storage.SaveSnapshot(ctx, []byte("b"))
	assert.NilError(t, err)

	ids, err = storage.ListSnapshots(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(ids), 2)
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	assert.Assert(t, seen[first])
	assert.Assert(t, seen[second])
}

func TestDeleteSnapshot(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	id, err := storage.SaveSnapshot(ctx, []byte("doomed"))
	assert.NilError(t, err)
	assert.NilError(t, storage.DeleteSnapshot(ctx, id))

	_, err = storage.LoadSnapshot(ctx, id)
	assert.Assert(t, eris.Is(err, redis.ErrNoSnapshotFound))

	// The latest pointer referenced the deleted snapshot and must be gone too.
	_, err = storage.LoadSnapshot(ctx, "")
	assert.Assert(t, eris.Is(err, redis.ErrNoSnapshotFound))

	ids, err := storage.ListSnapshots(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(ids), 0)
}

func TestSchemaStorage(t *testing.T) {
	storage := newStorageForTest(t)

	_, err := storage.GetSchema("position")
	assert.Assert(t, eris.Is(err, redis.ErrNoSchemaFound))

	schema := []byte(`{"type":"object"}`)
	assert.NilError(t, storage.SetSchema("position", schema))

	got, err := storage.GetSchema("position")
	assert.NilError(t, err)
	assert.DeepEqual(t, got, schema)
}
