package redis

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

var ErrNoSnapshotFound = errors.New("no snapshot found")

// SnapshotStorage persists encoded snapshots. Each saved snapshot gets a
// unique ID; the most recent ID is also kept under a "latest" pointer so a
// game can reload its newest save without tracking IDs itself.
type SnapshotStorage struct {
	Client    *redis.Client
	Namespace string
}

func NewSnapshotStorage(client *redis.Client, namespace string) SnapshotStorage {
	return SnapshotStorage{
		Client:    client,
		Namespace: namespace,
	}
}

// SaveSnapshot stores the encoded snapshot bytes and returns the ID assigned
// to it. The "latest" pointer is updated in the same transaction.
func (r *SnapshotStorage) SaveSnapshot(ctx context.Context, data []byte) (string, error) {
	id := uuid.NewString()
	pipe := r.Client.TxPipeline()
	pipe.Set(ctx, snapshotKey(r.Namespace, id), data, 0)
	pipe.Set(ctx, snapshotLatestKey(r.Namespace), id, 0)
	pipe.SAdd(ctx, snapshotIndexKey(r.Namespace), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", eris.Wrap(err, "failed to save snapshot")
	}
	return id, nil
}

// LoadSnapshot returns the encoded bytes of the snapshot with the given ID.
// An empty ID loads the most recently saved snapshot.
func (r *SnapshotStorage) LoadSnapshot(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		latest, err := r.Client.Get(ctx, snapshotLatestKey(r.Namespace)).Result()
		if eris.Is(err, redis.Nil) {
			return nil, eris.Wrap(ErrNoSnapshotFound, "no snapshot has been saved")
		} else if err != nil {
			return nil, eris.Wrap(err, "")
		}
		id = latest
	}
	data, err := r.Client.Get(ctx, snapshotKey(r.Namespace, id)).Bytes()
	if eris.Is(err, redis.Nil) {
		return nil, eris.Wrap(ErrNoSnapshotFound, id)
	} else if err != nil {
		return nil, eris.Wrap(err, "")
	}
	return data, nil
}

// ListSnapshots returns the IDs of all saved snapshots. Order is unspecified.
func (r *SnapshotStorage) ListSnapshots(ctx context.Context) ([]string, error) {
	ids, err := r.Client.SMembers(ctx, snapshotIndexKey(r.Namespace)).Result()
	if err != nil {
		return nil, eris.Wrap(err, "")
	}
	return ids, nil
}

// DeleteSnapshot removes the snapshot with the given ID. The "latest" pointer
// is cleared if it referenced the deleted snapshot.
func (r *SnapshotStorage) DeleteSnapshot(ctx context.Context, id string) error {
	latest, err := r.Client.Get(ctx, snapshotLatestKey(r.Namespace)).Result()
	if err != nil && !eris.Is(err, redis.Nil) {
		return eris.Wrap(err, "")
	}

	pipe := r.Client.TxPipeline()
	pipe.Del(ctx, snapshotKey(r.Namespace, id))
	pipe.SRem(ctx, snapshotIndexKey(r.Namespace), id)
	if latest == id {
		pipe.Del(ctx, snapshotLatestKey(r.Namespace))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return eris.Wrap(err, "failed to delete snapshot")
	}
	return nil
}
