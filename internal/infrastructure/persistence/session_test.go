//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MGTheTrain/hbnb-storage/internal/domain/entities"
	"github.com/MGTheTrain/hbnb-storage/internal/domain/storage"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/testutil"
)

func newTestSession(t *testing.T) (*Session, *Registry) {
	t.Helper()

	db := SetupTestDB(t)
	registry := DefaultRegistry()
	require.NoError(t, db.AutoMigrate(registry.Models()...))

	session, err := NewSession(db, registry, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Dispose() })
	return session, registry
}

func lookupType(t *testing.T, registry *Registry, name string) TypeDescriptor {
	t.Helper()
	desc, err := registry.Lookup(name)
	require.NoError(t, err)
	return desc
}

func TestSession_TrackAssignsGeneratedFields(t *testing.T) {
	session, registry := newTestSession(t)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 6000, time.UTC)
	session.now = func() time.Time { return fixed }

	state := &entities.State{Name: "Utah"}
	require.NoError(t, session.Track(context.Background(), lookupType(t, registry, "State"), state))

	assert.NotEmpty(t, state.ID)
	assert.True(t, state.CreatedAt.Equal(fixed))
	assert.True(t, state.UpdatedAt.Equal(fixed))
}

func TestSession_TrackKeepsCallerID(t *testing.T) {
	session, registry := newTestSession(t)

	state := &entities.State{Name: "Utah"}
	state.ID = "state-1"
	require.NoError(t, session.Track(context.Background(), lookupType(t, registry, "State"), state))
	assert.Equal(t, "state-1", state.ID)
}

func TestSession_QueryAllSeesOpenTransaction(t *testing.T) {
	session, registry := newTestSession(t)
	bg := context.Background()
	desc := lookupType(t, registry, "Amenity")

	require.NoError(t, session.Track(bg, desc, &entities.Amenity{Name: "Wifi"}))
	require.NoError(t, session.Track(bg, desc, &entities.Amenity{Name: "Pool"}))

	objs, err := session.QueryAll(bg, desc)
	require.NoError(t, err)
	assert.Len(t, objs, 2)

	require.NoError(t, session.Rollback())

	objs, err = session.QueryAll(bg, desc)
	require.NoError(t, err)
	assert.Empty(t, objs)
}

func TestSession_CommitIsDurable(t *testing.T) {
	session, registry := newTestSession(t)
	bg := context.Background()
	desc := lookupType(t, registry, "Amenity")

	amenity := &entities.Amenity{Name: "Wifi"}
	require.NoError(t, session.Track(bg, desc, amenity))
	require.NoError(t, session.Commit(bg))
	require.NoError(t, session.Rollback())

	got, err := session.Get(bg, desc, amenity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wifi", got.(*entities.Amenity).Name)
}

func TestSession_RollbackKeepsCommittedTracking(t *testing.T) {
	session, registry := newTestSession(t)
	bg := context.Background()
	desc := lookupType(t, registry, "Amenity")

	amenity := &entities.Amenity{Name: "Wifi"}
	require.NoError(t, session.Track(bg, desc, amenity))
	require.NoError(t, session.Commit(bg))
	require.NoError(t, session.Rollback())

	amenity.Name = "Fast wifi"
	require.NoError(t, session.Commit(bg))

	got, err := session.Get(bg, desc, amenity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fast wifi", got.(*entities.Amenity).Name)
}

func TestSession_CommitFailsWhenRowVanished(t *testing.T) {
	session, registry := newTestSession(t)
	bg := context.Background()
	desc := lookupType(t, registry, "Amenity")

	amenity := &entities.Amenity{Name: "Wifi"}
	require.NoError(t, session.Track(bg, desc, amenity))
	require.NoError(t, session.Commit(bg))

	require.NoError(t, session.tx.Where("id = ?", amenity.ID).Delete(desc.Model()).Error)
	amenity.Name = "Gone"

	err := session.Commit(bg)
	assert.ErrorIs(t, err, storage.ErrCommit)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Nil(t, session.lookup(entities.Ref(amenity)))

	require.NoError(t, session.Track(bg, desc, &entities.Amenity{Name: "Pool"}))
	require.NoError(t, session.Commit(bg))
}

func TestSession_ExpireOnCommitDropsTracking(t *testing.T) {
	session, registry := newTestSession(t)
	session.expireOnCommit = true
	bg := context.Background()
	desc := lookupType(t, registry, "Amenity")

	for i := 0; i < 20; i++ {
		require.NoError(t, session.Track(bg, desc, &entities.Amenity{Name: "Wifi"}))
		require.NoError(t, session.Commit(bg))
	}
	assert.Empty(t, session.tracked)
	assert.Empty(t, session.pending)
	assert.Empty(t, session.order)

	objs, err := session.QueryAll(bg, desc)
	require.NoError(t, err)
	assert.Len(t, objs, 20)
}

func TestSession_RejectedDeleteFailsOnce(t *testing.T) {
	session, _ := newTestSession(t)
	bg := context.Background()

	session.rejectDelete(storage.ErrUnknownType)
	err := session.Commit(bg)
	assert.ErrorIs(t, err, storage.ErrCommit)
	assert.ErrorIs(t, err, storage.ErrUnknownType)

	require.NoError(t, session.Commit(bg))
}

func TestSession_DisposeIsIdempotent(t *testing.T) {
	session, registry := newTestSession(t)

	require.NoError(t, session.Dispose())
	require.NoError(t, session.Dispose())

	_, err := session.QueryAll(context.Background(), lookupType(t, registry, "User"))
	assert.ErrorIs(t, err, storage.ErrNotReady)
	assert.ErrorIs(t, session.Commit(context.Background()), storage.ErrNotReady)
}

func TestRecordsEqual(t *testing.T) {
	now := time.Now().UTC()
	a := entities.Record{"name": "x", "created_at": now}

	assert.True(t, recordsEqual(a, entities.Record{"name": "x", "created_at": now.In(time.FixedZone("X", 3600))}))
	assert.False(t, recordsEqual(a, entities.Record{"name": "y", "created_at": now}))
	assert.False(t, recordsEqual(a, entities.Record{"name": "x"}))
}
