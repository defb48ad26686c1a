package storage

import (
	"context"

	"github.com/MGTheTrain/hbnb-storage/internal/domain/entities"
)

// State is the lifecycle state of a storage engine.
type State int

const (
	// StateUninitialized is the state before the first Reload.
	StateUninitialized State = iota
	// StateReady means a session is open and CRUD operations are allowed.
	StateReady
	// StateClosed is the state after Close until the next Reload.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Engine is the storage contract consumed by collaborators.
// Implementations are not safe for concurrent use.
type Engine interface {
	// Reload creates missing tables and opens a fresh session, discarding prior session state.
	Reload(ctx context.Context) error

	// All returns the string form of every entity of typeName keyed by "Type.id".
	// An empty typeName aggregates every registered type.
	All(ctx context.Context, typeName string) (map[string]string, error)

	// Get returns a detached copy of one entity.
	Get(ctx context.Context, typeName, id string) (entities.Entity, error)

	// New stages an entity and populates its generated fields in place.
	New(ctx context.Context, entity entities.Entity) error

	// Save commits all staged changes.
	Save(ctx context.Context) error

	// Delete stages the removal of an entity. A nil entity is a no-op.
	Delete(ctx context.Context, entity entities.Entity) error

	// Close disposes the current session. It is idempotent.
	Close() error

	// NewEntity returns an empty entity of a registered type.
	NewEntity(typeName string) (entities.Entity, error)

	// State reports the lifecycle state.
	State() State
}
