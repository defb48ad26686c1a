package storage

import "errors"

var (
	// ErrNotReady is returned when an operation runs before Reload or after Close.
	ErrNotReady = errors.New("hbnb: storage is not ready")

	// ErrPersistence is returned when staging an entity fails. The in-flight unit of
	// work has been rolled back when it is returned.
	ErrPersistence = errors.New("hbnb: failed to persist entity")

	// ErrCommit is returned when Save fails.
	ErrCommit = errors.New("hbnb: failed to commit changes")

	// ErrQuery is returned when reading from the store fails.
	ErrQuery = errors.New("hbnb: query failed")

	// ErrSchema is returned when creating or dropping tables fails during Reload.
	ErrSchema = errors.New("hbnb: schema setup failed")

	// ErrUnknownType is returned for a type name outside the registered type set.
	ErrUnknownType = errors.New("hbnb: unknown entity type")

	// ErrNotFound is returned when no entity has the requested id.
	ErrNotFound = errors.New("hbnb: entity not found")

	// ErrDuplicateID is returned when an entity with the same id already exists.
	ErrDuplicateID = errors.New("hbnb: duplicate entity id")

	// ErrHasDependents is returned when a restrict policy blocks a delete.
	ErrHasDependents = errors.New("hbnb: entity has dependents")

	// ErrImmutableID is returned when a tracked entity's id was changed.
	ErrImmutableID = errors.New("hbnb: entity id cannot change")
)
