// Package storage defines the contract the hbnb storage engine exposes to its
// collaborators (HTTP routes, CLI) and the errors it reports.
//
// Errors are sentinels wrapped together with their cause, so callers can check
// both the category and the underlying failure with errors.Is:
//
//	if errors.Is(err, storage.ErrPersistence) && errors.Is(err, storage.ErrDuplicateID) { ... }
package storage
