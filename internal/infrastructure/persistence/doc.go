// Package persistence implements the hbnb storage engine on top of GORM.
//
// DBStorage owns one database handle and at most one unit-of-work Session. The
// session wraps an open transaction: New inserts into it immediately so generated
// fields are visible at once, Save commits it, and a failed insert rolls all of it
// back. Reads always return detached copies of the stored rows.
//
// Supported backends are MySQL, PostgreSQL and SQLite.
package persistence
