//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MGTheTrain/hbnb-storage/internal/domain/entities"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/config"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/testutil"
)

// TestContext holds the test database and a reloaded engine
type TestContext struct {
	DB      *gorm.DB
	Storage *DBStorage
}

// SetupTestDB opens an in-memory SQLite database with automatic cleanup
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
	})
	return db
}

// SetupTestStorage returns a Ready engine over a fresh database using registry
// (nil means the default registry).
func SetupTestStorage(t *testing.T, registry *Registry) *TestContext {
	t.Helper()
	return SetupTestStorageWithOptions(t, registry, Options{})
}

// SetupTestStorageWithOptions is SetupTestStorage with engine options
func SetupTestStorageWithOptions(t *testing.T, registry *Registry, opts Options) *TestContext {
	t.Helper()

	db := SetupTestDB(t)
	store, err := NewDBStorage(db, registry, testutil.SetupTestLogger(t), opts)
	require.NoError(t, err, "Failed to create storage")

	// Close runs before CloseDB: cleanups are LIFO.
	t.Cleanup(func() {
		_ = store.Close()
	})

	require.NoError(t, store.Reload(context.Background()), "Failed to reload storage")
	return &TestContext{DB: db, Storage: store}
}

// CreateTestUser returns an unsaved user with the required fields set
func CreateTestUser(t *testing.T, email string) *entities.User {
	t.Helper()

	if email == "" {
		email = "a@x.com"
	}
	return &entities.User{Email: email, Password: "pwd", FirstName: "Ada", LastName: "Lovelace"}
}

// CreateTestPlace returns an unsaved place owned by user in city
func CreateTestPlace(t *testing.T, cityID, userID string) *entities.Place {
	t.Helper()

	return &entities.Place{
		CityID:       cityID,
		UserID:       userID,
		Name:         "Loft",
		NumberRooms:  2,
		MaxGuest:     4,
		PriceByNight: 120,
		Latitude:     37.77,
		Longitude:    -122.41,
	}
}
