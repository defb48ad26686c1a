package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/MGTheTrain/hbnb-storage/internal/domain/entities"
	"github.com/MGTheTrain/hbnb-storage/internal/domain/storage"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/logger"
)

// Options tune a DBStorage.
type Options struct {
	// ResetSchema drops every registered table on Reload before recreating it.
	// Only meant for test environments (HBNB_ENV=test).
	ResetSchema bool

	// ExpireOnCommit releases every tracked entity after a successful Save, so
	// changes made to them afterwards are not written. Long-lived engines serving
	// independent requests should set it.
	ExpireOnCommit bool
}

// DBStorage is the GORM-backed storage engine. It owns the database handle and at
// most one Session. It is not safe for concurrent use; run one instance per worker
// or serialize access.
type DBStorage struct {
	db       *gorm.DB
	registry *Registry
	logger   logger.Logger
	opts     Options

	session *Session
	state   storage.State
}

var _ storage.Engine = (*DBStorage)(nil)

// NewDBStorage creates an engine on an open database handle. No session exists
// until Reload is called.
func NewDBStorage(db *gorm.DB, registry *Registry, log logger.Logger, opts Options) (*DBStorage, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &DBStorage{
		db:       db,
		registry: registry,
		logger:   log.With("component", "db_storage"),
		opts:     opts,
		state:    storage.StateUninitialized,
	}, nil
}

// Reload creates missing tables and opens a fresh session. Any previous session is
// disposed first and its uncommitted work is lost.
func (s *DBStorage) Reload(ctx context.Context) error {
	if s.session != nil {
		if err := s.session.Dispose(); err != nil {
			s.logger.Warn("failed to dispose previous session: ", err)
		}
		s.session = nil
	}

	migrator := s.db.WithContext(ctx).Migrator()
	schemaModels := s.registry.Models()

	if s.opts.ResetSchema {
		// Drop in reverse registration order so children go before their parents.
		for i := len(schemaModels) - 1; i >= 0; i-- {
			if err := migrator.DropTable(schemaModels[i]); err != nil {
				return fmt.Errorf("%w: drop %T: %w", storage.ErrSchema, schemaModels[i], err)
			}
		}
		s.logger.Warn("dropped all tables for a fresh test schema")
	}

	if err := s.db.WithContext(ctx).AutoMigrate(schemaModels...); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSchema, err)
	}

	session, err := NewSession(s.db, s.registry, s.logger)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSchema, err)
	}
	session.expireOnCommit = s.opts.ExpireOnCommit
	s.session = session
	s.state = storage.StateReady

	s.logger.Info("storage reloaded with ", len(schemaModels), " tables")
	return nil
}

func (s *DBStorage) ready() error {
	if s.state != storage.StateReady || s.session == nil {
		return fmt.Errorf("%w: state is %s", storage.ErrNotReady, s.state)
	}
	return nil
}

// All returns the string form of every stored entity of typeName keyed by
// "Type.id". An empty typeName aggregates every registered type.
func (s *DBStorage) All(ctx context.Context, typeName string) (map[string]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	types := s.registry.Types()
	if typeName != "" {
		desc, err := s.registry.Lookup(typeName)
		if err != nil {
			return nil, err
		}
		types = []TypeDescriptor{desc}
	}

	result := make(map[string]string)
	for _, desc := range types {
		objs, err := s.session.QueryAll(ctx, desc)
		if err != nil {
			return nil, err
		}
		for _, obj := range objs {
			result[entities.Ref(obj)] = obj.String()
		}
	}
	return result, nil
}

// Get returns a detached copy of the entity typeName.id.
func (s *DBStorage) Get(ctx context.Context, typeName, id string) (entities.Entity, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	desc, err := s.registry.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	return s.session.Get(ctx, desc, id)
}

// New stages entity for insertion and fills its id and timestamps from the
// stored row before returning.
func (s *DBStorage) New(ctx context.Context, entity entities.Entity) error {
	if err := s.ready(); err != nil {
		return err
	}
	if entity == nil {
		return fmt.Errorf("%w: nil entity", storage.ErrPersistence)
	}

	desc, err := s.registry.Lookup(entity.TypeName())
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrPersistence, err)
	}
	if err := s.session.Track(ctx, desc, entity); err != nil {
		return err
	}

	s.logger.Info("created ", entities.Ref(entity))
	return nil
}

// Save commits all staged changes.
func (s *DBStorage) Save(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.session.Commit(ctx)
}

// Delete stages the removal of entity; errors, including an unregistered type,
// surface on the next Save. A nil entity is a no-op.
func (s *DBStorage) Delete(ctx context.Context, entity entities.Entity) error {
	if err := s.ready(); err != nil {
		return err
	}
	if entity == nil {
		return nil
	}

	desc, err := s.registry.Lookup(entity.TypeName())
	if err != nil {
		s.session.rejectDelete(fmt.Errorf("delete %s: %w", entities.Ref(entity), err))
		return nil
	}
	s.session.Delete(desc, entity)
	return nil
}

// Close disposes the current session. The database handle stays open so a later
// Reload can start over. Closing twice is a no-op.
func (s *DBStorage) Close() error {
	if s.session == nil {
		if s.state == storage.StateReady {
			s.state = storage.StateClosed
		}
		return nil
	}

	err := s.session.Dispose()
	s.session = nil
	s.state = storage.StateClosed
	if err != nil {
		return fmt.Errorf("failed to dispose session: %w", err)
	}
	s.logger.Info("storage closed")
	return nil
}

// NewEntity returns an empty entity of a registered type.
func (s *DBStorage) NewEntity(typeName string) (entities.Entity, error) {
	desc, err := s.registry.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	return desc.New(), nil
}

// State reports the lifecycle state.
func (s *DBStorage) State() storage.State {
	return s.state
}

// Registry returns the registered type set.
func (s *DBStorage) Registry() *Registry {
	return s.registry
}
