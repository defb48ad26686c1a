package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MGTheTrain/hbnb-storage/internal/domain/entities"
	"github.com/MGTheTrain/hbnb-storage/internal/domain/storage"
	"github.com/MGTheTrain/hbnb-storage/internal/pkg/logger"
)

// trackedEntity is a live entity handed to Track together with the record it had
// when it was last written.
type trackedEntity struct {
	desc     TypeDescriptor
	entity   entities.Entity
	snapshot entities.Record
}

// stagedDelete is a removal waiting for Commit. A delete that cannot be applied
// carries err instead and fails the commit.
type stagedDelete struct {
	desc   TypeDescriptor
	entity entities.Entity
	err    error
}

// Session is a unit of work over one open transaction.
// It is not safe for concurrent use.
type Session struct {
	db       *gorm.DB
	tx       *gorm.DB
	registry *Registry
	logger   logger.Logger
	now      func() time.Time

	// tracked holds committed entities, pending those inserted in the open transaction.
	tracked map[string]*trackedEntity
	pending map[string]*trackedEntity
	order   []string
	deletes []stagedDelete

	// expireOnCommit drops all tracking after each successful commit.
	expireOnCommit bool
	disposed       bool
}

// NewSession opens a transaction on db and starts tracking.
func NewSession(db *gorm.DB, registry *Registry, log logger.Logger) (*Session, error) {
	s := &Session{
		db:       db,
		registry: registry,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		tracked:  make(map[string]*trackedEntity),
		pending:  make(map[string]*trackedEntity),
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	return s, nil
}

// begin opens the transaction without a caller context: database/sql rolls a
// transaction back when its context ends, and the session outlives any single call.
func (s *Session) begin() error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	s.tx = tx
	return nil
}

// Track validates e, assigns its id and timestamps, inserts it into the open
// transaction and refreshes e from the stored row. On failure the whole
// transaction is rolled back.
func (s *Session) Track(ctx context.Context, desc TypeDescriptor, e entities.Entity) error {
	if s.disposed {
		return storage.ErrNotReady
	}
	if e == nil {
		return fmt.Errorf("%w: nil %s", storage.ErrPersistence, desc.Name)
	}

	base := e.Base()
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	now := s.now()
	base.CreatedAt = now
	base.UpdatedAt = now
	ref := entities.Ref(e)

	if err := entities.Validate(e); err != nil {
		return s.abort(ref, err)
	}

	tx := s.tx.WithContext(ctx)

	var existing int64
	if err := tx.Model(desc.Model()).Where("id = ?", base.ID).Count(&existing).Error; err != nil {
		return s.abort(ref, err)
	}
	if existing > 0 {
		return s.abort(ref, storage.ErrDuplicateID)
	}

	if err := tx.Model(desc.Model()).Create(map[string]any(e.ToRecord())).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			err = fmt.Errorf("%w: %w", storage.ErrDuplicateID, err)
		}
		return s.abort(ref, err)
	}

	row, err := s.fetch(tx, desc, base.ID)
	if err != nil {
		return s.abort(ref, err)
	}
	if err := e.FromRecord(row); err != nil {
		return s.abort(ref, err)
	}

	s.pending[ref] = &trackedEntity{desc: desc, entity: e, snapshot: e.ToRecord()}
	s.order = append(s.order, ref)
	s.logger.Debug("staged ", ref)
	return nil
}

// abort rolls back the unit of work after a failed Track.
func (s *Session) abort(ref string, cause error) error {
	s.logger.Warn("rolling back after failed insert of ", ref, ": ", cause)
	if err := s.Rollback(); err != nil {
		cause = errors.Join(cause, err)
	}
	return fmt.Errorf("%w: %s: %w", storage.ErrPersistence, ref, cause)
}

func (s *Session) fetch(tx *gorm.DB, desc TypeDescriptor, id string) (entities.Record, error) {
	row := map[string]any{}
	err := tx.Model(desc.Model()).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s.%s", storage.ErrNotFound, desc.Name, id)
	}
	if err != nil {
		return nil, err
	}
	return entities.Record(row), nil
}

// QueryAll returns every row of desc as detached entities.
func (s *Session) QueryAll(ctx context.Context, desc TypeDescriptor) ([]entities.Entity, error) {
	if s.disposed {
		return nil, storage.ErrNotReady
	}

	var rows []map[string]any
	if err := s.tx.WithContext(ctx).Model(desc.Model()).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrQuery, desc.Table, err)
	}

	out := make([]entities.Entity, 0, len(rows))
	for _, row := range rows {
		e := desc.New()
		if err := e.FromRecord(entities.Record(row)); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", storage.ErrQuery, desc.Table, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// Get returns a detached copy of one row.
func (s *Session) Get(ctx context.Context, desc TypeDescriptor, id string) (entities.Entity, error) {
	if s.disposed {
		return nil, storage.ErrNotReady
	}

	row, err := s.fetch(s.tx.WithContext(ctx), desc, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrQuery, desc.Table, err)
	}

	e := desc.New()
	if err := e.FromRecord(row); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrQuery, desc.Table, err)
	}
	return e, nil
}

// Delete stages the removal of e. Nothing reaches the store before Commit.
func (s *Session) Delete(desc TypeDescriptor, e entities.Entity) {
	if e == nil || s.disposed {
		return
	}
	s.deletes = append(s.deletes, stagedDelete{desc: desc, entity: e})
}

// rejectDelete stages a delete that fails the next Commit with cause.
func (s *Session) rejectDelete(cause error) {
	if s.disposed {
		return
	}
	s.deletes = append(s.deletes, stagedDelete{err: cause})
}

// Commit flushes modified tracked entities, runs staged deletes with their
// relationship policies and commits. On failure everything staged is rolled back
// and the entity whose flush failed is no longer tracked.
func (s *Session) Commit(ctx context.Context) error {
	if s.disposed {
		return storage.ErrNotReady
	}

	tx := s.tx.WithContext(ctx)
	removed := make(map[string]bool)

	if ref, err := s.flushModified(tx); err != nil {
		s.untrack(ref)
		return s.failCommit(err)
	}
	for _, d := range s.deletes {
		if d.err != nil {
			return s.failCommit(d.err)
		}
		if err := s.deleteWithDependents(tx, d.desc, d.entity.GetID(), removed); err != nil {
			return s.failCommit(err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return s.failCommit(err)
	}

	for ref, t := range s.pending {
		s.tracked[ref] = t
	}
	s.pending = make(map[string]*trackedEntity)
	s.deletes = nil

	if s.expireOnCommit {
		s.tracked = make(map[string]*trackedEntity)
		s.order = nil
	} else {
		for ref := range removed {
			delete(s.tracked, ref)
		}
		s.compactOrder()
		for _, t := range s.tracked {
			t.snapshot = t.entity.ToRecord()
		}
	}

	s.logger.Debug("committed, tracking ", len(s.tracked), " entities")
	return s.begin()
}

func (s *Session) failCommit(cause error) error {
	s.logger.Error("commit failed: ", cause)
	if err := s.Rollback(); err != nil {
		cause = errors.Join(cause, err)
	}
	return fmt.Errorf("%w: %w", storage.ErrCommit, cause)
}

// flushModified writes tracked entities whose record differs from their snapshot.
// On failure it also returns the ref of the entity that could not be written.
func (s *Session) flushModified(tx *gorm.DB) (string, error) {
	for _, ref := range s.order {
		t := s.lookup(ref)
		if t == nil {
			continue
		}

		current := t.entity.ToRecord()
		if current["id"] != t.snapshot["id"] {
			return ref, fmt.Errorf("%w: %s became %s", storage.ErrImmutableID, ref, entities.Ref(t.entity))
		}
		if recordsEqual(current, t.snapshot) {
			continue
		}
		if err := entities.Validate(t.entity); err != nil {
			return ref, fmt.Errorf("%w: %s: %w", storage.ErrPersistence, ref, err)
		}

		now := s.now()
		t.entity.Base().UpdatedAt = now
		current["updated_at"] = now
		delete(current, "id")
		delete(current, "created_at")

		res := tx.Model(t.desc.Model()).Where("id = ?", t.entity.GetID()).Updates(map[string]any(current))
		if res.Error != nil {
			return ref, fmt.Errorf("update %s: %w", ref, res.Error)
		}
		if res.RowsAffected == 0 {
			return ref, fmt.Errorf("update %s: %w", ref, storage.ErrNotFound)
		}
		s.logger.Debug("flushed changes of ", ref)
	}
	return "", nil
}

// deleteWithDependents applies the relationship policies of desc, then deletes the row.
func (s *Session) deleteWithDependents(tx *gorm.DB, desc TypeDescriptor, id string, removed map[string]bool) error {
	ref := desc.Name + "." + id
	if removed[ref] {
		return nil
	}
	removed[ref] = true

	for _, rel := range s.registry.ChildrenOf(desc.Name) {
		child, err := s.registry.Lookup(rel.ChildType)
		if err != nil {
			return err
		}

		var ids []string
		err = tx.Model(child.Model()).
			Where(clause.Eq{Column: clause.Column{Name: rel.ForeignKey}, Value: id}).
			Pluck("id", &ids).Error
		if err != nil {
			return fmt.Errorf("find %s of %s: %w", child.Table, ref, err)
		}
		if len(ids) == 0 {
			continue
		}

		if rel.Policy == Restrict {
			return fmt.Errorf("%w: %s is referenced by %d %s", storage.ErrHasDependents, ref, len(ids), child.Name)
		}
		for _, childID := range ids {
			if err := s.deleteWithDependents(tx, child, childID, removed); err != nil {
				return err
			}
		}
		s.logger.Info("cascade deleted ", len(ids), " ", child.Name, " of ", ref)
	}

	res := tx.Where("id = ?", id).Delete(desc.Model())
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", ref, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s: %w", ref, storage.ErrNotFound)
	}
	return nil
}

// Rollback discards everything staged since the last commit and opens a new transaction.
func (s *Session) Rollback() error {
	if s.disposed {
		return storage.ErrNotReady
	}

	err := s.tx.Rollback().Error
	if errors.Is(err, sql.ErrTxDone) {
		err = nil
	}

	s.pending = make(map[string]*trackedEntity)
	s.deletes = nil
	s.compactOrder()

	if beginErr := s.begin(); beginErr != nil {
		return errors.Join(err, beginErr)
	}
	return err
}

// Dispose rolls back the open transaction and drops all tracking. It is idempotent.
func (s *Session) Dispose() error {
	if s.disposed {
		return nil
	}
	s.disposed = true

	err := s.tx.Rollback().Error
	if errors.Is(err, sql.ErrTxDone) {
		err = nil
	}

	s.tx = nil
	s.tracked = nil
	s.pending = nil
	s.order = nil
	s.deletes = nil
	return err
}

func (s *Session) lookup(ref string) *trackedEntity {
	if t, ok := s.pending[ref]; ok {
		return t
	}
	return s.tracked[ref]
}

// untrack forgets ref. The caller still holds the entity but later commits ignore it.
func (s *Session) untrack(ref string) {
	if ref == "" {
		return
	}
	delete(s.tracked, ref)
	delete(s.pending, ref)
	s.compactOrder()
	s.logger.Warn("stopped tracking ", ref)
}

func (s *Session) compactOrder() {
	kept := s.order[:0]
	for _, ref := range s.order {
		if s.lookup(ref) != nil {
			kept = append(kept, ref)
		}
	}
	s.order = kept
}

func recordsEqual(a, b entities.Record) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if at, isTime := av.(time.Time); isTime {
			bt, ok := bv.(time.Time)
			if !ok || !at.Equal(bt) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}
