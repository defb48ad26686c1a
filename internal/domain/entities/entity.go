package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"github.com/MGTheTrain/hbnb-storage/internal/pkg/validators"
)

// Record is the flat key-value form of an entity, keyed by column name.
type Record map[string]any

// Entity is implemented by every type the storage engine can persist.
type Entity interface {
	// TypeName returns the registered type name (e.g. "User").
	TypeName() string

	// TableName returns the table identity for the type (e.g. "users").
	TableName() string

	// GetID returns the entity identifier, empty until staged.
	GetID() string

	// Base exposes the engine-maintained fields.
	Base() *BaseModel

	// ToRecord serializes the entity into its flat record form.
	ToRecord() Record

	// FromRecord populates the entity from a flat record.
	FromRecord(r Record) error

	String() string
}

// BaseModel holds the identity and timestamps shared by all entities.
type BaseModel struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the entity identifier.
func (b *BaseModel) GetID() string {
	return b.ID
}

// Base returns the base model itself.
func (b *BaseModel) Base() *BaseModel {
	return b
}

func (b *BaseModel) toRecord(r Record) Record {
	r["id"] = b.ID
	r["created_at"] = b.CreatedAt
	r["updated_at"] = b.UpdatedAt
	return r
}

func (b *BaseModel) fromRecord(r Record) error {
	var err error
	if v, ok := r["id"]; ok {
		b.ID = cast.ToString(v)
	}
	if b.CreatedAt, err = recordTime(r, "created_at", b.CreatedAt); err != nil {
		return err
	}
	if b.UpdatedAt, err = recordTime(r, "updated_at", b.UpdatedAt); err != nil {
		return err
	}
	return nil
}

// Ref returns the composite "Type.id" key of an entity.
func Ref(e Entity) string {
	return e.TypeName() + "." + e.GetID()
}

// Clone returns a detached copy of e built from its record form.
func Clone(e Entity, newFn func() Entity) (Entity, error) {
	c := newFn()
	if err := c.FromRecord(e.ToRecord()); err != nil {
		return nil, fmt.Errorf("clone %s: %w", Ref(e), err)
	}
	return c, nil
}

// Validate checks the struct tags of an entity.
func Validate(e Entity) error {
	validate := validator.New()

	if err := validate.RegisterValidation("latitude_range", validators.LatitudeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("longitude_range", validators.LongitudeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(e)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Format renders the human-readable form "[Type] (id) {key='value', ...}".
// Keys are sorted; keys starting with "_" are internal and skipped.
func Format(e Entity) string {
	r := e.ToRecord()
	keys := make([]string, 0, len(r))
	for k := range r {
		if strings.HasPrefix(k, "_") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s='%s'", k, formatValue(r[k])))
	}
	return fmt.Sprintf("[%s] (%s) {%s}", e.TypeName(), e.GetID(), strings.Join(parts, ", "))
}

func formatValue(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return cast.ToString(v)
}
