package persistence

import (
	"fmt"

	"github.com/MGTheTrain/hbnb-storage/internal/domain/entities"
	"github.com/MGTheTrain/hbnb-storage/internal/domain/storage"
	"github.com/MGTheTrain/hbnb-storage/internal/infrastructure/persistence/models"
)

// TypeDescriptor ties a registered type name to its table, its entity constructor
// and its GORM schema model.
type TypeDescriptor struct {
	// Name is the type name used in "Type.id" keys (e.g. "User").
	Name string

	// Table is the table identity (e.g. "users").
	Table string

	// New returns an empty entity of the type.
	New func() entities.Entity

	// Model returns a pointer to a zero GORM model for migrations and query scoping.
	Model func() any
}

// DeletePolicy decides what happens to dependents when a parent is deleted.
type DeletePolicy int

const (
	// Cascade deletes dependents before the parent, recursively.
	Cascade DeletePolicy = iota
	// Restrict refuses to delete a parent that still has dependents.
	Restrict
)

func (p DeletePolicy) String() string {
	if p == Restrict {
		return "restrict"
	}
	return "cascade"
}

// Relationship declares that ChildType rows reference ParentType rows through ForeignKey.
type Relationship struct {
	ParentType string
	ChildType  string
	ForeignKey string
	Policy     DeletePolicy
}

// Registry is the ordered set of registered types and their relationships.
type Registry struct {
	types         []TypeDescriptor
	byName        map[string]TypeDescriptor
	relationships []Relationship
	byParent      map[string][]Relationship
}

// NewRegistry builds a registry from an explicit type list and relationship list.
// Type names must be unique and relationships must only name registered types.
func NewRegistry(types []TypeDescriptor, relationships []Relationship) (*Registry, error) {
	r := &Registry{
		byName:   make(map[string]TypeDescriptor, len(types)),
		byParent: make(map[string][]Relationship),
	}

	for _, t := range types {
		if t.Name == "" || t.Table == "" || t.New == nil || t.Model == nil {
			return nil, fmt.Errorf("incomplete type descriptor %q", t.Name)
		}
		if _, dup := r.byName[t.Name]; dup {
			return nil, fmt.Errorf("type %q registered twice", t.Name)
		}
		r.types = append(r.types, t)
		r.byName[t.Name] = t
	}

	for _, rel := range relationships {
		if _, ok := r.byName[rel.ParentType]; !ok {
			return nil, fmt.Errorf("relationship parent: %w: %s", storage.ErrUnknownType, rel.ParentType)
		}
		if _, ok := r.byName[rel.ChildType]; !ok {
			return nil, fmt.Errorf("relationship child: %w: %s", storage.ErrUnknownType, rel.ChildType)
		}
		if rel.ForeignKey == "" {
			return nil, fmt.Errorf("relationship %s->%s has no foreign key", rel.ParentType, rel.ChildType)
		}
		r.relationships = append(r.relationships, rel)
		r.byParent[rel.ParentType] = append(r.byParent[rel.ParentType], rel)
	}

	return r, nil
}

// DefaultRegistry returns the registry of all hbnb types.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultTypes(), DefaultRelationships())
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultTypes lists every hbnb entity type.
func DefaultTypes() []TypeDescriptor {
	return []TypeDescriptor{
		{Name: "User", Table: "users", New: entities.NewUser, Model: func() any { return &models.UserModel{} }},
		{Name: "State", Table: "states", New: entities.NewState, Model: func() any { return &models.StateModel{} }},
		{Name: "City", Table: "cities", New: entities.NewCity, Model: func() any { return &models.CityModel{} }},
		{Name: "Amenity", Table: "amenities", New: entities.NewAmenity, Model: func() any { return &models.AmenityModel{} }},
		{Name: "Place", Table: "places", New: entities.NewPlace, Model: func() any { return &models.PlaceModel{} }},
		{Name: "Review", Table: "reviews", New: entities.NewReview, Model: func() any { return &models.ReviewModel{} }},
	}
}

// DefaultRelationships declares the hbnb delete policies.
func DefaultRelationships() []Relationship {
	return []Relationship{
		{ParentType: "User", ChildType: "Place", ForeignKey: "user_id", Policy: Cascade},
		{ParentType: "User", ChildType: "Review", ForeignKey: "user_id", Policy: Cascade},
		{ParentType: "State", ChildType: "City", ForeignKey: "state_id", Policy: Cascade},
		{ParentType: "City", ChildType: "Place", ForeignKey: "city_id", Policy: Cascade},
		{ParentType: "Place", ChildType: "Review", ForeignKey: "place_id", Policy: Cascade},
	}
}

// Types returns the registered types in registration order.
func (r *Registry) Types() []TypeDescriptor {
	return r.types
}

// Lookup returns the descriptor of a type name.
func (r *Registry) Lookup(name string) (TypeDescriptor, error) {
	t, ok := r.byName[name]
	if !ok {
		return TypeDescriptor{}, fmt.Errorf("%w: %q", storage.ErrUnknownType, name)
	}
	return t, nil
}

// ChildrenOf returns the relationships where typeName is the parent.
func (r *Registry) ChildrenOf(typeName string) []Relationship {
	return r.byParent[typeName]
}

// Relationships returns all declared relationships.
func (r *Registry) Relationships() []Relationship {
	return r.relationships
}

// Models returns one zero model per registered type, in registration order.
func (r *Registry) Models() []any {
	out := make([]any, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t.Model())
	}
	return out
}
