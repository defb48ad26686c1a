package entities

// Amenity is a feature a place can offer.
type Amenity struct {
	BaseModel
	Name string `json:"name" validate:"required,max=128"`
}

// NewAmenity returns an empty Amenity as an Entity.
func NewAmenity() Entity { return &Amenity{} }

// TypeName implements Entity.
func (*Amenity) TypeName() string { return "Amenity" }

// TableName implements Entity.
func (*Amenity) TableName() string { return "amenities" }

// ToRecord implements Entity.
func (a *Amenity) ToRecord() Record {
	return a.BaseModel.toRecord(Record{"name": a.Name})
}

// FromRecord implements Entity.
func (a *Amenity) FromRecord(r Record) error {
	if err := a.BaseModel.fromRecord(r); err != nil {
		return err
	}
	a.Name = recordString(r, "name", a.Name)
	return nil
}

func (a *Amenity) String() string { return Format(a) }
