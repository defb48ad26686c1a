package entities

// State groups cities.
type State struct {
	BaseModel
	Name string `json:"name" validate:"required,max=128"`
}

// NewState returns an empty State as an Entity.
func NewState() Entity { return &State{} }

// TypeName implements Entity.
func (*State) TypeName() string { return "State" }

// TableName implements Entity.
func (*State) TableName() string { return "states" }

// ToRecord implements Entity.
func (s *State) ToRecord() Record {
	return s.BaseModel.toRecord(Record{"name": s.Name})
}

// FromRecord implements Entity.
func (s *State) FromRecord(r Record) error {
	if err := s.BaseModel.fromRecord(r); err != nil {
		return err
	}
	s.Name = recordString(r, "name", s.Name)
	return nil
}

func (s *State) String() string { return Format(s) }
