package entities

// City belongs to a State.
type City struct {
	BaseModel
	StateID string `json:"state_id" validate:"required,max=60"`
	Name    string `json:"name" validate:"required,max=128"`
}

// NewCity returns an empty City as an Entity.
func NewCity() Entity { return &City{} }

// TypeName implements Entity.
func (*City) TypeName() string { return "City" }

// TableName implements Entity.
func (*City) TableName() string { return "cities" }

// ToRecord implements Entity.
func (c *City) ToRecord() Record {
	return c.BaseModel.toRecord(Record{
		"state_id": c.StateID,
		"name":     c.Name,
	})
}

// FromRecord implements Entity.
func (c *City) FromRecord(r Record) error {
	if err := c.BaseModel.fromRecord(r); err != nil {
		return err
	}
	c.StateID = recordString(r, "state_id", c.StateID)
	c.Name = recordString(r, "name", c.Name)
	return nil
}

func (c *City) String() string { return Format(c) }
