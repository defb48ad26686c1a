package entities

// Review is a user's text about a place.
type Review struct {
	BaseModel
	PlaceID string `json:"place_id" validate:"required,max=60"`
	UserID  string `json:"user_id" validate:"required,max=60"`
	Text    string `json:"text" validate:"required,max=1024"`
}

// NewReview returns an empty Review as an Entity.
func NewReview() Entity { return &Review{} }

// TypeName implements Entity.
func (*Review) TypeName() string { return "Review" }

// TableName implements Entity.
func (*Review) TableName() string { return "reviews" }

// ToRecord implements Entity.
func (rv *Review) ToRecord() Record {
	return rv.BaseModel.toRecord(Record{
		"place_id": rv.PlaceID,
		"user_id":  rv.UserID,
		"text":     rv.Text,
	})
}

// FromRecord implements Entity.
func (rv *Review) FromRecord(r Record) error {
	if err := rv.BaseModel.fromRecord(r); err != nil {
		return err
	}
	rv.PlaceID = recordString(r, "place_id", rv.PlaceID)
	rv.UserID = recordString(r, "user_id", rv.UserID)
	rv.Text = recordString(r, "text", rv.Text)
	return nil
}

func (rv *Review) String() string { return Format(rv) }
