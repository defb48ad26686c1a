package entities

// Place is a rentable listing in a City, owned by a User.
type Place struct {
	BaseModel
	CityID          string  `json:"city_id" validate:"required,max=60"`
	UserID          string  `json:"user_id" validate:"required,max=60"`
	Name            string  `json:"name" validate:"required,max=128"`
	Description     string  `json:"description" validate:"max=1024"`
	NumberRooms     int     `json:"number_rooms" validate:"gte=0"`
	NumberBathrooms int     `json:"number_bathrooms" validate:"gte=0"`
	MaxGuest        int     `json:"max_guest" validate:"gte=0"`
	PriceByNight    int     `json:"price_by_night" validate:"gte=0"`
	Latitude        float64 `json:"latitude" validate:"latitude_range"`
	Longitude       float64 `json:"longitude" validate:"longitude_range"`
}

// NewPlace returns an empty Place as an Entity.
func NewPlace() Entity { return &Place{} }

// TypeName implements Entity.
func (*Place) TypeName() string { return "Place" }

// TableName implements Entity.
func (*Place) TableName() string { return "places" }

// ToRecord implements Entity.
func (p *Place) ToRecord() Record {
	return p.BaseModel.toRecord(Record{
		"city_id":          p.CityID,
		"user_id":          p.UserID,
		"name":             p.Name,
		"description":      p.Description,
		"number_rooms":     p.NumberRooms,
		"number_bathrooms": p.NumberBathrooms,
		"max_guest":        p.MaxGuest,
		"price_by_night":   p.PriceByNight,
		"latitude":         p.Latitude,
		"longitude":        p.Longitude,
	})
}

// FromRecord implements Entity.
func (p *Place) FromRecord(r Record) error {
	var err error
	if err = p.BaseModel.fromRecord(r); err != nil {
		return err
	}
	p.CityID = recordString(r, "city_id", p.CityID)
	p.UserID = recordString(r, "user_id", p.UserID)
	p.Name = recordString(r, "name", p.Name)
	p.Description = recordString(r, "description", p.Description)
	if p.NumberRooms, err = recordInt(r, "number_rooms", p.NumberRooms); err != nil {
		return err
	}
	if p.NumberBathrooms, err = recordInt(r, "number_bathrooms", p.NumberBathrooms); err != nil {
		return err
	}
	if p.MaxGuest, err = recordInt(r, "max_guest", p.MaxGuest); err != nil {
		return err
	}
	if p.PriceByNight, err = recordInt(r, "price_by_night", p.PriceByNight); err != nil {
		return err
	}
	if p.Latitude, err = recordFloat(r, "latitude", p.Latitude); err != nil {
		return err
	}
	if p.Longitude, err = recordFloat(r, "longitude", p.Longitude); err != nil {
		return err
	}
	return nil
}

func (p *Place) String() string { return Format(p) }
