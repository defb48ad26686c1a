package models

import "time"

// BaseColumns are the columns every hbnb table carries.
type BaseColumns struct {
	ID        string    `gorm:"primaryKey;type:varchar(60);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// UserModel is the GORM schema model of the users table
type UserModel struct {
	BaseColumns
	Email     string `gorm:"type:varchar(128);not null"`
	Password  string `gorm:"type:varchar(128);not null"`
	FirstName string `gorm:"type:varchar(128)"`
	LastName  string `gorm:"type:varchar(128)"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string { return "users" }

// StateModel is the GORM schema model of the states table
type StateModel struct {
	BaseColumns
	Name string `gorm:"type:varchar(128);not null"`
}

// TableName specifies the table name for GORM
func (StateModel) TableName() string { return "states" }

// CityModel is the GORM schema model of the cities table
type CityModel struct {
	BaseColumns
	StateID string `gorm:"type:varchar(60);not null;index"`
	Name    string `gorm:"type:varchar(128);not null"`
}

// TableName specifies the table name for GORM
func (CityModel) TableName() string { return "cities" }

// PlaceModel is the GORM schema model of the places table
type PlaceModel struct {
	BaseColumns
	CityID          string  `gorm:"type:varchar(60);not null;index"`
	UserID          string  `gorm:"type:varchar(60);not null;index"`
	Name            string  `gorm:"type:varchar(128);not null"`
	Description     string  `gorm:"type:varchar(1024)"`
	NumberRooms     int     `gorm:"not null;default:0"`
	NumberBathrooms int     `gorm:"not null;default:0"`
	MaxGuest        int     `gorm:"not null;default:0"`
	PriceByNight    int     `gorm:"not null;default:0"`
	Latitude        float64 `gorm:"default:0"`
	Longitude       float64 `gorm:"default:0"`
}

// TableName specifies the table name for GORM
func (PlaceModel) TableName() string { return "places" }

// ReviewModel is the GORM schema model of the reviews table
type ReviewModel struct {
	BaseColumns
	PlaceID string `gorm:"type:varchar(60);not null;index"`
	UserID  string `gorm:"type:varchar(60);not null;index"`
	Text    string `gorm:"type:varchar(1024);not null"`
}

// TableName specifies the table name for GORM
func (ReviewModel) TableName() string { return "reviews" }

// AmenityModel is the GORM schema model of the amenities table
type AmenityModel struct {
	BaseColumns
	Name string `gorm:"type:varchar(128);not null"`
}

// TableName specifies the table name for GORM
func (AmenityModel) TableName() string { return "amenities" }
