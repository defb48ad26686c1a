package entities

// User is an account that owns places and writes reviews.
type User struct {
	BaseModel
	Email     string `json:"email" validate:"required,max=128"`
	Password  string `json:"password" validate:"required,max=128"`
	FirstName string `json:"first_name" validate:"max=128"`
	LastName  string `json:"last_name" validate:"max=128"`
}

// NewUser returns an empty User as an Entity.
func NewUser() Entity { return &User{} }

// TypeName implements Entity.
func (*User) TypeName() string { return "User" }

// TableName implements Entity.
func (*User) TableName() string { return "users" }

// ToRecord implements Entity.
func (u *User) ToRecord() Record {
	return u.BaseModel.toRecord(Record{
		"email":      u.Email,
		"password":   u.Password,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
	})
}

// FromRecord implements Entity.
func (u *User) FromRecord(r Record) error {
	if err := u.BaseModel.fromRecord(r); err != nil {
		return err
	}
	u.Email = recordString(r, "email", u.Email)
	u.Password = recordString(r, "password", u.Password)
	u.FirstName = recordString(r, "first_name", u.FirstName)
	u.LastName = recordString(r, "last_name", u.LastName)
	return nil
}

func (u *User) String() string { return Format(u) }
