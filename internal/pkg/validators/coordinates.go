package validators

import (
	"github.com/go-playground/validator/v10"
)

// LatitudeValidation accepts latitudes in degrees, -90 to 90.
func LatitudeValidation(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= -90 && v <= 90
}

// LongitudeValidation accepts longitudes in degrees, -180 to 180.
func LongitudeValidation(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= -180 && v <= 180
}
