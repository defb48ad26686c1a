//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coordinates struct {
	Lat float64 `validate:"latitude_range"`
	Lng float64 `validate:"longitude_range"`
}

func TestCoordinateValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("latitude_range", LatitudeValidation))
	require.NoError(t, validate.RegisterValidation("longitude_range", LongitudeValidation))

	tests := []struct {
		name    string
		input   coordinates
		wantErr bool
	}{
		{"origin", coordinates{0, 0}, false},
		{"bounds", coordinates{-90, 180}, false},
		{"latitude too high", coordinates{90.5, 0}, true},
		{"longitude too low", coordinates{0, -180.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
