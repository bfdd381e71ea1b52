package helpers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiftline/swiftline-api/libs/go/helpers"
)

func TestValidatePackage(t *testing.T) {
	tests := []struct {
		name        string
		lengthCm    float64
		widthCm     float64
		heightCm    float64
		weightKg    float64
		wantErr     bool
		errContains string
	}{
		{
			name:     "valid package",
			lengthCm: 30, widthCm: 20, heightCm: 10, weightKg: 2.5,
			wantErr: false,
		},
		{
			name:     "zero length",
			lengthCm: 0, widthCm: 20, heightCm: 10, weightKg: 2.5,
			wantErr: true, errContains: "length_cm",
		},
		{
			name:     "negative weight",
			lengthCm: 30, widthCm: 20, heightCm: 10, weightKg: -1,
			wantErr: true, errContains: "weight_kg",
		},
		{
			name:     "NaN width",
			lengthCm: 30, widthCm: math.NaN(), heightCm: 10, weightKg: 2.5,
			wantErr: true, errContains: "width_cm",
		},
		{
			name:     "infinite height",
			lengthCm: 30, widthCm: 20, heightCm: math.Inf(1), weightKg: 2.5,
			wantErr: true, errContains: "height_cm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := helpers.ValidatePackage(tt.lengthCm, tt.widthCm, tt.heightCm, tt.weightKg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChargeableWeightKg(t *testing.T) {
	tests := []struct {
		name     string
		lengthCm float64
		widthCm  float64
		heightCm float64
		weightKg float64
		expected float64
	}{
		{
			name:     "actual weight dominates small box",
			lengthCm: 15, widthCm: 10, heightCm: 10, weightKg: 0.5,
			expected: 0.5, // volumetric is 0.3
		},
		{
			name:     "volumetric weight dominates bulky light box",
			lengthCm: 50, widthCm: 40, heightCm: 30, weightKg: 5,
			expected: 12, // 60000 / 5000
		},
		{
			name:     "equal weights",
			lengthCm: 50, widthCm: 50, heightCm: 10, weightKg: 5,
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := helpers.ChargeableWeightKg(tt.lengthCm, tt.widthCm, tt.heightCm, tt.weightKg)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}
