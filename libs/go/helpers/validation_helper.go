package helpers

import (
	"fmt"
	"math"

	"github.com/swiftline/swiftline-api/libs/go/constants"
)

// ValidatePackage checks that all dimension and weight values are positive
// finite numbers. It is run before any provider is invoked so malformed
// input never reaches a carrier API.
func ValidatePackage(lengthCm, widthCm, heightCm, weightKg float64) error {
	checks := []struct {
		name  string
		value float64
	}{
		{"length_cm", lengthCm},
		{"width_cm", widthCm},
		{"height_cm", heightCm},
		{"weight_kg", weightKg},
	}

	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%s must be a finite number", c.name)
		}
		if c.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", c.name, c.value)
		}
	}

	return nil
}

// ChargeableWeightKg returns the weight carriers actually price against:
// the greater of the actual weight and the volumetric weight
// (L*W*H divided by the standard freight divisor).
func ChargeableWeightKg(lengthCm, widthCm, heightCm, weightKg float64) float64 {
	volumetric := (lengthCm * widthCm * heightCm) / constants.VolumetricDivisor
	return math.Max(weightKg, volumetric)
}
