package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiftline/swiftline-api/libs/go/helpers"
)

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "upper-case ISO code", input: "US", expected: "US", ok: true},
		{name: "lower-case ISO code", input: "de", expected: "DE", ok: true},
		{name: "common name", input: "Germany", expected: "DE", ok: true},
		{name: "usa variant", input: "USA", expected: "US", ok: true},
		{name: "uk maps to GB", input: "United Kingdom", expected: "GB", ok: true},
		{name: "turkish spelling with diacritic", input: "Türkiye", expected: "TR", ok: true},
		{name: "surrounding whitespace", input: "  canada  ", expected: "CA", ok: true},
		{name: "empty input", input: "", ok: false},
		{name: "unknown name", input: "Atlantis", ok: false},
		{name: "numeric code rejected", input: "12", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := helpers.NormalizeCountry(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestIsValidCountryCode(t *testing.T) {
	assert.True(t, helpers.IsValidCountryCode("US"))
	assert.True(t, helpers.IsValidCountryCode("gb"))
	assert.False(t, helpers.IsValidCountryCode("USA"))
	assert.False(t, helpers.IsValidCountryCode("1A"))
	assert.False(t, helpers.IsValidCountryCode(""))
}
