package helpers

import "strings"

// countryVariants maps common free-text country spellings to ISO-2 codes.
// Carrier payloads and imported shipment data are inconsistent about this,
// so every adapter normalizes through here before hitting a carrier API.
var countryVariants = map[string]string{
	"united states":            "US",
	"united states of america": "US",
	"usa":                      "US",
	"america":                  "US",
	"united kingdom":           "GB",
	"uk":                       "GB",
	"great britain":            "GB",
	"england":                  "GB",
	"germany":                  "DE",
	"deutschland":              "DE",
	"france":                   "FR",
	"spain":                    "ES",
	"italy":                    "IT",
	"netherlands":              "NL",
	"holland":                  "NL",
	"belgium":                  "BE",
	"austria":                  "AT",
	"switzerland":              "CH",
	"sweden":                   "SE",
	"norway":                   "NO",
	"denmark":                  "DK",
	"poland":                   "PL",
	"portugal":                 "PT",
	"ireland":                  "IE",
	"canada":                   "CA",
	"mexico":                   "MX",
	"brazil":                   "BR",
	"australia":                "AU",
	"new zealand":              "NZ",
	"japan":                    "JP",
	"south korea":              "KR",
	"korea":                    "KR",
	"china":                    "CN",
	"india":                    "IN",
	"turkey":                   "TR",
	"turkiye":                  "TR",
	"türkiye":                  "TR",
	"united arab emirates":     "AE",
	"uae":                      "AE",
	"saudi arabia":             "SA",
	"israel":                   "IL",
	"south africa":             "ZA",
}

// NormalizeCountry converts a country name or code to an upper-case ISO-2
// code. The second return value reports whether the input was recognized.
func NormalizeCountry(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	if len(trimmed) == 2 && isAlpha(trimmed) {
		return strings.ToUpper(trimmed), true
	}

	if code, ok := countryVariants[strings.ToLower(trimmed)]; ok {
		return code, true
	}

	return "", false
}

// IsValidCountryCode reports whether the input is a plausible 2-letter code.
func IsValidCountryCode(code string) bool {
	return len(code) == 2 && isAlpha(code)
}

func isAlpha(s string) bool {
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}
