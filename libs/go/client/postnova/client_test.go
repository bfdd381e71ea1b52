package postnova_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftline/swiftline-api/libs/go/client/postnova"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

func init() {
	logger.InitLogger("test")
}

func testRequest() params.ProviderQuoteRequest {
	return params.ProviderQuoteRequest{
		LengthCm:           30,
		WidthCm:            20,
		HeightCm:           10,
		WeightKg:           2,
		ChargeableWeightKg: 2,
		DestinationCountry: "FR",
	}
}

func TestClient_FetchQuotes_NormalizesOffers(t *testing.T) {
	var sessionCalls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pn-key", r.Header.Get("X-PN-Api-Key"))

		switch r.URL.Path {
		case "/sessions":
			atomic.AddInt64(&sessionCalls, 1)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"token":       "pn-session",
				"valid_until": time.Now().Add(time.Hour).Format(time.RFC3339),
			})
		case "/quotes":
			assert.Equal(t, "pn-session", r.Header.Get("X-PN-Session"))

			var body struct {
				Destination string `json:"destination"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "FR", body.Destination)

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"offers": []map[string]interface{}{
					{
						"code":  "ECO",
						"label": "PostNova Eco",
						"pricing": map[string]interface{}{
							"carriage": 900,
							"fuel":     150,
							"fees":     0,
						},
						"eta":   "6-9 days",
						"class": "eco",
					},
				},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := postnova.NewClient("pn-key", postnova.WithBaseURL(server.URL))

	options, err := client.FetchQuotes(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, options, 1)

	eco := options[0]
	assert.Equal(t, "postnova:eco", eco.ID)
	assert.Equal(t, "postnova_eco", eco.ServiceName)
	assert.Equal(t, "PostNova Eco", eco.DisplayName)
	assert.Equal(t, int64(900), eco.CargoCostCents)
	assert.Equal(t, int64(150), eco.FuelCostCents)
	assert.Equal(t, int64(1050), eco.TotalPriceCents)
	assert.Equal(t, business.ServiceClassEco, eco.ServiceClass)
	assert.Equal(t, "postnova", eco.OriginProvider)

	// Second fetch reuses the open session.
	_, err = client.FetchQuotes(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&sessionCalls))
}

func TestClient_FetchQuotes_UnparsableSessionExpiry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"token":       "pn-session",
			"valid_until": "tomorrow-ish",
		})
	}))
	defer server.Close()

	client := postnova.NewClient("pn-key", postnova.WithBaseURL(server.URL))

	_, err := client.FetchQuotes(context.Background(), testRequest())
	assert.Error(t, err)
}

func TestClient_FetchQuotes_ReopensRejectedSession(t *testing.T) {
	var quoteCalls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sessions":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"token":       "pn-session",
				"valid_until": time.Now().Add(time.Hour).Format(time.RFC3339),
			})
		case "/quotes":
			if atomic.AddInt64(&quoteCalls, 1) == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"offers": []interface{}{}})
		}
	}))
	defer server.Close()

	client := postnova.NewClient("pn-key", postnova.WithBaseURL(server.URL))

	options, err := client.FetchQuotes(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Empty(t, options)
	assert.Equal(t, int64(2), atomic.LoadInt64(&quoteCalls))
}
