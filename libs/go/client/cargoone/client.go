package cargoone

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	httpClient "github.com/swiftline/swiftline-api/libs/go/client/http"
	"github.com/swiftline/swiftline-api/libs/go/constants"
	"github.com/swiftline/swiftline-api/libs/go/helpers"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

const (
	defaultBaseURL = "https://api.cargoone.io"
	defaultTimeout = 10 * time.Second
)

// Client manages communication with the CargoOne rate API.
// CargoOne issues short-lived bearer tokens from a client-credentials
// endpoint; the token cache is owned exclusively by this client.
type Client struct {
	clientID     string
	clientSecret string
	httpClient   *httpClient.HTTPClient
	tokens       *httpClient.TokenCache
	logger       *zap.Logger
	now          func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.httpClient = httpClient.NewHTTPClient(
			httpClient.WithBaseURL(baseURL),
			httpClient.WithTimeout(defaultTimeout),
		)
	}
}

// WithClock injects a clock into the token cache (used by tests).
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.tokens = httpClient.NewTokenCacheWithClock(now)
		c.now = now
	}
}

// NewClient creates a new CargoOne API client.
func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(defaultBaseURL),
			httpClient.WithTimeout(defaultTimeout),
		),
		tokens: httpClient.NewTokenCache(),
		logger: logger.Log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name identifies this provider in logs and option tags.
func (c *Client) Name() string {
	return constants.CargoOneProvider
}

// --- CargoOne API payloads ---

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

type rateRequest struct {
	DestinationCountry string  `json:"destination_country"`
	LengthCm           float64 `json:"length_cm"`
	WidthCm            float64 `json:"width_cm"`
	HeightCm           float64 `json:"height_cm"`
	WeightKg           float64 `json:"weight_kg"`
}

type rateEntry struct {
	ServiceCode   string  `json:"service_code"`
	ServiceTitle  string  `json:"service_title"`
	FreightCharge float64 `json:"freight_charge"` // USD, decimal
	FuelSurcharge float64 `json:"fuel_surcharge"`
	HandlingFee   float64 `json:"handling_fee"`
	TransitTime   string  `json:"transit_time"`
	ServiceLevel  string  `json:"service_level"` // eco | express | standard
}

type rateResponse struct {
	Rates []rateEntry `json:"rates"`
}

// FetchQuotes returns CargoOne's price options for the package, normalized
// to the common model. CargoOne prices against the chargeable weight.
func (c *Client) FetchQuotes(ctx context.Context, req params.ProviderQuoteRequest) ([]business.PriceOption, error) {
	country, ok := helpers.NormalizeCountry(req.DestinationCountry)
	if !ok {
		return nil, fmt.Errorf("unrecognized destination country %q", req.DestinationCountry)
	}

	body := rateRequest{
		DestinationCountry: country,
		LengthCm:           req.LengthCm,
		WidthCm:            req.WidthCm,
		HeightCm:           req.HeightCm,
		WeightKg:           req.ChargeableWeightKg,
	}

	var rates rateResponse
	if err := c.postRates(ctx, body, &rates); err != nil {
		// A rejected token may simply be stale; refresh once and retry.
		if httpClient.IsAuthError(err) {
			c.tokens.Invalidate()
			if err = c.postRates(ctx, body, &rates); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	options := make([]business.PriceOption, 0, len(rates.Rates))
	for _, rate := range rates.Rates {
		options = append(options, c.normalizeRate(rate))
	}
	return options, nil
}

func (c *Client) postRates(ctx context.Context, body rateRequest, out *rateResponse) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(ctx, "/v2/rates",
		httpClient.WithJSONBody(body),
		httpClient.WithHeader("Authorization", "Bearer "+token),
	)
	if err != nil {
		return errors.Wrap(err, "cargoone rate request failed")
	}

	return httpClient.ProcessJSONResponse(resp, out)
}

// token returns a valid bearer token, fetching a fresh one when the cached
// token is missing or expired. A failed fetch fails the whole adapter call
// without retry.
func (c *Client) token(ctx context.Context) (string, error) {
	return c.tokens.Get(ctx, func(ctx context.Context) (string, time.Time, error) {
		resp, err := c.httpClient.Post(ctx, "/auth/token",
			httpClient.WithJSONBody(tokenRequest{ClientID: c.clientID, ClientSecret: c.clientSecret}),
		)
		if err != nil {
			return "", time.Time{}, errors.Wrap(err, "cargoone token request failed")
		}

		var tr tokenResponse
		if err := httpClient.ProcessJSONResponse(resp, &tr); err != nil {
			return "", time.Time{}, errors.Wrap(err, "cargoone token fetch rejected")
		}
		if tr.AccessToken == "" {
			return "", time.Time{}, errors.New("cargoone token response missing access_token")
		}

		c.logger.Debug("Fetched CargoOne access token", zap.Int64("expires_in", tr.ExpiresIn))
		return tr.AccessToken, c.now().Add(time.Duration(tr.ExpiresIn) * time.Second), nil
	})
}

func (c *Client) normalizeRate(rate rateEntry) business.PriceOption {
	serviceName := "cargoone_" + strings.ToLower(strings.ReplaceAll(rate.ServiceCode, "-", "_"))

	return business.PriceOption{
		ID:                 fmt.Sprintf("%s:%s", constants.CargoOneProvider, strings.ToLower(rate.ServiceCode)),
		ServiceName:        serviceName,
		DisplayName:        rate.ServiceTitle,
		CargoCostCents:     usdToCents(rate.FreightCharge),
		FuelCostCents:      usdToCents(rate.FuelSurcharge),
		AdditionalFeeCents: usdToCents(rate.HandlingFee),
		TotalPriceCents:    usdToCents(rate.FreightCharge) + usdToCents(rate.FuelSurcharge) + usdToCents(rate.HandlingFee),
		DeliveryEstimate:   rate.TransitTime,
		ServiceClass:       classifyLevel(rate.ServiceLevel),
		OriginProvider:     constants.CargoOneProvider,
	}
}

func classifyLevel(level string) business.ServiceClass {
	switch strings.ToLower(level) {
	case "eco", "economy":
		return business.ServiceClassEco
	case "express", "priority":
		return business.ServiceClassExpress
	default:
		return business.ServiceClassStandard
	}
}

// usdToCents converts a decimal USD amount to integer cents.
func usdToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
