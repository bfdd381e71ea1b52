package shipex

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
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
	defaultBaseURL = "https://gateway.shipex.net"
	defaultTimeout = 10 * time.Second
)

// Client manages communication with the ShipEx pricing gateway. ShipEx uses
// a standard OAuth2 client-credentials flow with a form-encoded token
// endpoint, and returns all amounts as integer cents.
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

// WithBaseURL overrides the gateway base URL (used by tests).
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

// NewClient creates a new ShipEx gateway client.
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
	return constants.ShipExProvider
}

// --- ShipEx API payloads ---

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type serviceEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	BaseCents     int64  `json:"base_cents"`
	FuelCents     int64  `json:"fuel_cents"`
	SurchargeCents int64 `json:"surcharge_cents"`
	DaysMin       int    `json:"days_min"`
	DaysMax       int    `json:"days_max"`
	Tier          string `json:"tier"` // ECONOMY | EXPRESS | STANDARD
}

type pricingResponse struct {
	Services []serviceEntry `json:"services"`
}

// FetchQuotes returns ShipEx's price options for the package, normalized to
// the common model.
func (c *Client) FetchQuotes(ctx context.Context, req params.ProviderQuoteRequest) ([]business.PriceOption, error) {
	country, ok := helpers.NormalizeCountry(req.DestinationCountry)
	if !ok {
		return nil, fmt.Errorf("unrecognized destination country %q", req.DestinationCountry)
	}

	var pricing pricingResponse
	if err := c.getPricing(ctx, country, req, &pricing); err != nil {
		if httpClient.IsAuthError(err) {
			c.tokens.Invalidate()
			if err = c.getPricing(ctx, country, req, &pricing); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	options := make([]business.PriceOption, 0, len(pricing.Services))
	for _, svc := range pricing.Services {
		options = append(options, normalizeService(svc))
	}
	return options, nil
}

func (c *Client) getPricing(ctx context.Context, country string, req params.ProviderQuoteRequest, out *pricingResponse) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Get(ctx, "/v1/pricing",
		httpClient.WithHeader("Authorization", "Bearer "+token),
		httpClient.WithQueryParam("destination", country),
		httpClient.WithQueryParam("weight_kg", formatFloat(req.ChargeableWeightKg)),
		httpClient.WithQueryParam("length_cm", formatFloat(req.LengthCm)),
		httpClient.WithQueryParam("width_cm", formatFloat(req.WidthCm)),
		httpClient.WithQueryParam("height_cm", formatFloat(req.HeightCm)),
	)
	if err != nil {
		return errors.Wrap(err, "shipex pricing request failed")
	}

	return httpClient.ProcessJSONResponse(resp, out)
}

func (c *Client) token(ctx context.Context) (string, error) {
	return c.tokens.Get(ctx, func(ctx context.Context) (string, time.Time, error) {
		form := url.Values{}
		form.Set("grant_type", "client_credentials")
		form.Set("client_id", c.clientID)
		form.Set("client_secret", c.clientSecret)

		resp, err := c.httpClient.Post(ctx, "/oauth2/token", httpClient.WithFormBody(form))
		if err != nil {
			return "", time.Time{}, errors.Wrap(err, "shipex token request failed")
		}

		var tr tokenResponse
		if err := httpClient.ProcessJSONResponse(resp, &tr); err != nil {
			return "", time.Time{}, errors.Wrap(err, "shipex token fetch rejected")
		}
		if tr.AccessToken == "" {
			return "", time.Time{}, errors.New("shipex token response missing access_token")
		}

		c.logger.Debug("Fetched ShipEx access token", zap.Int64("expires_in", tr.ExpiresIn))
		return tr.AccessToken, c.now().Add(time.Duration(tr.ExpiresIn) * time.Second), nil
	})
}

func normalizeService(svc serviceEntry) business.PriceOption {
	serviceName := "shipex_" + strings.ToLower(strings.ReplaceAll(svc.ID, "-", "_"))

	estimate := fmt.Sprintf("%d-%d days", svc.DaysMin, svc.DaysMax)
	if svc.DaysMin == svc.DaysMax {
		estimate = fmt.Sprintf("%d days", svc.DaysMin)
	}

	return business.PriceOption{
		ID:                 fmt.Sprintf("%s:%s", constants.ShipExProvider, strings.ToLower(svc.ID)),
		ServiceName:        serviceName,
		DisplayName:        svc.Name,
		CargoCostCents:     svc.BaseCents,
		FuelCostCents:      svc.FuelCents,
		AdditionalFeeCents: svc.SurchargeCents,
		TotalPriceCents:    svc.BaseCents + svc.FuelCents + svc.SurchargeCents,
		DeliveryEstimate:   estimate,
		ServiceClass:       classifyTier(svc.Tier),
		OriginProvider:     constants.ShipExProvider,
	}
}

func classifyTier(tier string) business.ServiceClass {
	switch strings.ToUpper(tier) {
	case "ECONOMY", "ECO":
		return business.ServiceClassEco
	case "EXPRESS", "PRIORITY":
		return business.ServiceClassExpress
	default:
		return business.ServiceClassStandard
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
