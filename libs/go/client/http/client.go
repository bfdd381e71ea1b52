package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/swiftline/swiftline-api/libs/go/logger"
)

const defaultTimeout = 15 * time.Second

// HTTPClient is a thin wrapper around net/http shared by all external API
// clients. It handles base URLs, default headers, query parameters and
// JSON/form request bodies so the individual clients only deal with their
// own payload shapes.
type HTTPClient struct {
	client         *http.Client
	baseURL        string
	defaultHeaders map[string]string
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithBaseURL sets the base URL prepended to every request path.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.client.Timeout = timeout
	}
}

// WithDefaultHeader sets a header sent on every request.
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *HTTPClient) {
		c.defaultHeaders[key] = value
	}
}

// NewHTTPClient creates a new HTTPClient with the given options.
func NewHTTPClient(opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		client:         &http.Client{Timeout: defaultTimeout},
		defaultHeaders: map[string]string{"Accept": "application/json"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestConfig accumulates per-request options.
type requestConfig struct {
	headers     map[string]string
	queryParams url.Values
	body        io.Reader
	contentType string
}

// RequestOption configures a single request.
type RequestOption func(*requestConfig) error

// WithHeader sets a header on this request.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) error {
		rc.headers[key] = value
		return nil
	}
}

// WithQueryParam adds a query parameter to this request.
func WithQueryParam(key, value string) RequestOption {
	return func(rc *requestConfig) error {
		rc.queryParams.Add(key, value)
		return nil
	}
}

// WithJSONBody marshals v as the JSON request body.
func WithJSONBody(v interface{}) RequestOption {
	return func(rc *requestConfig) error {
		data, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}
		rc.body = bytes.NewReader(data)
		rc.contentType = "application/json"
		return nil
	}
}

// WithFormBody sets URL-encoded form values as the request body.
func WithFormBody(values url.Values) RequestOption {
	return func(rc *requestConfig) error {
		rc.body = strings.NewReader(values.Encode())
		rc.contentType = "application/x-www-form-urlencoded"
		return nil
	}
}

// Get performs a GET request against path.
func (c *HTTPClient) Get(ctx context.Context, path string, opts ...RequestOption) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, opts...)
}

// Post performs a POST request against path.
func (c *HTTPClient) Post(ctx context.Context, path string, opts ...RequestOption) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, opts...)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, opts ...RequestOption) (*http.Response, error) {
	rc := &requestConfig{
		headers:     map[string]string{},
		queryParams: url.Values{},
	}
	for _, opt := range opts {
		if err := opt(rc); err != nil {
			return nil, err
		}
	}

	fullURL := c.baseURL + path
	if len(rc.queryParams) > 0 {
		fullURL = fullURL + "?" + rc.queryParams.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, rc.body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s request for %s", method, fullURL)
	}

	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}
	for key, value := range rc.headers {
		req.Header.Set(key, value)
	}
	if rc.contentType != "" {
		req.Header.Set("Content-Type", rc.contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log.Debug("HTTP request failed",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Error(err))
		return nil, errors.Wrapf(err, "%s %s failed", method, fullURL)
	}

	return resp, nil
}

// ProcessJSONResponse checks the response status and unmarshals the body
// into v. A status >= 400 yields an *HTTPError carrying the response body.
// The response body is always closed.
func ProcessJSONResponse(resp *http.Response, v interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode >= 400 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        resp.Request.URL.String(),
			Method:     resp.Request.Method,
			Body:       string(body),
		}
	}

	if v == nil {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "failed to unmarshal response from %s", resp.Request.URL.String())
	}

	return nil
}

// HTTPError represents a non-success HTTP response from an external API.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s returned %s: %s", e.Method, e.URL, e.Status, e.Body)
}

// IsAuthError reports whether the error is an HTTP 401/403 response,
// which the carrier clients treat as an expired or revoked token.
func IsAuthError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden
	}
	return false
}
