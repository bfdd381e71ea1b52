package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/swiftline/swiftline-api/libs/go/client/http"
	"github.com/swiftline/swiftline-api/libs/go/logger"
)

func init() {
	logger.InitLogger("test")
}

func TestHTTPClient_Get_SendsHeadersAndQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "DE", r.URL.Query().Get("destination"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient(httpClient.WithBaseURL(server.URL))

	resp, err := client.Get(context.Background(), "/v1/pricing",
		httpClient.WithHeader("Authorization", "Bearer abc"),
		httpClient.WithQueryParam("destination", "DE"),
	)
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, httpClient.ProcessJSONResponse(resp, &out))
	assert.True(t, out.OK)
}

func TestHTTPClient_Post_JSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient(httpClient.WithBaseURL(server.URL))

	resp, err := client.Post(context.Background(), "/things",
		httpClient.WithJSONBody(map[string]string{"name": "box"}),
	)
	require.NoError(t, err)
	assert.NoError(t, httpClient.ProcessJSONResponse(resp, nil))
}

func TestProcessJSONResponse_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient(httpClient.WithBaseURL(server.URL))

	resp, err := client.Get(context.Background(), "/rates")
	require.NoError(t, err)

	err = httpClient.ProcessJSONResponse(resp, nil)
	require.Error(t, err)

	var httpErr *httpClient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "upstream down", httpErr.Body)
	assert.False(t, httpClient.IsAuthError(err))
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   bool
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, expected: true},
		{name: "forbidden", statusCode: http.StatusForbidden, expected: true},
		{name: "not found", statusCode: http.StatusNotFound, expected: false},
		{name: "server error", statusCode: http.StatusInternalServerError, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &httpClient.HTTPError{StatusCode: tt.statusCode}
			assert.Equal(t, tt.expected, httpClient.IsAuthError(err))
		})
	}

	assert.False(t, httpClient.IsAuthError(nil))
	assert.False(t, httpClient.IsAuthError(assert.AnError))
}
