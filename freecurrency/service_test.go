package freecurrency

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-currency-converter"
)

func apiError(t *testing.T, err error) *converter.APIError {
	t.Helper()
	var apiErr *converter.APIError
	require.True(t, errors.As(err, &apiErr), "expected *converter.APIError, got %v", err)
	return apiErr
}

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/v1/latest", req.URL.Path)
		assert.Equal(t, "USD", req.URL.Query().Get("base_currency"))
		_, _ = rw.Write([]byte(`{"data":{"EUR":0.92}}`))
	}))
	defer server.Close()

	body, err := NewFetcher().Fetch(context.Background(), server.URL+"/v1/latest?base_currency=USD&currencies=EUR&apikey=k")

	assert.Nil(t, err)
	assert.Equal(t, `{"data":{"EUR":0.92}}`, body)
}

func TestFetcher_FetchStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"unprocessable entity", http.StatusUnprocessableEntity, `{"message":"The selected base currency is invalid."}`, "Invalid base or target currency"},
		{"unprocessable entity without body", http.StatusUnprocessableEntity, "", "Invalid base or target currency"},
		{"unauthorized", http.StatusUnauthorized, `{"message":"Invalid authentication credentials"}`, `{"message":"Invalid authentication credentials"}`},
		{"not found", http.StatusNotFound, "no such endpoint", "no such endpoint"},
		{"server error", http.StatusInternalServerError, "boom", "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				rw.WriteHeader(tt.status)
				_, _ = rw.Write([]byte(tt.body))
			}))
			defer server.Close()

			body, err := NewFetcher().Fetch(context.Background(), server.URL)

			assert.Equal(t, "", body)
			apiErr := apiError(t, err)
			assert.Equal(t, converter.TransportFailure, apiErr.Kind)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestFetcher_FetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {}))
	url := server.URL
	server.Close()

	for _, u := range []string{url, "some_url", "http://[::1"} {
		_, err := NewFetcher().Fetch(context.Background(), u)

		apiErr := apiError(t, err)
		assert.Equal(t, converter.TransportFailure, apiErr.Kind, u)
		assert.Equal(t, "Failed to perform HTTP request", apiErr.Message, u)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

type brokenBody struct{}

func (brokenBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
func (brokenBody) Close() error             { return nil }

func TestFetcher_FetchUnreadableBody(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusBadGateway} {
		f := fetcher{
			client: http.Client{
				Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
					return &http.Response{StatusCode: status, Body: brokenBody{}, Request: r}, nil
				}),
			},
		}

		_, err := f.Fetch(context.Background(), "http://example.com/latest")

		apiErr := apiError(t, err)
		assert.Equal(t, converter.TransportFailure, apiErr.Kind)
		assert.Equal(t, "Failed to read response body", apiErr.Message)
	}
}

func TestFetcher_FetchCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = io.WriteString(rw, "{}")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFetcher().Fetch(ctx, server.URL)

	assert.Equal(t, converter.TransportFailure, apiError(t, err).Kind)
}
