package freecurrency

import (
	"context"
	"io"
	"net/http"

	"go-currency-converter"
)

// Fetcher retrieves raw response bodies from the freecurrencyapi REST API
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// fetcher performs plain HTTP GETs
type fetcher struct {
	// client for HTTP requests
	client http.Client
}

// NewFetcher constructs a valid Fetcher using the default HTTP client settings.
func NewFetcher() Fetcher {
	return &fetcher{
		client: http.Client{},
	}
}

// Fetch issues a single GET against url and returns the response body.
// Status 422 is how freecurrencyapi reports an unknown base or target currency.
func (f *fetcher) Fetch(ctx context.Context, url string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", converter.Transport("Failed to perform HTTP request")
	}
	httpResponse, err := f.client.Do(request)
	if err != nil {
		return "", converter.Transport("Failed to perform HTTP request")
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode == http.StatusUnprocessableEntity {
		return "", converter.Transport("Invalid base or target currency")
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return "", converter.Transport("Failed to read response body")
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return "", converter.Transport(string(bytes))
	}

	return string(bytes), nil
}
