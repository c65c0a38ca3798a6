package exchange

import (
	"context"
	"fmt"
	"net/url"

	"go-currency-converter"
	"go-currency-converter/freecurrency"
)

// Config supplies the API credentials and base URL. The base URL is expected to
// end with a slash, e.g. https://api.freecurrencyapi.com/v1/
type Config interface {
	APIKey() string
	APIURL() string
}

// Service looks up exchange rates for conversion requests
type Service interface {
	Rates(ctx context.Context, request converter.Request) (converter.Rates, error)
}

// ParseFunc decodes a response body into rates
type ParseFunc func(body string) (converter.Rates, error)

type service struct {
	config  Config
	fetcher freecurrency.Fetcher
	parse   ParseFunc
}

// NewService constructs a valid Service
func NewService(config Config, fetcher freecurrency.Fetcher) Service {
	return &service{
		config:  config,
		fetcher: fetcher,
		parse:   freecurrency.Parse,
	}
}

// Rates fetches and decodes the latest rates for request.Base. When the request
// has no target every known rate is returned, otherwise only request.Target.
// API errors are returned unchanged.
func (s *service) Rates(ctx context.Context, request converter.Request) (converter.Rates, error) {
	body, err := s.fetcher.Fetch(ctx, s.latestURL(request))
	if err != nil {
		return nil, err
	}
	return s.parse(body)
}

func (s *service) latestURL(request converter.Request) string {
	return fmt.Sprintf("%vlatest?base_currency=%v&currencies=%v&apikey=%v",
		s.config.APIURL(),
		url.QueryEscape(string(request.Base)),
		url.QueryEscape(string(request.Target)),
		url.QueryEscape(s.config.APIKey()),
	)
}
