package freecurrency

import (
	"context"
	"net/url"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// loggingFetcher decorates a Fetcher with logging
type loggingFetcher struct {
	next   Fetcher
	logger log.Logger
}

// NewLoggingFetcher return a new logging fetcher
func NewLoggingFetcher(logger log.Logger, f Fetcher) Fetcher {
	return &loggingFetcher{
		next:   f,
		logger: logger,
	}
}

func (f *loggingFetcher) Fetch(ctx context.Context, rawURL string) (body string, err error) {
	defer func(begin time.Time) {
		level.Debug(f.logger).Log(
			"method", "fetch",
			"url", redact(rawURL),
			"bytes", len(body),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, rawURL)
}

// redact hides the api key carried in the query string
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "invalid url"
	}
	query := u.Query()
	if query.Has("apikey") {
		query.Set("apikey", "REDACTED")
		u.RawQuery = query.Encode()
	}
	return u.String()
}
