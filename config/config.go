package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// DefaultEnvFile is read, when present, before the environment is consulted
	DefaultEnvFile = ".env"

	keyVariable = "API_KEY"
	urlVariable = "API_URL"
)

// Config credentials and location of the exchange rate API. Read-only once loaded.
type Config struct {
	apiKey string
	apiURL string
}

// New constructs a Config from explicit values
func New(apiKey, apiURL string) *Config {
	return &Config{apiKey: apiKey, apiURL: apiURL}
}

// Load reads API_KEY and API_URL from the environment after loading envFile.
// A missing envFile is not an error; variables already set in the environment
// take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "reading %v", envFile)
		}
	}

	apiKey, ok := os.LookupEnv(keyVariable)
	if !ok || apiKey == "" {
		return nil, errors.Errorf("%v is not set", keyVariable)
	}

	apiURL, ok := os.LookupEnv(urlVariable)
	if !ok || apiURL == "" {
		return nil, errors.Errorf("%v is not set", urlVariable)
	}

	return New(apiKey, apiURL), nil
}

// APIKey the freecurrencyapi key
func (c *Config) APIKey() string {
	return c.apiKey
}

// APIURL the API base url, including a trailing slash
func (c *Config) APIURL() string {
	return c.apiURL
}
