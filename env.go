package uber

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Environment variable names for configuration.
const (
	// EnvAccessToken is the environment variable for the OAuth access token.
	EnvAccessToken = "UBER_ACCESS_TOKEN"
	// EnvServerToken is the environment variable for the server token.
	EnvServerToken = "UBER_SERVER_TOKEN"
	// EnvBaseURL is the environment variable for the API base URL.
	EnvBaseURL = "UBER_BASE_URL"
	// EnvEnvironment is the environment variable selecting production or sandbox.
	EnvEnvironment = "UBER_ENVIRONMENT"
	// EnvAPIVersion is the environment variable for the API version segment.
	EnvAPIVersion = "UBER_API_VERSION"
	// EnvDebug is the environment variable to enable debug logging.
	EnvDebug = "UBER_DEBUG"
)

// envPrefix is the envconfig prefix shared by all variables above.
const envPrefix = "uber"

// envSpec mirrors Config for envconfig decoding.
type envSpec struct {
	AccessToken string `envconfig:"ACCESS_TOKEN"`
	ServerToken string `envconfig:"SERVER_TOKEN"`
	BaseURL     string `envconfig:"BASE_URL"`
	Environment string `envconfig:"ENVIRONMENT"`
	APIVersion  string `envconfig:"API_VERSION"`
	Debug       bool   `envconfig:"DEBUG"`
}

// ConfigFromEnv builds a Config from UBER_* environment variables.
func ConfigFromEnv() (*Config, error) {
	var spec envSpec
	if err := envconfig.Process(envPrefix, &spec); err != nil {
		return nil, fmt.Errorf("uber: failed to read environment: %w", err)
	}

	return &Config{
		AccessToken: spec.AccessToken,
		ServerToken: spec.ServerToken,
		BaseURL:     spec.BaseURL,
		Environment: Environment(spec.Environment),
		APIVersion:  spec.APIVersion,
		Debug:       spec.Debug,
	}, nil
}

// NewFromEnv creates a new client using UBER_* environment variables for
// configuration. Explicit options override values from the environment.
//
// Example:
//
//	client, err := uber.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewFromEnv(opts ...ConfigOption) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return NewWithConfig(cfg)
}
