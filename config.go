package uber

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment selects which Uber API host the client talks to.
type Environment string

// Supported environments.
const (
	// EnvironmentProduction is the live Uber API.
	EnvironmentProduction Environment = "production"
	// EnvironmentSandbox is the Uber sandbox API for development and testing.
	EnvironmentSandbox Environment = "sandbox"
)

// environmentBaseURLs maps environments to their base URLs.
var environmentBaseURLs = map[Environment]string{
	EnvironmentProduction: "https://api.uber.com",
	EnvironmentSandbox:    "https://sandbox-api.uber.com",
}

// Default configuration values.
const (
	// DefaultAPIVersion is the version segment interpolated into every path.
	DefaultAPIVersion = "v1.2"

	// DefaultTimeout is the default transport timeout. It applies to the
	// whole exchange; the SDK adds no per-call deadline on top of it.
	DefaultTimeout = 30 * time.Second
)

// Config holds the configuration for the Uber client.
type Config struct {
	// AccessToken is an OAuth bearer token for user-scoped endpoints.
	// Exactly one of AccessToken or ServerToken must be set.
	AccessToken string

	// ServerToken is a static application token for server-scoped endpoints.
	ServerToken string

	// BaseURL is the base URL for the Uber API.
	// If not set, it is derived from Environment.
	BaseURL string

	// Environment selects the production or sandbox host.
	// Defaults to EnvironmentProduction when BaseURL is empty.
	Environment Environment

	// APIVersion is the version segment used in every request path.
	// Defaults to DefaultAPIVersion.
	APIVersion string

	// HTTPClient is the HTTP client used for requests.
	// If not set, a default client with DefaultTimeout is used.
	HTTPClient *http.Client

	// UserAgent overrides the User-Agent header sent with every request.
	UserAgent string

	// Debug enables request/response debug logging.
	Debug bool

	// Logger is used for printf-style SDK logging.
	// For structured logging, use StructuredLogger instead.
	Logger Logger

	// StructuredLogger is used for leveled SDK logging.
	// If set, this takes precedence over Logger.
	StructuredLogger StructuredLogger

	// HTTPHooks are called before and after each HTTP request.
	// Use hooks to add custom headers, log requests, or collect metrics.
	HTTPHooks []HTTPHook
}

// applyDefaults fills in zero-valued fields with defaults.
func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvironmentProduction
	}
	if c.BaseURL == "" {
		c.BaseURL = environmentBaseURLs[c.Environment]
	}
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.UserAgent == "" {
		c.UserAgent = "uber-rides-go/" + Version
	}
}

// validate checks the config after defaults have been applied.
func (c *Config) validate() error {
	if c.AccessToken == "" && c.ServerToken == "" {
		return ErrMissingToken
	}
	if c.AccessToken != "" && c.ServerToken != "" {
		return fmt.Errorf("%w: access token and server token are mutually exclusive", ErrInvalidConfig)
	}
	if _, ok := environmentBaseURLs[c.Environment]; !ok {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidConfig, c.Environment)
	}
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.APIVersion == "" {
		return ErrMissingVersion
	}
	return nil
}

// structuredLogger returns the configured structured logger, wrapping a
// printf-style logger if that is all that was provided. It never returns nil.
func (c *Config) structuredLogger() StructuredLogger {
	if c.StructuredLogger != nil {
		return c.StructuredLogger
	}
	if c.Logger != nil {
		return WrapPrintfLogger(c.Logger)
	}
	return NopLogger{}
}

// fileConfig is the YAML shape of a client configuration file.
type fileConfig struct {
	AccessToken string `yaml:"access_token"`
	ServerToken string `yaml:"server_token"`
	BaseURL     string `yaml:"base_url"`
	Environment string `yaml:"environment"`
	APIVersion  string `yaml:"api_version"`
	Debug       bool   `yaml:"debug"`
}

// LoadConfig reads a client configuration from a YAML file.
//
// Example file:
//
//	access_token: "my-oauth-token"
//	environment: sandbox
//	api_version: v1.2
//	debug: true
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uber: failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("uber: failed to parse config file: %w", err)
	}

	return &Config{
		AccessToken: fc.AccessToken,
		ServerToken: fc.ServerToken,
		BaseURL:     fc.BaseURL,
		Environment: Environment(fc.Environment),
		APIVersion:  fc.APIVersion,
		Debug:       fc.Debug,
	}, nil
}
