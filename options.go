package uber

import "net/http"

// ConfigOption is a function that modifies a Config.
type ConfigOption func(*Config)

// WithEnvironment selects the production or sandbox host.
func WithEnvironment(env Environment) ConfigOption {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithBaseURL sets a custom base URL for the Uber API.
// This overrides the environment-derived host.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithAPIVersion sets the version segment used in every request path.
func WithAPIVersion(version string) ConfigOption {
	return func(c *Config) {
		c.APIVersion = version
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ConfigOption {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) ConfigOption {
	return func(c *Config) {
		c.UserAgent = userAgent
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithLogger sets a printf-style logger for SDK logging.
func WithLogger(logger Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStructuredLogger sets a leveled logger for SDK logging.
// It takes precedence over WithLogger.
func WithStructuredLogger(logger StructuredLogger) ConfigOption {
	return func(c *Config) {
		c.StructuredLogger = logger
	}
}

// WithHTTPHooks registers hooks called before and after each HTTP request.
func WithHTTPHooks(hooks ...HTTPHook) ConfigOption {
	return func(c *Config) {
		c.HTTPHooks = append(c.HTTPHooks, hooks...)
	}
}
