package uber

// Client is the Uber Rides API client. It holds no mutable state after
// construction, so a single instance may serve any number of concurrent
// calls.
type Client struct {
	config *Config
	http   *httpClient

	// Sub-clients
	requests   *RequestsClient
	promotions *PromotionsClient
	user       *UserClient
}

// New creates a new client authenticated with an OAuth access token.
func New(accessToken string, opts ...ConfigOption) (*Client, error) {
	cfg := &Config{AccessToken: accessToken}

	for _, opt := range opts {
		opt(cfg)
	}

	return NewWithConfig(cfg)
}

// NewWithServerToken creates a new client authenticated with a static
// server token instead of a user OAuth token.
func NewWithServerToken(serverToken string, opts ...ConfigOption) (*Client, error) {
	cfg := &Config{ServerToken: serverToken}

	for _, opt := range opts {
		opt(cfg)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a new client from a Config struct. This is useful
// when the configuration comes from a file or the environment.
//
// Example:
//
//	cfg, err := uber.LoadConfig("uber.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := uber.NewWithConfig(cfg)
func NewWithConfig(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	// Make a copy to avoid modifying the original
	cfgCopy := *cfg

	cfgCopy.applyDefaults()

	if err := cfgCopy.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: &cfgCopy,
		http:   newHTTPClient(&cfgCopy),
	}

	c.requests = &RequestsClient{client: c}
	c.promotions = &PromotionsClient{client: c}
	c.user = &UserClient{client: c}

	return c, nil
}

// Requests returns the sub-client for ride request operations.
func (c *Client) Requests() *RequestsClient {
	return c.requests
}

// Promotions returns the sub-client for promotion lookups.
func (c *Client) Promotions() *PromotionsClient {
	return c.promotions
}

// User returns the sub-client for rider profile and history operations.
func (c *Client) User() *UserClient {
	return c.user
}

// BaseURL returns the resolved base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.http.baseURL
}

// APIVersion returns the version segment used in request paths.
func (c *Client) APIVersion() string {
	return c.http.version
}
