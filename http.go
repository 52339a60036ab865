package uber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxErrorBodySnippet bounds how much of a malformed body is kept on a
// DecodeError.
const maxErrorBodySnippet = 512

// httpClient handles authenticated HTTP requests to the Uber API.
// It is immutable after construction and safe for concurrent use.
type httpClient struct {
	client     *http.Client
	baseURL    string
	version    string
	authHeader string
	userAgent  string
	hooks      HTTPHook
	logger     StructuredLogger
	debug      bool
}

// newHTTPClient creates a new HTTP client from a validated config.
func newHTTPClient(cfg *Config) *httpClient {
	auth := "Bearer " + cfg.AccessToken
	if cfg.AccessToken == "" {
		auth = "Token " + cfg.ServerToken
	}

	var hooks HTTPHook
	if len(cfg.HTTPHooks) > 0 {
		hooks = &hookChain{hooks: cfg.HTTPHooks}
	}

	return &httpClient{
		client:     cfg.HTTPClient,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		version:    strings.Trim(cfg.APIVersion, "/"),
		authHeader: auth,
		userAgent:  cfg.UserAgent,
		hooks:      hooks,
		logger:     cfg.structuredLogger(),
		debug:      cfg.Debug,
	}
}

// request represents a single HTTP request to be made.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	result any
}

// do executes a request and normalizes the response.
//
// Outcomes map onto three error classes: a non-2xx status yields *APIError
// (with the error body parsed when possible), a 2xx body that does not
// decode into result yields *DecodeError, and transport failures come back
// as wrapped plain errors. No retries are performed; callers own retry
// policy.
func (h *httpClient) do(ctx context.Context, req *request) error {
	u := h.baseURL + "/" + h.version + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var bodyReader io.Reader
	if req.body != nil {
		bodyBytes, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("uber: failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("uber: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", h.authHeader)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", h.userAgent)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if h.hooks != nil {
		if err := h.hooks.BeforeRequest(ctx, httpReq); err != nil {
			return fmt.Errorf("uber: request hook failed: %w", err)
		}
	}

	if h.debug {
		h.logger.Debug("sending request",
			"method", req.method,
			"url", u,
			"authorization", MaskAuthHeader(h.authHeader),
		)
	}

	start := time.Now()
	resp, err := h.client.Do(httpReq)
	if h.hooks != nil {
		h.hooks.AfterResponse(ctx, httpReq, resp, time.Since(start), err)
	}
	if err != nil {
		return fmt.Errorf("uber: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("uber: failed to read response body: %w", err)
	}

	if h.debug {
		h.logger.Debug("received response",
			"method", req.method,
			"url", u,
			"status", resp.StatusCode,
			"duration", time.Since(start),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if req.result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, req.result); err != nil {
			return &DecodeError{Err: err, Body: truncate(string(respBody), maxErrorBodySnippet)}
		}
	}

	return nil
}

// newAPIError builds an APIError from a non-2xx response, parsing the
// standard error body when possible and falling back to the status text.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	if len(body) > 0 {
		json.Unmarshal(body, apiErr)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// get performs a GET request.
func (h *httpClient) get(ctx context.Context, path string, query url.Values, result any) error {
	return h.do(ctx, &request{
		method: http.MethodGet,
		path:   path,
		query:  query,
		result: result,
	})
}

// post performs a POST request.
func (h *httpClient) post(ctx context.Context, path string, body any, result any) error {
	return h.do(ctx, &request{
		method: http.MethodPost,
		path:   path,
		body:   body,
		result: result,
	})
}

// patch performs a PATCH request.
func (h *httpClient) patch(ctx context.Context, path string, body any, result any) error {
	return h.do(ctx, &request{
		method: http.MethodPatch,
		path:   path,
		body:   body,
		result: result,
	})
}

// del performs a DELETE request. Success is decided purely by the status
// class; the response body is never parsed.
func (h *httpClient) del(ctx context.Context, path string) error {
	return h.do(ctx, &request{
		method: http.MethodDelete,
		path:   path,
	})
}

// truncate shortens s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
