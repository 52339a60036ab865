package uber

import (
	"context"
	"net/http"
	"time"
)

// HTTPHook allows customizing HTTP request/response handling.
// Hooks are called in order during request processing.
//
// Use hooks for:
//   - Adding custom headers to all requests
//   - Logging request/response details
//   - Collecting custom metrics
type HTTPHook interface {
	// BeforeRequest is called before sending the HTTP request.
	// It can modify the request (e.g., add headers) and return an error to abort.
	BeforeRequest(ctx context.Context, req *http.Request) error

	// AfterResponse is called after the transport returns. resp is nil when
	// the request itself failed; err carries the transport error in that case.
	AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// HTTPHookFunc is a function adapter for simple hooks.
// It allows creating hooks from functions without implementing the full interface.
type HTTPHookFunc struct {
	Before func(ctx context.Context, req *http.Request) error
	After  func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// BeforeRequest implements HTTPHook.
func (f HTTPHookFunc) BeforeRequest(ctx context.Context, req *http.Request) error {
	if f.Before != nil {
		return f.Before(ctx, req)
	}
	return nil
}

// AfterResponse implements HTTPHook.
func (f HTTPHookFunc) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	if f.After != nil {
		f.After(ctx, req, resp, duration, err)
	}
}

// hookChain combines multiple hooks into a single hook.
type hookChain struct {
	hooks []HTTPHook
}

// BeforeRequest calls all hooks in order.
func (c *hookChain) BeforeRequest(ctx context.Context, req *http.Request) error {
	for _, hook := range c.hooks {
		if err := hook.BeforeRequest(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// AfterResponse calls all hooks in reverse order (like a defer stack).
func (c *hookChain) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	for i := len(c.hooks) - 1; i >= 0; i-- {
		c.hooks[i].AfterResponse(ctx, req, resp, duration, err)
	}
}

// LoggingHook returns a hook that logs every request and response at
// info level.
func LoggingHook(logger StructuredLogger) HTTPHook {
	return HTTPHookFunc{
		Before: func(ctx context.Context, req *http.Request) error {
			logger.Info("http request", "method", req.Method, "url", req.URL.String())
			return nil
		},
		After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
			if err != nil {
				logger.Error("http response", "method", req.Method, "url", req.URL.String(), "error", err, "duration", duration)
				return
			}
			logger.Info("http response", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode, "duration", duration)
		},
	}
}
