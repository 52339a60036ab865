package ubertest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockServer is a test HTTP server that records requests for verification.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*RecordedRequest

	// ResponseFunc allows customizing responses. If nil, returns an empty
	// 200 JSON object.
	ResponseFunc func(r *http.Request) (int, any)
}

// RecordedRequest represents a recorded HTTP request.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Body          []byte
	ContentType   string
	Authorization string
}

// NewMockServer creates a new mock server for testing.
func NewMockServer() *MockServer {
	ms := &MockServer{
		requests: make([]*RecordedRequest, 0),
	}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		ms.mu.Lock()
		ms.requests = append(ms.requests, &RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Body:          body,
			ContentType:   r.Header.Get("Content-Type"),
			Authorization: r.Header.Get("Authorization"),
		})
		ms.mu.Unlock()

		status := http.StatusOK
		var response any = map[string]any{}

		if ms.ResponseFunc != nil {
			status, response = ms.ResponseFunc(r)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(response)
	}))

	return ms
}

// Requests returns all recorded requests.
func (ms *MockServer) Requests() []*RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]*RecordedRequest{}, ms.requests...)
}

// RequestCount returns the number of recorded requests.
func (ms *MockServer) RequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.requests)
}

// LastRequest returns the most recent request, or nil if none.
func (ms *MockServer) LastRequest() *RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.requests) == 0 {
		return nil
	}
	return ms.requests[len(ms.requests)-1]
}

// Reset clears all recorded requests.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requests = make([]*RecordedRequest, 0)
}

// RespondWith configures the server to respond with the given status and
// JSON-encoded payload for every request.
func (ms *MockServer) RespondWith(statusCode int, payload any) {
	ms.ResponseFunc = func(r *http.Request) (int, any) {
		return statusCode, payload
	}
}

// RespondWithError configures the server to respond with a standard API
// error body.
func (ms *MockServer) RespondWithError(statusCode int, code, message string) {
	ms.ResponseFunc = func(r *http.Request) (int, any) {
		return statusCode, map[string]string{
			"code":    code,
			"message": message,
		}
	}
}
