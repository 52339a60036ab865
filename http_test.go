package uber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDispatcherBearerAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer my-access-token" {
			t.Errorf("Expected Bearer auth header, got %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Expected Accept application/json, got %q", got)
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "uber-rides-go/") {
			t.Errorf("Expected uber-rides-go User-Agent, got %q", ua)
		}
		json.NewEncoder(w).Encode(UserProfile{})
	}))
	defer server.Close()

	client, _ := New("my-access-token", WithBaseURL(server.URL))

	if _, err := client.User().Profile(context.Background()); err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
}

func TestDispatcherServerTokenAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Token my-server-token" {
			t.Errorf("Expected Token auth header, got %q", got)
		}
		json.NewEncoder(w).Encode(Promotion{})
	}))
	defer server.Close()

	client, _ := NewWithServerToken("my-server-token", WithBaseURL(server.URL))

	if _, err := client.Promotions().Get(context.Background(), 1, 2, 3, 4); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}

func TestDispatcherVersionSegment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/me" {
			t.Errorf("Expected /v1/me, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(UserProfile{})
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL), WithAPIVersion("v1"))

	if _, err := client.User().Profile(context.Background()); err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
}

func TestDispatcherErrorBodyParsed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"code":    "validation_failed",
			"message": "Invalid request",
			"fields":  map[string]string{"start_latitude": "Must be a valid latitude"},
		})
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	_, err := client.Requests().Create(context.Background(), &RideRequestParams{ProductID: "p"})
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", apiErr.StatusCode)
	}
	if apiErr.Code != "validation_failed" {
		t.Errorf("Expected validation_failed, got %q", apiErr.Code)
	}
	if apiErr.Message != "Invalid request" {
		t.Errorf("Expected Invalid request, got %q", apiErr.Message)
	}
	if apiErr.Fields["start_latitude"] != "Must be a valid latitude" {
		t.Errorf("Expected field error, got %v", apiErr.Fields)
	}
}

func TestDispatcherErrorBodyFallbackMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "non-JSON body", body: "<html>gateway error</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			}))
			defer server.Close()

			client, _ := New("test-token", WithBaseURL(server.URL))

			_, err := client.User().Profile(context.Background())
			apiErr, ok := AsAPIError(err)
			if !ok {
				t.Fatalf("Expected APIError, got %v", err)
			}
			if apiErr.StatusCode != 404 {
				t.Errorf("Expected 404, got %d", apiErr.StatusCode)
			}
			if apiErr.Message != "Not Found" {
				t.Errorf("Expected generic fallback message, got %q", apiErr.Message)
			}
		})
	}
}

func TestDispatcherMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"request_id": 12345}`)) // wrong type for request_id
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	_, err := client.Requests().Get(context.Background(), "req-1")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	decErr, ok := AsDecodeError(err)
	if !ok {
		t.Fatalf("Expected DecodeError, got %T: %v", err, err)
	}
	if decErr.Body == "" {
		t.Error("Expected body snippet on DecodeError")
	}
	if _, ok := AsAPIError(err); ok {
		t.Error("DecodeError should not match APIError")
	}
}

func TestDispatcherEmptySuccessBody(t *testing.T) {
	// A 2xx with an empty body leaves the result zero-valued rather than
	// failing; the delete path never reads the body at all.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL))

	profile, err := client.User().Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if profile.FirstName != "" {
		t.Errorf("Expected zero-valued profile, got %+v", profile)
	}
}

func TestDispatcherTransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, _ := New("test-token", WithBaseURL(server.URL))

	_, err := client.User().Profile(context.Background())
	if err == nil {
		t.Fatal("Expected transport error, got nil")
	}
	if _, ok := AsAPIError(err); ok {
		t.Errorf("Transport fault should not be an APIError: %v", err)
	}
	if _, ok := AsDecodeError(err); ok {
		t.Errorf("Transport fault should not be a DecodeError: %v", err)
	}
}

func TestDispatcherContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		server.Close()
	}()

	client, _ := New("test-token", WithBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.User().Profile(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in chain, got %v", err)
	}
}

func TestDispatcherTrailingSlashBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1.2/me" {
			t.Errorf("Expected /v1.2/me, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(UserProfile{})
	}))
	defer server.Close()

	client, _ := New("test-token", WithBaseURL(server.URL+"/"))

	if _, err := client.User().Profile(context.Background()); err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
}
