package ubertest

import (
	uber "github.com/osodiq/Rideshare.Uber.Sdk"
)

// TestingT is an interface that matches *testing.T and *testing.B.
type TestingT interface {
	Fatalf(format string, args ...any)
	Cleanup(func())
	Helper()
}

// TestAccessToken is the default test access token.
const TestAccessToken = "test-access-token"

// NewTestClient creates a client configured for testing.
// It uses a mock server that doesn't make real API calls.
// The client and server are automatically cleaned up when the test ends.
func NewTestClient(t TestingT, opts ...uber.ConfigOption) (*uber.Client, *MockServer) {
	t.Helper()

	server := NewMockServer()

	baseOpts := []uber.ConfigOption{
		uber.WithBaseURL(server.URL),
	}
	allOpts := append(baseOpts, opts...)

	client, err := uber.New(TestAccessToken, allOpts...)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}

	t.Cleanup(server.Close)

	return client, server
}
