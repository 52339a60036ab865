// Package ubertest provides testing utilities for applications using the
// uber SDK.
//
// # Mock Server
//
// Use MockServer to record and inspect HTTP requests:
//
//	server := ubertest.NewMockServer()
//	defer server.Close()
//
//	client, _ := uber.New("token", uber.WithBaseURL(server.URL))
//	// ... use client ...
//
//	requests := server.Requests()
//	// assert on requests
//
// # Test Client
//
// Use NewTestClient for a pre-configured client with a mock server:
//
//	func TestMyFeature(t *testing.T) {
//	    client, server := ubertest.NewTestClient(t)
//	    // client and server are cleaned up when the test ends
//
//	    profile, _ := client.User().Profile(ctx)
//	    // ...
//	}
package ubertest
