// Package uber provides a typed Go client for the Uber Rides REST API.
//
// The client exposes one method per remote endpoint: requesting a ride,
// fetching request details and the request map, cancelling a request,
// looking up promotions, reading the rider profile, applying a promotion
// code, and listing ride history.
//
// # Quick Start
//
// Create a client with an OAuth access token and request a ride:
//
//	client, err := uber.New(os.Getenv("UBER_ACCESS_TOKEN"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ride, err := client.Requests().Create(ctx, &uber.RideRequestParams{
//	    ProductID:      "a1111c8c-c720-46c3-8534-2fcdd730040d",
//	    StartLatitude:  37.761492,
//	    StartLongitude: -122.423941,
//	    EndLatitude:    37.775393,
//	    EndLongitude:   -122.417546,
//	})
//
// Server-token applications use [NewWithServerToken] instead; both token
// kinds reduce to a single static Authorization header at this layer.
//
// # Configuration
//
// The client is configured with functional options:
//
//	client, err := uber.New(token,
//	    uber.WithEnvironment(uber.EnvironmentSandbox),
//	    uber.WithAPIVersion("v1.2"),
//	    uber.WithDebug(true),
//	)
//
// Configuration can also come from the process environment ([NewFromEnv])
// or a YAML file ([LoadConfig]).
//
// # Error Handling
//
// Every API-level failure is returned as a typed error value, never a
// panic. Non-2xx responses become [*APIError] carrying the HTTP status and
// the message parsed from the error body; 2xx responses whose body does not
// match the expected shape become [*DecodeError]. Only transport faults
// (DNS, connection, TLS) surface as plain wrapped errors.
//
//	_, err := client.Requests().Get(ctx, rideID)
//	if apiErr, ok := uber.AsAPIError(err); ok && apiErr.IsNotFound() {
//	    // the request no longer exists
//	}
//
// # Thread Safety
//
// The Client is stateless after construction and safe for concurrent use;
// any number of calls may be in flight at once. The SDK performs no retries
// and imposes no deadline beyond the transport default — pass a context
// with a deadline if you need one.
package uber

// Version is the current SDK version, reported in the User-Agent header.
const Version = "1.0.0"
