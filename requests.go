package uber

import (
	"context"
	"fmt"
)

// RequestsClient handles ride request operations.
type RequestsClient struct {
	client *Client
}

// RideRequestParams are the inputs for creating a ride request.
type RideRequestParams struct {
	// ProductID identifies the product (e.g. uberX) to request.
	ProductID string

	// Pickup coordinates.
	StartLatitude  float64
	StartLongitude float64

	// Drop-off coordinates.
	EndLatitude  float64
	EndLongitude float64

	// SurgeConfirmationID confirms an acknowledged surge multiplier.
	// Omitted from the request when blank.
	SurgeConfirmationID string
}

// body builds the JSON body for a ride request. Coordinates are sent as
// fixed-point strings with exactly 5 fractional digits; the API rejects
// higher-precision values in request bodies.
func (p *RideRequestParams) body() map[string]string {
	body := map[string]string{
		"product_id":      p.ProductID,
		"start_latitude":  formatCoordinate(p.StartLatitude),
		"start_longitude": formatCoordinate(p.StartLongitude),
		"end_latitude":    formatCoordinate(p.EndLatitude),
		"end_longitude":   formatCoordinate(p.EndLongitude),
	}
	if !isBlank(p.SurgeConfirmationID) {
		body["surge_confirmation_id"] = p.SurgeConfirmationID
	}
	return body
}

// Create requests a ride on behalf of the authenticated rider.
func (c *RequestsClient) Create(ctx context.Context, params *RideRequestParams) (*Request, error) {
	if params == nil {
		return nil, ErrNilParams
	}

	var result Request
	err := c.client.http.post(ctx, endpoints.Requests, params.body(), &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves the current details of a ride request.
func (c *RequestsClient) Get(ctx context.Context, requestID string) (*RequestDetails, error) {
	var result RequestDetails
	err := c.client.http.get(ctx, fmt.Sprintf("%s/%s", endpoints.Requests, requestID), nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Map retrieves the live tracking map link for a ride request.
func (c *RequestsClient) Map(ctx context.Context, requestID string) (*RequestMap, error) {
	var result RequestMap
	err := c.client.http.get(ctx, fmt.Sprintf("%s/%s/map", endpoints.Requests, requestID), nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Cancel cancels an ongoing ride request. A nil error means the API
// accepted the cancellation; the response body is not inspected.
func (c *RequestsClient) Cancel(ctx context.Context, requestID string) error {
	return c.client.http.del(ctx, fmt.Sprintf("%s/%s", endpoints.Requests, requestID))
}
