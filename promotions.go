package uber

import (
	"context"
	"net/url"
)

// PromotionsClient handles promotion lookups.
type PromotionsClient struct {
	client *Client
}

// Get retrieves the promotion available for a trip between the given
// pickup and drop-off coordinates. Query coordinates keep their natural
// float representation; only body coordinates are rounded to 5 decimals.
func (c *PromotionsClient) Get(ctx context.Context, startLatitude, startLongitude, endLatitude, endLongitude float64) (*Promotion, error) {
	query := url.Values{}
	query.Set("start_latitude", formatQueryFloat(startLatitude))
	query.Set("start_longitude", formatQueryFloat(startLongitude))
	query.Set("end_latitude", formatQueryFloat(endLatitude))
	query.Set("end_longitude", formatQueryFloat(endLongitude))

	var result Promotion
	err := c.client.http.get(ctx, endpoints.Promotions, query, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
