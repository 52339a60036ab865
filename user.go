package uber

import (
	"context"
	"net/url"
	"strconv"
)

// UserClient handles rider profile and history operations.
type UserClient struct {
	client *Client
}

// Profile retrieves the authenticated rider's profile.
func (c *UserClient) Profile(ctx context.Context) (*UserProfile, error) {
	var result UserProfile
	err := c.client.http.get(ctx, endpoints.Me, nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyPromotion applies a promotion code to the rider's account.
func (c *UserClient) ApplyPromotion(ctx context.Context, promotionCode string) (*PromotionApplied, error) {
	body := map[string]string{
		"applied_promotion_codes": promotionCode,
	}

	var result PromotionApplied
	err := c.client.http.patch(ctx, endpoints.Me, body, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Activity retrieves a page of the rider's trip history. Offset and limit
// are passed through as query parameters; the SDK does not iterate pages.
func (c *UserClient) Activity(ctx context.Context, offset, limit int) (*UserActivity, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var result UserActivity
	err := c.client.http.get(ctx, endpoints.History, query, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
