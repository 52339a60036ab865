package uber

// Request represents a newly created ride request, as returned by
// POST /{version}/requests.
type Request struct {
	RequestID       string    `json:"request_id"`
	Status          string    `json:"status"`
	Vehicle         *Vehicle  `json:"vehicle"`
	Driver          *Driver   `json:"driver"`
	Location        *Location `json:"location"`
	ETA             int       `json:"eta"`
	SurgeMultiplier float64   `json:"surge_multiplier"`
}

// RequestDetails represents the current state of an ongoing ride request,
// as returned by GET /{version}/requests/{id}.
type RequestDetails struct {
	RequestID       string    `json:"request_id"`
	Status          string    `json:"status"`
	Vehicle         *Vehicle  `json:"vehicle"`
	Driver          *Driver   `json:"driver"`
	Location        *Location `json:"location"`
	ETA             int       `json:"eta"`
	SurgeMultiplier float64   `json:"surge_multiplier"`
}

// Vehicle describes the vehicle assigned to a ride request.
type Vehicle struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	PictureURL   string `json:"picture_url"`
}

// Driver describes the driver assigned to a ride request.
type Driver struct {
	PhoneNumber string  `json:"phone_number"`
	Rating      float64 `json:"rating"`
	PictureURL  string  `json:"picture_url"`
	Name        string  `json:"name"`
}

// Location is a geographic position, optionally with a vehicle bearing.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Bearing   int     `json:"bearing,omitempty"`
}

// RequestMap holds the link to a live tracking map for a ride request,
// as returned by GET /{version}/requests/{id}/map.
type RequestMap struct {
	RequestID string `json:"request_id"`
	Href      string `json:"href"`
}

// Promotion represents a promotion available for a trip between two
// locations, as returned by GET /{version}/promotions.
type Promotion struct {
	DisplayText    string `json:"display_text"`
	LocalizedValue string `json:"localized_value"`
	Type           string `json:"type"`
}

// PromotionApplied is the confirmation returned when a promotion code is
// applied to the rider's account via PATCH /{version}/me.
type PromotionApplied struct {
	PromotionCode string `json:"promotion_code"`
	Description   string `json:"description"`
}

// UserProfile represents the authenticated rider's profile, as returned by
// GET /{version}/me.
type UserProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Picture   string `json:"picture"`
	PromoCode string `json:"promo_code"`
	UUID      string `json:"uuid"`
}

// UserActivity is a page of the rider's trip history, as returned by
// GET /{version}/history.
type UserActivity struct {
	Offset  int                `json:"offset"`
	Limit   int                `json:"limit"`
	Count   int                `json:"count"`
	History []UserActivityItem `json:"history"`
}

// UserActivityItem is a single completed trip in the rider's history.
type UserActivityItem struct {
	RequestID   string  `json:"request_id"`
	RequestTime int64   `json:"request_time"`
	ProductID   string  `json:"product_id"`
	Status      string  `json:"status"`
	Distance    float64 `json:"distance"`
	StartTime   int64   `json:"start_time"`
	EndTime     int64   `json:"end_time"`
	StartCity   *City   `json:"start_city"`
}

// City is a named location attached to a history item.
type City struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}
