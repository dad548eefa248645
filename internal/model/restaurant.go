package model

import "time"

// Restaurant is a global, de-duplicated entity keyed by the external
// place identifier. Two rows never share a PlaceID.
type Restaurant struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	PlaceID    string    `json:"place_id"`
	Address    *string   `json:"address,omitempty"`
	Cuisine    *string   `json:"cuisine,omitempty"`
	PriceLevel *int      `json:"price_level,omitempty"`
	Rating     *float64  `json:"rating,omitempty"`
	PhotoURL   *string   `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// RestaurantInList places a restaurant inside a list at an integer
// position. Positions are dense within a list after a reorder; removal
// may leave gaps.
type RestaurantInList struct {
	ID           int       `json:"id"`
	ListID       int       `json:"list_id"`
	RestaurantID int       `json:"restaurant_id"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}
