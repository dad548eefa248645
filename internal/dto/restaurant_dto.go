package dto

import "anoa.com/makanlist/internal/model"

// CreateRestaurantInput carries either a bare place id (details are
// resolved through the place lookup) or the full field set from the
// client.
type CreateRestaurantInput struct {
	PlaceID    string   `json:"place_id" binding:"required,max=255"`
	Name       string   `json:"name" binding:"omitempty,max=200"`
	Address    *string  `json:"address" binding:"omitempty,max=500"`
	Cuisine    *string  `json:"cuisine" binding:"omitempty,max=100"`
	PriceLevel *int     `json:"price_level" binding:"omitempty,min=0,max=4"`
	Rating     *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	PhotoURL   *string  `json:"photo_url" binding:"omitempty,url"`

	// ListID is optional; when absent the restaurant lands in the
	// user's default list.
	ListID *int `json:"list_id"`
}

type CreateRestaurantResponse struct {
	Restaurant *model.Restaurant       `json:"restaurant"`
	Entry      *model.RestaurantInList `json:"entry"`
}
