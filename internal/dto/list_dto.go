package dto

type CreateListInput struct {
	Title         string  `json:"title" binding:"required,max=120"`
	Description   *string `json:"description" binding:"omitempty,max=2000"`
	CoverImageURL *string `json:"cover_image_url" binding:"omitempty,url"`
}

type UpdateListInput struct {
	Title         *string `json:"title" binding:"omitempty,max=120"`
	Description   *string `json:"description" binding:"omitempty,max=2000"`
	CoverImageURL *string `json:"cover_image_url" binding:"omitempty,url"`
}

type ShareListInput struct {
	UserID  int  `json:"user_id" binding:"required"`
	IsOwner bool `json:"is_owner"`
}

type AddRestaurantToListInput struct {
	RestaurantID int `json:"restaurant_id" binding:"required"`
}

type ReorderInput struct {
	RestaurantIDs []int `json:"restaurant_ids" binding:"required,min=1"`
}
