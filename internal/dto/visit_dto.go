package dto

type CreateVisitInput struct {
	RestaurantID    int     `json:"restaurant_id" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	Occasion        *string `json:"occasion" binding:"omitempty,max=200"`
	CollaboratorIDs []int   `json:"collaborator_ids"`
}

type CreateNoteInput struct {
	Content string `json:"content" binding:"required,max=5000"`
}
