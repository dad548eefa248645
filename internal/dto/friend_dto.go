package dto

type SendFriendRequestInput struct {
	UserID int `json:"user_id" binding:"required"`
}
