package model

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	// ExternalID is the identifier assigned by the external auth provider
	// (Google account ID). Unique across users when set.
	ExternalID *string   `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
)

// Friendship links an unordered pair of users. Rejected requests are
// deleted outright, so only pending and accepted rows exist.
type Friendship struct {
	ID          int              `json:"id"`
	RequesterID int              `json:"requester_id"`
	RecipientID int              `json:"recipient_id"`
	Status      FriendshipStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
