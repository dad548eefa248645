package model

import "time"

type List struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	CoverImageURL *string   `json:"cover_image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListCollaborator is the many-to-many join between users and lists.
// IsOwner distinguishes full control (mutate, delete, share) from
// read/append access granted through sharing.
type ListCollaborator struct {
	ID      int  `json:"id"`
	ListID  int  `json:"list_id"`
	UserID  int  `json:"user_id"`
	IsOwner bool `json:"is_owner"`
}
