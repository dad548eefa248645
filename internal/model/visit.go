package model

import "time"

type Visit struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Date         time.Time `json:"date"`
	Summary      *string   `json:"summary,omitempty"`
	Occasion     *string   `json:"occasion,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// VisitCollaborator follows the same ownership pattern as
// ListCollaborator: the creator holds IsOwner=true, participants added
// at creation time hold IsOwner=false.
type VisitCollaborator struct {
	ID      int  `json:"id"`
	VisitID int  `json:"visit_id"`
	UserID  int  `json:"user_id"`
	IsOwner bool `json:"is_owner"`
}

type Note struct {
	ID        int       `json:"id"`
	VisitID   int       `json:"visit_id"`
	AuthorID  int       `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Photo struct {
	ID         int       `json:"id"`
	VisitID    int       `json:"visit_id"`
	UploaderID int       `json:"uploader_id"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"created_at"`
}
