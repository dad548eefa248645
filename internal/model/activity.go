package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type ActivityType string

const (
	ActivityRestaurantAdded       ActivityType = "restaurant_added"
	ActivityVisitAdded            ActivityType = "visit_added"
	ActivityNoteAdded             ActivityType = "note_added"
	ActivityListShared            ActivityType = "list_shared"
	ActivityAISummary             ActivityType = "ai_summary"
	ActivityAISuggestion          ActivityType = "ai_suggestion"
	ActivityFriendRequestSent     ActivityType = "friend_request_sent"
	ActivityFriendRequestAccepted ActivityType = "friend_request_accepted"
)

// ActivityPayload is the type-specific data carried by an activity.
// One variant exists per ActivityType, so code filtering activities can
// type-switch exhaustively instead of digging through a free-form blob.
type ActivityPayload interface {
	ActivityType() ActivityType
}

type RestaurantAddedPayload struct {
	ListID         int    `json:"list_id"`
	RestaurantID   int    `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
}

func (RestaurantAddedPayload) ActivityType() ActivityType { return ActivityRestaurantAdded }

type VisitAddedPayload struct {
	VisitID        int    `json:"visit_id"`
	RestaurantID   int    `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
}

func (VisitAddedPayload) ActivityType() ActivityType { return ActivityVisitAdded }

type NoteAddedPayload struct {
	NoteID  int `json:"note_id"`
	VisitID int `json:"visit_id"`
}

func (NoteAddedPayload) ActivityType() ActivityType { return ActivityNoteAdded }

type ListSharedPayload struct {
	ListID       int    `json:"list_id"`
	ListTitle    string `json:"list_title"`
	TargetUserID int    `json:"target_user_id"`
}

func (ListSharedPayload) ActivityType() ActivityType { return ActivityListShared }

type AISummaryPayload struct {
	VisitID int `json:"visit_id"`
}

func (AISummaryPayload) ActivityType() ActivityType { return ActivityAISummary }

type AISuggestionPayload struct {
	Suggestion string `json:"suggestion"`
}

func (AISuggestionPayload) ActivityType() ActivityType { return ActivityAISuggestion }

type FriendRequestSentPayload struct {
	RecipientID int `json:"recipient_id"`
}

func (FriendRequestSentPayload) ActivityType() ActivityType { return ActivityFriendRequestSent }

type FriendRequestAcceptedPayload struct {
	RequesterID int `json:"requester_id"`
}

func (FriendRequestAcceptedPayload) ActivityType() ActivityType {
	return ActivityFriendRequestAccepted
}

// Activity is an append-only log entry. Type always matches
// Payload.ActivityType().
type Activity struct {
	ID        int             `json:"id"`
	ActorID   int             `json:"actor_id"`
	Type      ActivityType    `json:"type"`
	Payload   ActivityPayload `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// UnmarshalJSON decodes the payload into the variant matching the type
// tag. Needed wherever activities cross a serialization boundary (the
// Redis fan-out channel).
func (a *Activity) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int             `json:"id"`
		ActorID   int             `json:"actor_id"`
		Type      ActivityType    `json:"type"`
		Payload   json.RawMessage `json:"payload"`
		CreatedAt time.Time       `json:"created_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.ID = raw.ID
	a.ActorID = raw.ActorID
	a.Type = raw.Type
	a.CreatedAt = raw.CreatedAt

	if len(raw.Payload) == 0 {
		a.Payload = nil
		return nil
	}

	// Decode into the concrete variant, then store it by value so the
	// payload type-switches see the same types the store produces.
	switch raw.Type {
	case ActivityRestaurantAdded:
		var p RestaurantAddedPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		a.Payload = p
	case ActivityVisitAdded:
		var p VisitAddedPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		a.Payload = p
	case ActivityNoteAdded:
		var p NoteAddedPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		a.Payload = p
	case ActivityListShared:
		var p ListSharedPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		a.Payload = p
	case ActivityAISummary:
		var p AISummaryPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		a.Payload = p
	case ActivityAISuggestion:
		var p AISuggestionPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		a.Payload = p
	case ActivityFriendRequestSent:
		var p FriendRequestSentPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		a.Payload = p
	case ActivityFriendRequestAccepted:
		var p FriendRequestAcceptedPayload
		if err := json.Unmarshal(raw.Payload, &p); err != nil {
			return err
		}
		a.Payload = p
	default:
		return fmt.Errorf("unknown activity type %q", raw.Type)
	}
	return nil
}
