package store

import (
	"time"

	"anoa.com/makanlist/internal/model"
)

// findFriendshipLocked returns the friendship row between the unordered
// pair, pending or accepted, regardless of direction.
func (s *Store) findFriendshipLocked(a, b int) *model.Friendship {
	for _, id := range sortedKeys(s.friendships) {
		f := s.friendships[id]
		if (f.RequesterID == a && f.RecipientID == b) || (f.RequesterID == b && f.RecipientID == a) {
			return f
		}
	}
	return nil
}

// findPendingRequestLocked returns the pending row where requester sent
// to recipient, in that direction only.
func (s *Store) findPendingRequestLocked(requesterID, recipientID int) *model.Friendship {
	for _, id := range sortedKeys(s.friendships) {
		f := s.friendships[id]
		if f.Status == model.FriendshipPending && f.RequesterID == requesterID && f.RecipientID == recipientID {
			return f
		}
	}
	return nil
}

// SendFriendRequest inserts a pending friendship from fromID to toID.
// Fails when either user is unknown or any row, pending or accepted,
// already exists between the pair in either direction.
func (s *Store) SendFriendRequest(fromID, toID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fromID == toID {
		return false
	}
	if s.users[fromID] == nil || s.users[toID] == nil {
		return false
	}
	if s.findFriendshipLocked(fromID, toID) != nil {
		return false
	}

	now := time.Now()
	s.friendshipSeq++
	f := &model.Friendship{
		ID:          s.friendshipSeq,
		RequesterID: fromID,
		RecipientID: toID,
		Status:      model.FriendshipPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.friendships[f.ID] = f

	s.appendActivityLocked(fromID, model.FriendRequestSentPayload{RecipientID: toID})
	return true
}

// AcceptFriendRequest transitions the pending request from requesterID
// to accepterID into an accepted, bidirectional friendship.
func (s *Store) AcceptFriendRequest(accepterID, requesterID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findPendingRequestLocked(requesterID, accepterID)
	if f == nil {
		return false
	}

	f.Status = model.FriendshipAccepted
	f.UpdatedAt = time.Now()

	s.appendActivityLocked(accepterID, model.FriendRequestAcceptedPayload{RequesterID: requesterID})
	return true
}

// RejectFriendRequest deletes the pending request outright. Rejected
// requests leave no trace, so the pair can try again later.
func (s *Store) RejectFriendRequest(accepterID, requesterID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.findPendingRequestLocked(requesterID, accepterID)
	if f == nil {
		return false
	}

	delete(s.friendships, f.ID)
	return true
}

// GetFriends returns every user in an accepted friendship with userID,
// whichever side sent the original request.
func (s *Store) GetFriends(userID int) []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	friends := []*model.User{}
	for _, id := range sortedKeys(s.friendships) {
		f := s.friendships[id]
		if f.Status != model.FriendshipAccepted {
			continue
		}

		var otherID int
		switch userID {
		case f.RequesterID:
			otherID = f.RecipientID
		case f.RecipientID:
			otherID = f.RequesterID
		default:
			continue
		}

		if other := s.users[otherID]; other != nil {
			friends = append(friends, cloneUser(other))
		}
	}
	return friends
}

// GetFriendRequests returns incoming pending requests for userID with
// requester details attached.
func (s *Store) GetFriendRequests(userID int) []FriendRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := []FriendRequest{}
	for _, id := range sortedKeys(s.friendships) {
		f := s.friendships[id]
		if f.Status != model.FriendshipPending || f.RecipientID != userID {
			continue
		}
		requester := s.users[f.RequesterID]
		if requester == nil {
			continue
		}
		requests = append(requests, FriendRequest{
			Friendship: *f,
			Requester:  *requester,
		})
	}
	return requests
}
