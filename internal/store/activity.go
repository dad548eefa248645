package store

import (
	"time"

	"anoa.com/makanlist/internal/model"
)

// appendActivityLocked is the single append path for the activity log.
// Every store operation that performs a loggable action goes through
// here, so the log and the tables never disagree.
func (s *Store) appendActivityLocked(actorID int, payload model.ActivityPayload) *model.Activity {
	s.activitySeq++
	a := &model.Activity{
		ID:        s.activitySeq,
		ActorID:   actorID,
		Type:      payload.ActivityType(),
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	s.activities[a.ID] = a

	if s.sink != nil {
		s.sink(cloneActivity(a))
	}
	return a
}

// CreateActivity appends an entry for actions the store does not
// perform itself (AI summaries and suggestions). Pure append; the
// payload shape is not validated beyond carrying a known type.
func (s *Store) CreateActivity(actorID int, payload model.ActivityPayload) *model.Activity {
	if payload == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.users[actorID] == nil {
		return nil
	}
	return cloneActivity(s.appendActivityLocked(actorID, payload))
}

// reachableSetsLocked computes the three reachability sets relevance
// filtering needs: (a) lists the user collaborates on, (b) restaurants
// in those lists, (c) visits to those restaurants where the user also
// holds a visit collaborator row.
func (s *Store) reachableSetsLocked(userID int) (lists, restaurants, visits map[int]bool) {
	lists = map[int]bool{}
	for _, id := range sortedKeys(s.listCollaborators) {
		c := s.listCollaborators[id]
		if c.UserID == userID {
			lists[c.ListID] = true
		}
	}

	restaurants = map[int]bool{}
	for _, id := range sortedKeys(s.listEntries) {
		e := s.listEntries[id]
		if lists[e.ListID] {
			restaurants[e.RestaurantID] = true
		}
	}

	visits = map[int]bool{}
	for _, id := range sortedKeys(s.visits) {
		v := s.visits[id]
		if restaurants[v.RestaurantID] && s.visitCollabLocked(v.ID, userID) != nil {
			visits[v.ID] = true
		}
	}
	return lists, restaurants, visits
}

// activityVisible is the relevance predicate: the actor always sees
// their own activities; everything else depends on reachability of the
// payload's subject. The type switch covers every payload variant.
func activityVisible(userID int, a *model.Activity, lists, restaurants, visits map[int]bool) bool {
	if a.ActorID == userID {
		return true
	}

	switch p := a.Payload.(type) {
	case model.ListSharedPayload:
		return lists[p.ListID]
	case model.RestaurantAddedPayload:
		return restaurants[p.RestaurantID]
	case model.VisitAddedPayload:
		return restaurants[p.RestaurantID]
	case model.NoteAddedPayload:
		return visits[p.VisitID]
	case model.AISummaryPayload:
		return visits[p.VisitID]
	case model.AISuggestionPayload:
		return false
	case model.FriendRequestSentPayload:
		return false
	case model.FriendRequestAcceptedPayload:
		return false
	default:
		return false
	}
}

// GetActivityFeed filters the append-only log down to what the user may
// see, newest first, capped at twenty entries. Recomputed fully on
// every call; this is a relevance filter, not a subscription.
func (s *Store) GetActivityFeed(userID int) []*model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists, restaurants, visits := s.reachableSetsLocked(userID)

	feed := []*model.Activity{}
	ids := sortedKeys(s.activities)
	for i := len(ids) - 1; i >= 0; i-- {
		a := s.activities[ids[i]]
		if !activityVisible(userID, a, lists, restaurants, visits) {
			continue
		}
		feed = append(feed, cloneActivity(a))
		if len(feed) == feedLimit {
			break
		}
	}
	return feed
}

// ActivityVisibleTo reports whether the user may see the activity.
// Used by the live fan-out to filter the global activity stream per
// connection with the same rules as GetActivityFeed.
func (s *Store) ActivityVisibleTo(userID int, a *model.Activity) bool {
	if a == nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	lists, restaurants, visits := s.reachableSetsLocked(userID)
	return activityVisible(userID, a, lists, restaurants, visits)
}
