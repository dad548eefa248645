package store

import (
	"sort"
	"time"

	"anoa.com/makanlist/internal/model"
)

type CreateRestaurantParams struct {
	Name       string
	PlaceID    string
	Address    *string
	Cuisine    *string
	PriceLevel *int
	Rating     *float64
	PhotoURL   *string
}

// CreateOrGetRestaurant deduplicates strictly by place identifier. When
// a row with the same PlaceID exists it is returned unchanged; the
// input's other fields are ignored even if they differ.
func (s *Store) CreateOrGetRestaurant(p CreateRestaurantParams) *model.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sortedKeys(s.restaurants) {
		if s.restaurants[id].PlaceID == p.PlaceID {
			return cloneRestaurant(s.restaurants[id])
		}
	}

	s.restaurantSeq++
	r := &model.Restaurant{
		ID:         s.restaurantSeq,
		Name:       p.Name,
		PlaceID:    p.PlaceID,
		Address:    p.Address,
		Cuisine:    p.Cuisine,
		PriceLevel: p.PriceLevel,
		Rating:     p.Rating,
		PhotoURL:   p.PhotoURL,
		CreatedAt:  time.Now(),
	}
	s.restaurants[r.ID] = r
	return cloneRestaurant(r)
}

// userListIDsLocked returns the ids of every list the user collaborates
// on, ascending.
func (s *Store) userListIDsLocked(userID int) []int {
	ids := []int{}
	for _, id := range sortedKeys(s.listCollaborators) {
		c := s.listCollaborators[id]
		if c.UserID == userID {
			ids = append(ids, c.ListID)
		}
	}
	sort.Ints(ids)
	return ids
}

// restaurantListsLocked returns, from the user's own lists only, those
// containing the restaurant.
func (s *Store) restaurantListsLocked(restaurantID int, userListIDs []int) []model.List {
	inUserLists := make(map[int]bool, len(userListIDs))
	for _, id := range userListIDs {
		inUserLists[id] = true
	}

	lists := []model.List{}
	seen := map[int]bool{}
	for _, id := range sortedKeys(s.listEntries) {
		e := s.listEntries[id]
		if e.RestaurantID != restaurantID || !inUserLists[e.ListID] || seen[e.ListID] {
			continue
		}
		if l := s.lists[e.ListID]; l != nil {
			lists = append(lists, *l)
			seen[e.ListID] = true
		}
	}
	sort.Slice(lists, func(i, j int) bool { return lists[i].ID < lists[j].ID })
	return lists
}

// GetRestaurantsByUser returns every restaurant reachable through the
// user's lists, each annotated with which of those lists contain it.
func (s *Store) GetRestaurantsByUser(userID int) []*RestaurantDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userLists := s.userListIDsLocked(userID)
	inUserLists := make(map[int]bool, len(userLists))
	for _, id := range userLists {
		inUserLists[id] = true
	}

	reachable := map[int]bool{}
	for _, id := range sortedKeys(s.listEntries) {
		e := s.listEntries[id]
		if inUserLists[e.ListID] {
			reachable[e.RestaurantID] = true
		}
	}

	out := []*RestaurantDetails{}
	for _, id := range sortedKeys(s.restaurants) {
		if !reachable[id] {
			continue
		}
		out = append(out, &RestaurantDetails{
			Restaurant: *s.restaurants[id],
			Lists:      s.restaurantListsLocked(id, userLists),
		})
	}
	return out
}

// GetRestaurantDetails returns the restaurant only when at least one of
// the user's lists contains it, annotated with that subset of lists.
func (s *Store) GetRestaurantDetails(restaurantID, userID int) *RestaurantDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := s.restaurants[restaurantID]
	if r == nil {
		return nil
	}

	lists := s.restaurantListsLocked(restaurantID, s.userListIDsLocked(userID))
	if len(lists) == 0 {
		return nil
	}
	return &RestaurantDetails{Restaurant: *r, Lists: lists}
}

// GetRestaurantsByList returns the list's restaurants in ascending
// position. Non-collaborators get an empty slice, the same as an empty
// list would produce.
func (s *Store) GetRestaurantsByList(listID, userID int) []*model.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.Restaurant{}
	if s.collaboratorRowLocked(listID, userID) == nil {
		return out
	}

	entries := []*model.RestaurantInList{}
	for _, id := range sortedKeys(s.listEntries) {
		if s.listEntries[id].ListID == listID {
			entries = append(entries, s.listEntries[id])
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Position != entries[j].Position {
			return entries[i].Position < entries[j].Position
		}
		return entries[i].ID < entries[j].ID
	})

	for _, e := range entries {
		if r := s.restaurants[e.RestaurantID]; r != nil {
			out = append(out, cloneRestaurant(r))
		}
	}
	return out
}

// AddRestaurantToList appends the restaurant at position
// 1 + max(existing positions), or 0 for an empty list. Any collaborator
// may append. If the pair already exists the existing entry is returned
// untouched.
func (s *Store) AddRestaurantToList(listID, restaurantID, userID int) *model.RestaurantInList {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.restaurants[restaurantID]
	if r == nil || s.lists[listID] == nil || s.collaboratorRowLocked(listID, userID) == nil {
		return nil
	}

	maxPos := -1
	for _, id := range sortedKeys(s.listEntries) {
		e := s.listEntries[id]
		if e.ListID != listID {
			continue
		}
		if e.RestaurantID == restaurantID {
			return cloneEntry(e)
		}
		if e.Position > maxPos {
			maxPos = e.Position
		}
	}

	s.entrySeq++
	e := &model.RestaurantInList{
		ID:           s.entrySeq,
		ListID:       listID,
		RestaurantID: restaurantID,
		Position:     maxPos + 1,
		CreatedAt:    time.Now(),
	}
	s.listEntries[e.ID] = e

	s.appendActivityLocked(userID, model.RestaurantAddedPayload{
		ListID:         listID,
		RestaurantID:   restaurantID,
		RestaurantName: r.Name,
	})
	return cloneEntry(e)
}

// RemoveRestaurantFromList deletes the single matching entry. Remaining
// positions are not renumbered; only a reorder restores density.
func (s *Store) RemoveRestaurantFromList(listID, restaurantID, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collaboratorRowLocked(listID, userID) == nil {
		return false
	}

	for _, id := range sortedKeys(s.listEntries) {
		e := s.listEntries[id]
		if e.ListID == listID && e.RestaurantID == restaurantID {
			delete(s.listEntries, id)
			return true
		}
	}
	return false
}

// ReorderRestaurantsInList assigns position = index for each restaurant
// in the given sequence. The input must be a full permutation of the
// list's current entries; the whole set is validated before any row is
// touched, so a bad input never leaves a partial reorder behind.
func (s *Store) ReorderRestaurantsInList(listID int, orderedRestaurantIDs []int, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collaboratorRowLocked(listID, userID) == nil {
		return false
	}

	byRestaurant := map[int]*model.RestaurantInList{}
	for _, id := range sortedKeys(s.listEntries) {
		e := s.listEntries[id]
		if e.ListID == listID {
			byRestaurant[e.RestaurantID] = e
		}
	}

	if len(orderedRestaurantIDs) != len(byRestaurant) {
		return false
	}
	seen := make(map[int]bool, len(orderedRestaurantIDs))
	for _, rid := range orderedRestaurantIDs {
		if seen[rid] || byRestaurant[rid] == nil {
			return false
		}
		seen[rid] = true
	}

	for idx, rid := range orderedRestaurantIDs {
		byRestaurant[rid].Position = idx
	}
	return true
}
