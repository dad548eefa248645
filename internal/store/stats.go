package store

// GetUserStats returns the four profile counts. Visits counts the
// user's visit collaborator rows ("visits I was part of"), and
// collaborators counts distinct other users sharing any of the user's
// lists ("collaborator reach"), not accepted friendships.
func (s *Store) GetUserStats(userID int) UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := UserStats{}

	userLists := map[int]bool{}
	for _, id := range sortedKeys(s.listCollaborators) {
		c := s.listCollaborators[id]
		if c.UserID == userID {
			userLists[c.ListID] = true
		}
	}
	stats.ListCount = len(userLists)

	restaurants := map[int]bool{}
	for _, id := range sortedKeys(s.listEntries) {
		e := s.listEntries[id]
		if userLists[e.ListID] {
			restaurants[e.RestaurantID] = true
		}
	}
	stats.RestaurantCount = len(restaurants)

	for _, id := range sortedKeys(s.visitCollaborators) {
		if s.visitCollaborators[id].UserID == userID {
			stats.VisitCount++
		}
	}

	others := map[int]bool{}
	for _, id := range sortedKeys(s.listCollaborators) {
		c := s.listCollaborators[id]
		if userLists[c.ListID] && c.UserID != userID {
			others[c.UserID] = true
		}
	}
	stats.CollaboratorCount = len(others)

	return stats
}
