package store

import (
	"time"

	"anoa.com/makanlist/internal/model"
)

type CreateListParams struct {
	Title         string
	Description   *string
	CoverImageURL *string
}

type UpdateListParams struct {
	Title         *string
	Description   *string
	CoverImageURL *string
}

// createListLocked inserts a list together with its owner collaborator
// row. No caller can ever observe a list without an owner.
func (s *Store) createListLocked(title string, description, coverImageURL *string, ownerID int) *model.List {
	now := time.Now()
	s.listSeq++
	l := &model.List{
		ID:            s.listSeq,
		Title:         title,
		Description:   description,
		CoverImageURL: coverImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.lists[l.ID] = l

	s.listCollabSeq++
	s.listCollaborators[s.listCollabSeq] = &model.ListCollaborator{
		ID:      s.listCollabSeq,
		ListID:  l.ID,
		UserID:  ownerID,
		IsOwner: true,
	}
	return l
}

// collaboratorRowLocked returns the (list, user) collaborator row, or
// nil. This predicate gates every list read and write.
func (s *Store) collaboratorRowLocked(listID, userID int) *model.ListCollaborator {
	for _, id := range sortedKeys(s.listCollaborators) {
		c := s.listCollaborators[id]
		if c.ListID == listID && c.UserID == userID {
			return c
		}
	}
	return nil
}

func (s *Store) listDetailsLocked(l *model.List) *ListDetails {
	d := &ListDetails{
		List:          *l,
		Collaborators: []Collaborator{},
	}
	for _, id := range sortedKeys(s.listCollaborators) {
		c := s.listCollaborators[id]
		if c.ListID != l.ID {
			continue
		}
		u := s.users[c.UserID]
		if u == nil {
			continue
		}
		d.Collaborators = append(d.Collaborators, Collaborator{User: *u, IsOwner: c.IsOwner})
	}
	for _, id := range sortedKeys(s.listEntries) {
		if s.listEntries[id].ListID == l.ID {
			d.RestaurantCount++
		}
	}
	return d
}

func (s *Store) CreateList(p CreateListParams, ownerID int) *model.List {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.users[ownerID] == nil {
		return nil
	}
	return cloneList(s.createListLocked(p.Title, p.Description, p.CoverImageURL, ownerID))
}

// GetListsByUser returns every list the user collaborates on, owned or
// shared, enriched with collaborators and restaurant counts.
func (s *Store) GetListsByUser(userID int) []*ListDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*ListDetails{}
	for _, id := range sortedKeys(s.lists) {
		l := s.lists[id]
		if s.collaboratorRowLocked(l.ID, userID) != nil {
			out = append(out, s.listDetailsLocked(l))
		}
	}
	return out
}

// GetSharedLists returns only lists shared to the user, i.e. where
// their collaborator row carries IsOwner=false.
func (s *Store) GetSharedLists(userID int) []*ListDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*ListDetails{}
	for _, id := range sortedKeys(s.lists) {
		l := s.lists[id]
		if c := s.collaboratorRowLocked(l.ID, userID); c != nil && !c.IsOwner {
			out = append(out, s.listDetailsLocked(l))
		}
	}
	return out
}

func (s *Store) GetListDetails(listID, userID int) *ListDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l := s.lists[listID]
	if l == nil || s.collaboratorRowLocked(listID, userID) == nil {
		return nil
	}
	return s.listDetailsLocked(l)
}

// UpdateList applies the non-nil fields. Only an owner may mutate;
// anyone else gets nil with nothing changed.
func (s *Store) UpdateList(listID, userID int, p UpdateListParams) *model.List {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.lists[listID]
	c := s.collaboratorRowLocked(listID, userID)
	if l == nil || c == nil || !c.IsOwner {
		return nil
	}

	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = p.Description
	}
	if p.CoverImageURL != nil {
		l.CoverImageURL = p.CoverImageURL
	}
	l.UpdatedAt = time.Now()

	return cloneList(l)
}

// DeleteList removes the list and cascades to its collaborator rows and
// restaurant entries. Visits, notes and photos hang off restaurants,
// which are global, so they survive.
func (s *Store) DeleteList(listID, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.lists[listID]
	c := s.collaboratorRowLocked(listID, userID)
	if l == nil || c == nil || !c.IsOwner {
		return false
	}

	delete(s.lists, listID)
	for _, id := range sortedKeys(s.listCollaborators) {
		if s.listCollaborators[id].ListID == listID {
			delete(s.listCollaborators, id)
		}
	}
	for _, id := range sortedKeys(s.listEntries) {
		if s.listEntries[id].ListID == listID {
			delete(s.listEntries, id)
		}
	}
	return true
}

// ShareList grants targetUserID access to the list. Requires the
// requester to own the list. Re-sharing an existing collaborator
// updates their ownership flag in place instead of duplicating the row.
// Sharing to yourself is refused: flipping your own flag could leave
// the list without an owner.
func (s *Store) ShareList(listID, targetUserID int, grantOwner bool, requestingUserID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.lists[listID]
	requester := s.collaboratorRowLocked(listID, requestingUserID)
	if l == nil || requester == nil || !requester.IsOwner {
		return false
	}
	if targetUserID == requestingUserID {
		return false
	}
	if s.users[targetUserID] == nil {
		return false
	}

	if existing := s.collaboratorRowLocked(listID, targetUserID); existing != nil {
		existing.IsOwner = grantOwner
	} else {
		s.listCollabSeq++
		s.listCollaborators[s.listCollabSeq] = &model.ListCollaborator{
			ID:      s.listCollabSeq,
			ListID:  listID,
			UserID:  targetUserID,
			IsOwner: grantOwner,
		}
	}

	s.appendActivityLocked(requestingUserID, model.ListSharedPayload{
		ListID:       listID,
		ListTitle:    l.Title,
		TargetUserID: targetUserID,
	})
	return true
}
