package store

import (
	"time"

	"anoa.com/makanlist/internal/model"
	"anoa.com/makanlist/pkg/apperror"
)

type CreateVisitParams struct {
	RestaurantID int
	Date         time.Time
	Occasion     *string
}

type CreateNoteParams struct {
	VisitID int
	Content string
}

type CreatePhotoParams struct {
	VisitID int
	URL     string
}

// visitCollabLocked returns the (visit, user) collaborator row, or nil.
// Gates every visit read and write.
func (s *Store) visitCollabLocked(visitID, userID int) *model.VisitCollaborator {
	for _, id := range sortedKeys(s.visitCollaborators) {
		c := s.visitCollaborators[id]
		if c.VisitID == visitID && c.UserID == userID {
			return c
		}
	}
	return nil
}

// CreateVisit inserts the visit, an owner collaborator row for the
// creator, and a member row per resolvable id in collaboratorIDs.
// Unknown collaborator ids are silently skipped, not errors.
func (s *Store) CreateVisit(p CreateVisitParams, creatorID int, collaboratorIDs []int) *model.Visit {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.restaurants[p.RestaurantID]
	if r == nil || s.users[creatorID] == nil {
		return nil
	}

	s.visitSeq++
	v := &model.Visit{
		ID:           s.visitSeq,
		RestaurantID: p.RestaurantID,
		Date:         p.Date,
		Occasion:     p.Occasion,
		CreatedAt:    time.Now(),
	}
	s.visits[v.ID] = v

	s.visitCollabSeq++
	s.visitCollaborators[s.visitCollabSeq] = &model.VisitCollaborator{
		ID:      s.visitCollabSeq,
		VisitID: v.ID,
		UserID:  creatorID,
		IsOwner: true,
	}

	added := map[int]bool{creatorID: true}
	for _, uid := range collaboratorIDs {
		if added[uid] || s.users[uid] == nil {
			continue
		}
		s.visitCollabSeq++
		s.visitCollaborators[s.visitCollabSeq] = &model.VisitCollaborator{
			ID:      s.visitCollabSeq,
			VisitID: v.ID,
			UserID:  uid,
			IsOwner: false,
		}
		added[uid] = true
	}

	s.appendActivityLocked(creatorID, model.VisitAddedPayload{
		VisitID:        v.ID,
		RestaurantID:   r.ID,
		RestaurantName: r.Name,
	})
	return cloneVisit(v)
}

// GetVisitsByRestaurant returns the restaurant's visits the user
// collaborates on.
func (s *Store) GetVisitsByRestaurant(restaurantID, userID int) []*model.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.Visit{}
	for _, id := range sortedKeys(s.visits) {
		v := s.visits[id]
		if v.RestaurantID != restaurantID {
			continue
		}
		if s.visitCollabLocked(v.ID, userID) == nil {
			continue
		}
		out = append(out, cloneVisit(v))
	}
	return out
}

func (s *Store) GetVisitDetails(visitID, userID int) *VisitDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.visits[visitID]
	if v == nil || s.visitCollabLocked(visitID, userID) == nil {
		return nil
	}

	d := &VisitDetails{
		Visit:         *v,
		Notes:         []NoteWithAuthor{},
		Photos:        []model.Photo{},
		Collaborators: []Collaborator{},
	}

	for _, id := range sortedKeys(s.notes) {
		n := s.notes[id]
		if n.VisitID != visitID {
			continue
		}
		enriched := NoteWithAuthor{Note: *n}
		if author := s.users[n.AuthorID]; author != nil {
			enriched.AuthorName = author.DisplayName
			enriched.AuthorAvatar = author.AvatarURL
		}
		d.Notes = append(d.Notes, enriched)
	}

	for _, id := range sortedKeys(s.photos) {
		if s.photos[id].VisitID == visitID {
			d.Photos = append(d.Photos, *s.photos[id])
		}
	}

	for _, id := range sortedKeys(s.visitCollaborators) {
		c := s.visitCollaborators[id]
		if c.VisitID != visitID {
			continue
		}
		if u := s.users[c.UserID]; u != nil {
			d.Collaborators = append(d.Collaborators, Collaborator{User: *u, IsOwner: c.IsOwner})
		}
	}

	return d
}

// UpdateVisitSummary overwrites the summary. No history is kept.
func (s *Store) UpdateVisitSummary(visitID int, summary string, userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.visits[visitID]
	if v == nil || s.visitCollabLocked(visitID, userID) == nil {
		return false
	}

	v.Summary = &summary
	return true
}

// CreateNote hard-fails, unlike the read paths: callers distinguish
// "nothing to show" from an invalid write attempt.
func (s *Store) CreateNote(p CreateNoteParams, authorID int) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visits[p.VisitID] == nil {
		return nil, apperror.ErrNotFound
	}
	if s.visitCollabLocked(p.VisitID, authorID) == nil {
		return nil, apperror.ErrForbidden
	}

	now := time.Now()
	s.noteSeq++
	n := &model.Note{
		ID:        s.noteSeq,
		VisitID:   p.VisitID,
		AuthorID:  authorID,
		Content:   p.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes[n.ID] = n

	s.appendActivityLocked(authorID, model.NoteAddedPayload{
		NoteID:  n.ID,
		VisitID: p.VisitID,
	})
	return cloneNote(n), nil
}

// CreatePhoto follows the same hard-fail convention as CreateNote.
func (s *Store) CreatePhoto(p CreatePhotoParams, uploaderID int) (*model.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visits[p.VisitID] == nil {
		return nil, apperror.ErrNotFound
	}
	if s.visitCollabLocked(p.VisitID, uploaderID) == nil {
		return nil, apperror.ErrForbidden
	}

	s.photoSeq++
	photo := &model.Photo{
		ID:         s.photoSeq,
		VisitID:    p.VisitID,
		UploaderID: uploaderID,
		URL:        p.URL,
		CreatedAt:  time.Now(),
	}
	s.photos[photo.ID] = photo
	return clonePhoto(photo), nil
}
