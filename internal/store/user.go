package store

import (
	"strings"
	"time"

	"anoa.com/makanlist/internal/model"
	"anoa.com/makanlist/pkg/apperror"
)

const searchLimit = 10

type CreateUserParams struct {
	Username     string
	DisplayName  string
	Email        string
	PasswordHash *string
	AvatarURL    *string
	ExternalID   *string
}

// CreateUser inserts a new user and provisions their default list.
// Returns apperror.ErrConflict when the username or external-auth
// identifier is already taken.
func (s *Store) CreateUser(p CreateUserParams) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == p.Username {
			return nil, apperror.ErrConflict
		}
		if p.ExternalID != nil && u.ExternalID != nil && *u.ExternalID == *p.ExternalID {
			return nil, apperror.ErrConflict
		}
	}

	s.userSeq++
	u := &model.User{
		ID:           s.userSeq,
		Username:     p.Username,
		DisplayName:  p.DisplayName,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		AvatarURL:    p.AvatarURL,
		ExternalID:   p.ExternalID,
		CreatedAt:    time.Now(),
	}
	s.users[u.ID] = u

	// The account is only usable with its default list in place, so the
	// two inserts happen under the same lock hold.
	s.createListLocked(DefaultListTitle, nil, nil, u.ID)

	return cloneUser(u), nil
}

func (s *Store) GetUserByID(id int) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return cloneUser(u)
}

func (s *Store) GetUserByUsername(username string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.users) {
		if s.users[id].Username == username {
			return cloneUser(s.users[id])
		}
	}
	return nil
}

func (s *Store) GetUserByExternalID(externalID string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.users) {
		u := s.users[id]
		if u.ExternalID != nil && *u.ExternalID == externalID {
			return cloneUser(u)
		}
	}
	return nil
}

// SearchUsers matches the query case-insensitively against username,
// display name and email. Queries shorter than two characters return
// nothing; the requesting user is excluded; at most ten results.
func (s *Store) SearchUsers(query string, excludingUserID int) []*model.User {
	results := []*model.User{}

	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 2 {
		return results
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.users) {
		u := s.users[id]
		if u.ID == excludingUserID {
			continue
		}
		if strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.DisplayName), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			results = append(results, cloneUser(u))
			if len(results) == searchLimit {
				break
			}
		}
	}
	return results
}

// Users returns every user ordered by id. Supports the suggestion
// agent and dev seeding; not part of the request-facing surface.
func (s *Store) Users() []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.User, 0, len(s.users))
	for _, id := range sortedKeys(s.users) {
		out = append(out, cloneUser(s.users[id]))
	}
	return out
}
