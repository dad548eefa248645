package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"anoa.com/makanlist/internal/model"
)

func newUser(t *testing.T, s *Store, username string) *model.User {
	t.Helper()
	u, err := s.CreateUser(CreateUserParams{
		Username:    username,
		DisplayName: username,
		Email:       username + "@example.com",
	})
	require.NoError(t, err)
	return u
}

func defaultListOf(t *testing.T, s *Store, userID int) *ListDetails {
	t.Helper()
	lists := s.GetListsByUser(userID)
	require.NotEmpty(t, lists)
	require.Equal(t, DefaultListTitle, lists[0].Title)
	return lists[0]
}

func addRestaurant(t *testing.T, s *Store, name, placeID string, listID, userID int) *model.Restaurant {
	t.Helper()
	r := s.CreateOrGetRestaurant(CreateRestaurantParams{Name: name, PlaceID: placeID})
	require.NotNil(t, r)
	require.NotNil(t, s.AddRestaurantToList(listID, r.ID, userID))
	return r
}

func visitDate() time.Time {
	return time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
}
