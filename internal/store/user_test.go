package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anoa.com/makanlist/pkg/apperror"
)

func TestCreateUserProvisionsDefaultList(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")

	lists := s.GetListsByUser(alice.ID)
	require.Len(t, lists, 1)
	assert.Equal(t, DefaultListTitle, lists[0].Title)
	require.Len(t, lists[0].Collaborators, 1)
	assert.True(t, lists[0].Collaborators[0].IsOwner)
	assert.Equal(t, alice.ID, lists[0].Collaborators[0].User.ID)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	s := New()
	newUser(t, s, "alice")

	_, err := s.CreateUser(CreateUserParams{
		Username:    "alice",
		DisplayName: "Alice Again",
		Email:       "alice2@example.com",
	})
	require.ErrorIs(t, err, apperror.ErrConflict)
}

func TestCreateUserDuplicateExternalID(t *testing.T) {
	s := New()
	ext := "google-123"
	_, err := s.CreateUser(CreateUserParams{Username: "alice", DisplayName: "Alice", Email: "a@example.com", ExternalID: &ext})
	require.NoError(t, err)

	_, err = s.CreateUser(CreateUserParams{Username: "bob", DisplayName: "Bob", Email: "b@example.com", ExternalID: &ext})
	require.ErrorIs(t, err, apperror.ErrConflict)
}

func TestGetUserByExternalID(t *testing.T) {
	s := New()
	ext := "google-456"
	created, err := s.CreateUser(CreateUserParams{Username: "carol", DisplayName: "Carol", Email: "c@example.com", ExternalID: &ext})
	require.NoError(t, err)

	found := s.GetUserByExternalID("google-456")
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Nil(t, s.GetUserByExternalID("google-999"))
}

func TestSearchUsers(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	newUser(t, s, "alina")
	bob, err := s.CreateUser(CreateUserParams{Username: "bob", DisplayName: "Bobby Alim", Email: "bob@example.com"})
	require.NoError(t, err)

	t.Run("short query returns nothing", func(t *testing.T) {
		assert.Empty(t, s.SearchUsers("a", alice.ID))
		assert.Empty(t, s.SearchUsers("  a  ", alice.ID))
	})

	t.Run("matches across fields, excludes requester", func(t *testing.T) {
		results := s.SearchUsers("ali", alice.ID)
		require.Len(t, results, 2)
		assert.Equal(t, "alina", results[0].Username)
		assert.Equal(t, bob.ID, results[1].ID) // via display name "Bobby Alim"
	})

	t.Run("case insensitive", func(t *testing.T) {
		results := s.SearchUsers("ALI", alice.ID)
		assert.Len(t, results, 2)
	})

	t.Run("caps at ten results", func(t *testing.T) {
		for i := 0; i < 15; i++ {
			newUser(t, s, fmt.Sprintf("makan-fan-%02d", i))
		}
		assert.Len(t, s.SearchUsers("makan-fan", alice.ID), 10)
	})
}
