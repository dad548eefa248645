package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndUpdateList(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")

	desc := "tempat langganan"
	list := s.CreateList(CreateListParams{Title: "Favorit", Description: &desc}, alice.ID)
	require.NotNil(t, list)

	newTitle := "Favorit Banget"
	updated := s.UpdateList(list.ID, alice.ID, UpdateListParams{Title: &newTitle})
	require.NotNil(t, updated)
	assert.Equal(t, "Favorit Banget", updated.Title)
	// Untouched fields survive a partial update.
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
}

func TestUpdateListRequiresOwner(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")

	list := s.CreateList(CreateListParams{Title: "Favorit"}, alice.ID)
	require.True(t, s.ShareList(list.ID, bob.ID, false, alice.ID))

	title := "Hijacked"
	assert.Nil(t, s.UpdateList(list.ID, bob.ID, UpdateListParams{Title: &title}))
	assert.False(t, s.DeleteList(list.ID, bob.ID))

	// Non-owner collaborators still read it.
	assert.NotNil(t, s.GetListDetails(list.ID, bob.ID))
}

func TestShareList(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")
	carol := newUser(t, s, "carol")

	list := s.CreateList(CreateListParams{Title: "Weekend"}, alice.ID)

	t.Run("only owners share", func(t *testing.T) {
		assert.False(t, s.ShareList(list.ID, carol.ID, false, bob.ID))
	})

	t.Run("share grants access", func(t *testing.T) {
		require.True(t, s.ShareList(list.ID, bob.ID, false, alice.ID))

		shared := s.GetSharedLists(bob.ID)
		require.Len(t, shared, 1)
		assert.Equal(t, list.ID, shared[0].ID)

		// Owned lists never show up as shared.
		assert.Empty(t, s.GetSharedLists(alice.ID))
	})

	t.Run("re-share updates ownership flag in place", func(t *testing.T) {
		require.True(t, s.ShareList(list.ID, bob.ID, true, alice.ID))

		details := s.GetListDetails(list.ID, alice.ID)
		require.NotNil(t, details)
		require.Len(t, details.Collaborators, 2)
		for _, c := range details.Collaborators {
			assert.True(t, c.IsOwner)
		}
	})

	t.Run("self share refused", func(t *testing.T) {
		assert.False(t, s.ShareList(list.ID, alice.ID, false, alice.ID))
	})

	t.Run("unknown target refused", func(t *testing.T) {
		assert.False(t, s.ShareList(list.ID, 999, false, alice.ID))
	})
}

func TestDeleteListCascades(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")

	list := s.CreateList(CreateListParams{Title: "Weekend"}, alice.ID)
	require.True(t, s.ShareList(list.ID, bob.ID, false, alice.ID))
	r := addRestaurant(t, s, "Warung Tekko", "place-tekko", list.ID, alice.ID)

	visit := s.CreateVisit(CreateVisitParams{RestaurantID: r.ID, Date: visitDate()}, alice.ID, nil)
	require.NotNil(t, visit)

	require.True(t, s.DeleteList(list.ID, alice.ID))

	assert.Nil(t, s.GetListDetails(list.ID, alice.ID))
	assert.Empty(t, s.GetSharedLists(bob.ID))

	// Visits hang off the restaurant, not the list; they survive.
	details := s.GetVisitDetails(visit.ID, alice.ID)
	require.NotNil(t, details)
	assert.Equal(t, r.ID, details.RestaurantID)
}

func TestGetListsByUserIncludesShared(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")

	list := s.CreateList(CreateListParams{Title: "Weekend"}, alice.ID)
	require.True(t, s.ShareList(list.ID, bob.ID, false, alice.ID))
	addRestaurant(t, s, "Warung Tekko", "place-tekko", list.ID, alice.ID)

	// Default list plus the shared one.
	bobLists := s.GetListsByUser(bob.ID)
	require.Len(t, bobLists, 2)
	assert.Equal(t, 1, bobLists[1].RestaurantCount)
}
