package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anoa.com/makanlist/internal/model"
)

// Walks the main product flow end to end: two users become friends,
// share a list, track restaurants, log a visit together and exchange
// notes, then read their feeds.
func TestTwoUserScenario(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")

	require.True(t, s.SendFriendRequest(alice.ID, bob.ID))
	require.True(t, s.AcceptFriendRequest(bob.ID, alice.ID))

	ramen := s.CreateList(CreateListParams{Title: "Ramen Tour"}, alice.ID)
	require.NotNil(t, ramen)
	require.True(t, s.ShareList(ramen.ID, bob.ID, false, alice.ID))

	ichiran := addRestaurant(t, s, "Ichiran", "place-ichiran", ramen.ID, alice.ID)
	gion := addRestaurant(t, s, "Gion Ramen", "place-gion", ramen.ID, bob.ID)

	// Bob, as a collaborator, sees both entries in order.
	got := s.GetRestaurantsByList(ramen.ID, bob.ID)
	require.Len(t, got, 2)
	assert.Equal(t, ichiran.ID, got[0].ID)
	assert.Equal(t, gion.ID, got[1].ID)

	require.True(t, s.ReorderRestaurantsInList(ramen.ID, []int{gion.ID, ichiran.ID}, bob.ID))

	visit := s.CreateVisit(CreateVisitParams{RestaurantID: gion.ID, Date: visitDate()}, alice.ID, []int{bob.ID})
	require.NotNil(t, visit)
	_, err := s.CreateNote(CreateNoteParams{VisitID: visit.ID, Content: "Kuahnya gurih"}, bob.ID)
	require.NoError(t, err)

	details := s.GetVisitDetails(visit.ID, alice.ID)
	require.NotNil(t, details)
	require.Len(t, details.Notes, 1)
	assert.Equal(t, "bob", details.Notes[0].AuthorName)

	// Both feeds carry the shared history; each actor additionally sees
	// their own friend request event.
	bobTypes := activityTypes(s.GetActivityFeed(bob.ID))
	assert.Contains(t, bobTypes, model.ActivityListShared)
	assert.Contains(t, bobTypes, model.ActivityRestaurantAdded)
	assert.Contains(t, bobTypes, model.ActivityVisitAdded)
	assert.Contains(t, bobTypes, model.ActivityNoteAdded)
	assert.Contains(t, bobTypes, model.ActivityFriendRequestAccepted)

	aliceTypes := activityTypes(s.GetActivityFeed(alice.ID))
	assert.Contains(t, aliceTypes, model.ActivityFriendRequestSent)
	assert.Contains(t, aliceTypes, model.ActivityNoteAdded)

	assert.Equal(t, 2, s.GetUserStats(alice.ID).RestaurantCount)
	require.Len(t, s.GetFriends(alice.ID), 1)
}
