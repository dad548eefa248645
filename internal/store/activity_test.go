package store

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anoa.com/makanlist/internal/model"
)

func TestActivityFeedRelevance(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")
	carol := newUser(t, s, "carol")

	aliceList := defaultListOf(t, s, alice.ID)
	require.True(t, s.ShareList(aliceList.ID, bob.ID, false, alice.ID))

	r := addRestaurant(t, s, "Warung Tekko", "place-tekko", aliceList.ID, alice.ID)
	visit := s.CreateVisit(CreateVisitParams{RestaurantID: r.ID, Date: visitDate()}, alice.ID, []int{bob.ID})
	require.NotNil(t, visit)
	_, err := s.CreateNote(CreateNoteParams{VisitID: visit.ID, Content: "Enak"}, alice.ID)
	require.NoError(t, err)

	// Bob shares the list and collaborates on the visit, so he sees the
	// share, the restaurant and both visit events.
	bobFeed := s.GetActivityFeed(bob.ID)
	bobTypes := activityTypes(bobFeed)
	assert.Contains(t, bobTypes, model.ActivityListShared)
	assert.Contains(t, bobTypes, model.ActivityRestaurantAdded)
	assert.Contains(t, bobTypes, model.ActivityVisitAdded)
	assert.Contains(t, bobTypes, model.ActivityNoteAdded)

	// Carol is unrelated and sees nothing.
	assert.Empty(t, s.GetActivityFeed(carol.ID))
}

func TestActivityFeedActorAlwaysSeesOwn(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")

	require.True(t, s.SendFriendRequest(alice.ID, bob.ID))

	// Friend request events are visible to the actor only.
	aliceTypes := activityTypes(s.GetActivityFeed(alice.ID))
	assert.Contains(t, aliceTypes, model.ActivityFriendRequestSent)
	assert.NotContains(t, activityTypes(s.GetActivityFeed(bob.ID)), model.ActivityFriendRequestSent)

	require.True(t, s.AcceptFriendRequest(bob.ID, alice.ID))
	assert.Contains(t, activityTypes(s.GetActivityFeed(bob.ID)), model.ActivityFriendRequestAccepted)
	assert.NotContains(t, activityTypes(s.GetActivityFeed(alice.ID)), model.ActivityFriendRequestAccepted)
}

func TestAISuggestionVisibleToActorOnly(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")

	aliceList := defaultListOf(t, s, alice.ID)
	require.True(t, s.ShareList(aliceList.ID, bob.ID, false, alice.ID))

	require.NotNil(t, s.CreateActivity(alice.ID, model.AISuggestionPayload{Suggestion: "Coba Warung Tekko lagi"}))

	assert.Contains(t, activityTypes(s.GetActivityFeed(alice.ID)), model.ActivityAISuggestion)
	assert.NotContains(t, activityTypes(s.GetActivityFeed(bob.ID)), model.ActivityAISuggestion)
}

func TestCreateActivityValidation(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")

	assert.Nil(t, s.CreateActivity(999, model.AISuggestionPayload{Suggestion: "x"}))
	assert.Nil(t, s.CreateActivity(alice.ID, nil))
	assert.NotNil(t, s.CreateActivity(alice.ID, model.AISummaryPayload{VisitID: 1}))
}

func TestActivityFeedNewestFirstCapped(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	list := defaultListOf(t, s, alice.ID)

	for i := 0; i < 25; i++ {
		addRestaurant(t, s, fmt.Sprintf("Resto %d", i), fmt.Sprintf("place-%d", i), list.ID, alice.ID)
	}

	feed := s.GetActivityFeed(alice.ID)
	require.Len(t, feed, feedLimit)

	// Newest first.
	for i := 1; i < len(feed); i++ {
		assert.Greater(t, feed[i-1].ID, feed[i].ID)
	}
	payload, ok := feed[0].Payload.(model.RestaurantAddedPayload)
	require.True(t, ok)
	assert.Equal(t, "Resto 24", payload.RestaurantName)
}

func TestActivitySinkReceivesEveryAppend(t *testing.T) {
	s := New()
	var got []*model.Activity
	s.SetActivitySink(func(a *model.Activity) { got = append(got, a) })

	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")
	require.True(t, s.SendFriendRequest(alice.ID, bob.ID))
	require.True(t, s.AcceptFriendRequest(bob.ID, alice.ID))

	require.Len(t, got, 2)
	assert.Equal(t, model.ActivityFriendRequestSent, got[0].Type)
	assert.Equal(t, model.ActivityFriendRequestAccepted, got[1].Type)
}

func TestActivityVisibleToSurvivesJSONRoundTrip(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")
	carol := newUser(t, s, "carol")

	aliceList := defaultListOf(t, s, alice.ID)
	require.True(t, s.ShareList(aliceList.ID, bob.ID, false, alice.ID))

	var last *model.Activity
	s.SetActivitySink(func(a *model.Activity) { last = a })
	addRestaurant(t, s, "Warung Tekko", "place-tekko", aliceList.ID, alice.ID)
	require.NotNil(t, last)
	require.Equal(t, model.ActivityRestaurantAdded, last.Type)

	// The fan-out path serializes activities through redis; visibility
	// must hold for the decoded copy too.
	data, err := json.Marshal(last)
	require.NoError(t, err)
	var decoded model.Activity
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.True(t, s.ActivityVisibleTo(alice.ID, &decoded))
	assert.True(t, s.ActivityVisibleTo(bob.ID, &decoded))
	assert.False(t, s.ActivityVisibleTo(carol.ID, &decoded))
	assert.False(t, s.ActivityVisibleTo(alice.ID, nil))
}

func activityTypes(feed []*model.Activity) []model.ActivityType {
	types := make([]model.ActivityType, 0, len(feed))
	for _, a := range feed {
		types = append(types, a.Type)
	}
	return types
}
