package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrGetRestaurantDedupesByPlaceID(t *testing.T) {
	s := New()

	first := s.CreateOrGetRestaurant(CreateRestaurantParams{Name: "Warung Tekko", PlaceID: "place-1"})
	require.NotNil(t, first)

	// Second call with the same place id returns the original row; the
	// differing name is ignored.
	second := s.CreateOrGetRestaurant(CreateRestaurantParams{Name: "Different Name", PlaceID: "place-1"})
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Warung Tekko", second.Name)

	other := s.CreateOrGetRestaurant(CreateRestaurantParams{Name: "Bakmi GM", PlaceID: "place-2"})
	assert.NotEqual(t, first.ID, other.ID)
}

func TestAddRestaurantToListPositions(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	list := defaultListOf(t, s, alice.ID)

	r1 := s.CreateOrGetRestaurant(CreateRestaurantParams{Name: "A", PlaceID: "p1"})
	r2 := s.CreateOrGetRestaurant(CreateRestaurantParams{Name: "B", PlaceID: "p2"})

	e1 := s.AddRestaurantToList(list.ID, r1.ID, alice.ID)
	e2 := s.AddRestaurantToList(list.ID, r2.ID, alice.ID)
	require.NotNil(t, e1)
	require.NotNil(t, e2)
	assert.Equal(t, 0, e1.Position)
	assert.Equal(t, 1, e2.Position)

	// Duplicate pair returns the existing entry untouched.
	again := s.AddRestaurantToList(list.ID, r1.ID, alice.ID)
	require.NotNil(t, again)
	assert.Equal(t, e1.ID, again.ID)
	assert.Equal(t, 0, again.Position)
}

func TestAddRestaurantToListRequiresCollaborator(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")
	list := defaultListOf(t, s, alice.ID)

	r := s.CreateOrGetRestaurant(CreateRestaurantParams{Name: "A", PlaceID: "p1"})
	assert.Nil(t, s.AddRestaurantToList(list.ID, r.ID, bob.ID))
	assert.Nil(t, s.AddRestaurantToList(999, r.ID, alice.ID))
	assert.Nil(t, s.AddRestaurantToList(list.ID, 999, alice.ID))
}

func TestRemoveRestaurantDoesNotRenumber(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	list := defaultListOf(t, s, alice.ID)

	r1 := addRestaurant(t, s, "A", "p1", list.ID, alice.ID)
	r2 := addRestaurant(t, s, "B", "p2", list.ID, alice.ID)
	r3 := addRestaurant(t, s, "C", "p3", list.ID, alice.ID)

	require.True(t, s.RemoveRestaurantFromList(list.ID, r2.ID, alice.ID))

	// Positions keep their gap; ordering is still by position.
	got := s.GetRestaurantsByList(list.ID, alice.ID)
	require.Len(t, got, 2)
	assert.Equal(t, r1.ID, got[0].ID)
	assert.Equal(t, r3.ID, got[1].ID)

	// A new append lands after the gap.
	r4 := addRestaurant(t, s, "D", "p4", list.ID, alice.ID)
	got = s.GetRestaurantsByList(list.ID, alice.ID)
	require.Len(t, got, 3)
	assert.Equal(t, r4.ID, got[2].ID)

	assert.False(t, s.RemoveRestaurantFromList(list.ID, r2.ID, alice.ID))
}

func TestReorderRestaurants(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	list := defaultListOf(t, s, alice.ID)

	r1 := addRestaurant(t, s, "A", "p1", list.ID, alice.ID)
	r2 := addRestaurant(t, s, "B", "p2", list.ID, alice.ID)
	r3 := addRestaurant(t, s, "C", "p3", list.ID, alice.ID)

	require.True(t, s.ReorderRestaurantsInList(list.ID, []int{r3.ID, r1.ID, r2.ID}, alice.ID))

	got := s.GetRestaurantsByList(list.ID, alice.ID)
	require.Len(t, got, 3)
	assert.Equal(t, r3.ID, got[0].ID)
	assert.Equal(t, r1.ID, got[1].ID)
	assert.Equal(t, r2.ID, got[2].ID)
}

func TestReorderRestaurantsRejectsBadPermutations(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")
	list := defaultListOf(t, s, alice.ID)

	r1 := addRestaurant(t, s, "A", "p1", list.ID, alice.ID)
	r2 := addRestaurant(t, s, "B", "p2", list.ID, alice.ID)

	// Wrong length, duplicate id, unknown id, non-collaborator.
	assert.False(t, s.ReorderRestaurantsInList(list.ID, []int{r1.ID}, alice.ID))
	assert.False(t, s.ReorderRestaurantsInList(list.ID, []int{r1.ID, r1.ID}, alice.ID))
	assert.False(t, s.ReorderRestaurantsInList(list.ID, []int{r1.ID, 999}, alice.ID))
	assert.False(t, s.ReorderRestaurantsInList(list.ID, []int{r2.ID, r1.ID}, bob.ID))

	// A rejected reorder leaves the ordering untouched.
	got := s.GetRestaurantsByList(list.ID, alice.ID)
	require.Len(t, got, 2)
	assert.Equal(t, r1.ID, got[0].ID)
	assert.Equal(t, r2.ID, got[1].ID)
}

func TestRestaurantVisibilityIsPerUser(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	bob := newUser(t, s, "bob")
	aliceList := defaultListOf(t, s, alice.ID)

	r := addRestaurant(t, s, "Warung Tekko", "place-tekko", aliceList.ID, alice.ID)

	// Bob has no list containing the restaurant.
	assert.Nil(t, s.GetRestaurantDetails(r.ID, bob.ID))
	assert.Empty(t, s.GetRestaurantsByUser(bob.ID))
	assert.Empty(t, s.GetRestaurantsByList(aliceList.ID, bob.ID))

	// Sharing the list makes it reachable.
	require.True(t, s.ShareList(aliceList.ID, bob.ID, false, alice.ID))
	details := s.GetRestaurantDetails(r.ID, bob.ID)
	require.NotNil(t, details)
	require.Len(t, details.Lists, 1)
	assert.Equal(t, aliceList.ID, details.Lists[0].ID)
}

func TestGetRestaurantsByUserAnnotatesLists(t *testing.T) {
	s := New()
	alice := newUser(t, s, "alice")
	defaultList := defaultListOf(t, s, alice.ID)
	second := s.CreateList(CreateListParams{Title: "Weekend"}, alice.ID)

	r := addRestaurant(t, s, "Warung Tekko", "place-tekko", defaultList.ID, alice.ID)
	require.NotNil(t, s.AddRestaurantToList(second.ID, r.ID, alice.ID))

	out := s.GetRestaurantsByUser(alice.ID)
	require.Len(t, out, 1)
	require.Len(t, out[0].Lists, 2)
	assert.Equal(t, defaultList.ID, out[0].Lists[0].ID)
	assert.Equal(t, second.ID, out[0].Lists[1].ID)
}
