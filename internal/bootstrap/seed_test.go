package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anoa.com/makanlist/internal/store"
)

func TestSeedDemoUsersIdempotent(t *testing.T) {
	st := store.New()

	require.NoError(t, SeedDemoUsers(st, "password123"))

	budi := st.GetUserByUsername("budi")
	require.NotNil(t, budi)
	require.NotNil(t, st.GetUserByUsername("sari"))
	require.NotNil(t, st.GetUserByUsername("agus"))

	// The demo accounts know each other.
	assert.Len(t, st.GetFriends(budi.ID), 2)

	// Budi carries sample restaurants and a logged visit.
	restaurants := st.GetRestaurantsByUser(budi.ID)
	assert.NotEmpty(t, restaurants)
	assert.Positive(t, st.GetUserStats(budi.ID).VisitCount)

	// Running again changes nothing.
	before := len(st.Users())
	require.NoError(t, SeedDemoUsers(st, "password123"))
	assert.Len(t, st.Users(), before)
	assert.Len(t, st.GetFriends(budi.ID), 2)
}

func TestBefriendDemoUsers(t *testing.T) {
	st := store.New()
	require.NoError(t, SeedDemoUsers(st, ""))

	user, err := st.CreateUser(store.CreateUserParams{Username: "dina", DisplayName: "Dina", Email: "dina@example.com"})
	require.NoError(t, err)

	BefriendDemoUsers(st, user.ID)
	assert.Len(t, st.GetFriends(user.ID), 3)

	// Calling twice does not duplicate friendships.
	BefriendDemoUsers(st, user.ID)
	assert.Len(t, st.GetFriends(user.ID), 3)
}
