package bootstrap

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"anoa.com/makanlist/internal/model"
	"anoa.com/makanlist/internal/store"
)

type demoUser struct {
	Username    string
	DisplayName string
	Email       string
}

var demoUsers = []demoUser{
	{Username: "budi", DisplayName: "Budi Santoso", Email: "budi@example.com"},
	{Username: "sari", DisplayName: "Sari Rahma", Email: "sari@example.com"},
	{Username: "agus", DisplayName: "Agus Wijaya", Email: "agus@example.com"},
}

// SeedDemoUsers creates a small connected friend graph with sample
// restaurants so a fresh development instance has something to show.
// Idempotent; existing usernames are left alone.
func SeedDemoUsers(st *store.Store, password string) error {
	if password == "" {
		password = "password123"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(hashed)

	created := []*model.User{}
	for _, d := range demoUsers {
		if st.GetUserByUsername(d.Username) != nil {
			continue
		}
		u, err := st.CreateUser(store.CreateUserParams{
			Username:     d.Username,
			DisplayName:  d.DisplayName,
			Email:        d.Email,
			PasswordHash: &hash,
		})
		if err != nil {
			return err
		}
		created = append(created, u)
	}

	// Connect everyone we just created.
	for i := 0; i < len(created); i++ {
		for j := i + 1; j < len(created); j++ {
			if st.SendFriendRequest(created[i].ID, created[j].ID) {
				st.AcceptFriendRequest(created[j].ID, created[i].ID)
			}
		}
	}

	if len(created) > 0 {
		seedSampleData(st, created[0])
	}

	zap.L().Info("seeded demo users", zap.Int("created", len(created)))
	return nil
}

// BefriendDemoUsers connects a user with every demo account. Used in
// development so new signups immediately see a populated feed.
func BefriendDemoUsers(st *store.Store, userID int) {
	for _, d := range demoUsers {
		demo := st.GetUserByUsername(d.Username)
		if demo == nil || demo.ID == userID {
			continue
		}
		if st.SendFriendRequest(userID, demo.ID) {
			st.AcceptFriendRequest(demo.ID, userID)
		}
	}
}

func seedSampleData(st *store.Store, owner *model.User) {
	lists := st.GetListsByUser(owner.ID)
	if len(lists) == 0 {
		return
	}
	defaultList := lists[0]

	samples := []store.CreateRestaurantParams{
		{Name: "Warung Padang Sederhana", PlaceID: "seed-padang", Cuisine: strPtr("Padang")},
		{Name: "Bakmi GM Sabang", PlaceID: "seed-bakmi", Cuisine: strPtr("Chinese")},
		{Name: "Sate Khas Senayan", PlaceID: "seed-sate", Cuisine: strPtr("Indonesian")},
	}

	for _, p := range samples {
		r := st.CreateOrGetRestaurant(p)
		st.AddRestaurantToList(defaultList.ID, r.ID, owner.ID)
	}

	// One logged visit with a note, so the feed and summary flows have
	// material to work with.
	first := st.GetRestaurantsByList(defaultList.ID, owner.ID)
	if len(first) > 0 {
		visit := st.CreateVisit(store.CreateVisitParams{
			RestaurantID: first[0].ID,
			Date:         time.Now().AddDate(0, 0, -7),
			Occasion:     strPtr("Makan siang tim"),
		}, owner.ID, nil)
		if visit != nil {
			_, _ = st.CreateNote(store.CreateNoteParams{
				VisitID: visit.ID,
				Content: "Rendangnya juara, wajib balik lagi.",
			}, owner.ID)
		}
	}
}

func strPtr(s string) *string {
	return &s
}
