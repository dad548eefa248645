// Package store is the in-process relational store behind the API.
// All entities live in id-keyed maps owned by Store; nothing outside
// this package touches the tables directly, so access control,
// referential integrity and ordering are enforced in one place.
//
// Two error conventions coexist on purpose. Reads and most writes
// soft-fail (nil / false / empty) without distinguishing "not found"
// from "not authorized", so callers cannot probe for resources they
// cannot see. CreateNote and CreatePhoto hard-fail with an error
// because their callers branch on the reason.
package store

import (
	"sort"
	"sync"

	"anoa.com/makanlist/internal/model"
)

// DefaultListTitle is the list every new account starts with.
// Restaurant creation without an explicit target list lands here.
const DefaultListTitle = "My Restaurants"

// feedLimit caps GetActivityFeed results.
const feedLimit = 20

// Store holds every table and a single lock serializing all access.
// Compound operations (compute next position, then insert) are not
// atomic without it.
type Store struct {
	mu sync.RWMutex

	users              map[int]*model.User
	friendships        map[int]*model.Friendship
	lists              map[int]*model.List
	listCollaborators  map[int]*model.ListCollaborator
	restaurants        map[int]*model.Restaurant
	listEntries        map[int]*model.RestaurantInList
	visits             map[int]*model.Visit
	visitCollaborators map[int]*model.VisitCollaborator
	notes              map[int]*model.Note
	photos             map[int]*model.Photo
	activities         map[int]*model.Activity

	userSeq        int
	friendshipSeq  int
	listSeq        int
	listCollabSeq  int
	restaurantSeq  int
	entrySeq       int
	visitSeq       int
	visitCollabSeq int
	noteSeq        int
	photoSeq       int
	activitySeq    int

	// sink receives a copy of every activity appended to the log.
	// Invoked with the store lock held: the sink must not call back
	// into the store.
	sink func(*model.Activity)
}

func New() *Store {
	return &Store{
		users:              make(map[int]*model.User),
		friendships:        make(map[int]*model.Friendship),
		lists:              make(map[int]*model.List),
		listCollaborators:  make(map[int]*model.ListCollaborator),
		restaurants:        make(map[int]*model.Restaurant),
		listEntries:        make(map[int]*model.RestaurantInList),
		visits:             make(map[int]*model.Visit),
		visitCollaborators: make(map[int]*model.VisitCollaborator),
		notes:              make(map[int]*model.Note),
		photos:             make(map[int]*model.Photo),
		activities:         make(map[int]*model.Activity),
	}
}

// SetActivitySink registers the fan-out hook for newly logged
// activities. Pass nil to disable.
func (s *Store) SetActivitySink(fn func(*model.Activity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = fn
}

// Collaborator is a user plus their ownership flag on a list or visit.
type Collaborator struct {
	model.User
	IsOwner bool `json:"is_owner"`
}

// ListDetails is a list enriched with its collaborators and the number
// of restaurants it holds.
type ListDetails struct {
	model.List
	Collaborators   []Collaborator `json:"collaborators"`
	RestaurantCount int            `json:"restaurant_count"`
}

// RestaurantDetails is a restaurant annotated with the subset of lists
// the requesting user can see. Visibility is always computed relative
// to the caller, never globally.
type RestaurantDetails struct {
	model.Restaurant
	Lists []model.List `json:"lists"`
}

// NoteWithAuthor carries the author's display name and avatar next to
// the note itself.
type NoteWithAuthor struct {
	model.Note
	AuthorName   string  `json:"author_name"`
	AuthorAvatar *string `json:"author_avatar,omitempty"`
}

// VisitDetails is a visit enriched with notes, photos and collaborators.
type VisitDetails struct {
	model.Visit
	Notes         []NoteWithAuthor `json:"notes"`
	Photos        []model.Photo    `json:"photos"`
	Collaborators []Collaborator   `json:"collaborators"`
}

// FriendRequest is an incoming pending friendship with requester details.
type FriendRequest struct {
	model.Friendship
	Requester model.User `json:"requester"`
}

// UserStats are the four headline counts shown on a profile.
type UserStats struct {
	ListCount         int `json:"list_count"`
	RestaurantCount   int `json:"restaurant_count"`
	VisitCount        int `json:"visit_count"`
	CollaboratorCount int `json:"collaborator_count"`
}

// sortedKeys returns the map's keys in ascending order. Map iteration
// order is random in Go; every read that reaches callers must be
// deterministic, so all table scans go through this.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// The clone helpers hand callers detached copies so rows cannot be
// mutated behind the store's back. Fields behind pointers are treated
// as immutable once set.

func cloneUser(u *model.User) *model.User {
	c := *u
	return &c
}

func cloneList(l *model.List) *model.List {
	c := *l
	return &c
}

func cloneRestaurant(r *model.Restaurant) *model.Restaurant {
	c := *r
	return &c
}

func cloneEntry(e *model.RestaurantInList) *model.RestaurantInList {
	c := *e
	return &c
}

func cloneVisit(v *model.Visit) *model.Visit {
	c := *v
	return &c
}

func cloneNote(n *model.Note) *model.Note {
	c := *n
	return &c
}

func clonePhoto(p *model.Photo) *model.Photo {
	c := *p
	return &c
}

func cloneActivity(a *model.Activity) *model.Activity {
	c := *a
	return &c
}
