package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"anoa.com/makanlist/internal/dto"
	"anoa.com/makanlist/internal/places"
	"anoa.com/makanlist/internal/store"
	"anoa.com/makanlist/pkg/apperror"
)

type RestaurantService interface {
	AddRestaurant(ctx context.Context, userID int, input dto.CreateRestaurantInput) (*dto.CreateRestaurantResponse, error)
	RemoveFromList(userID, listID, restaurantID int) error
}

type restaurantService struct {
	store  *store.Store
	lookup places.Lookup
	search SearchService
}

func NewRestaurantService(st *store.Store, lookup places.Lookup, search SearchService) RestaurantService {
	return &restaurantService{
		store:  st,
		lookup: lookup,
		search: search,
	}
}

// AddRestaurant resolves the place, dedupes by place id and drops the
// restaurant into the requested list, or the user's default list when
// no list was given.
func (s *restaurantService) AddRestaurant(ctx context.Context, userID int, input dto.CreateRestaurantInput) (*dto.CreateRestaurantResponse, error) {
	params := store.CreateRestaurantParams{
		Name:       input.Name,
		PlaceID:    input.PlaceID,
		Address:    input.Address,
		Cuisine:    input.Cuisine,
		PriceLevel: input.PriceLevel,
		Rating:     input.Rating,
		PhotoURL:   input.PhotoURL,
	}

	// Fill missing fields from the place lookup when one is configured.
	if s.lookup != nil && input.Name == "" {
		place, err := s.lookup.FindPlace(ctx, input.PlaceID)
		if err != nil {
			if errors.Is(err, places.ErrPlaceNotFound) {
				return nil, apperror.ErrNotFound
			}
			return nil, err
		}
		params.Name = place.Name
		params.Address = place.Address
		params.Cuisine = place.Cuisine
		params.PriceLevel = place.PriceLevel
		params.Rating = place.Rating
		params.PhotoURL = place.PhotoURL
	}

	if params.Name == "" {
		return nil, apperror.New(400, "nama restoran wajib diisi", apperror.ErrInvalidInput)
	}

	restaurant := s.store.CreateOrGetRestaurant(params)

	listID := 0
	if input.ListID != nil {
		listID = *input.ListID
	} else {
		listID = s.defaultListID(userID)
		if listID == 0 {
			return nil, apperror.ErrNotFound
		}
	}

	entry := s.store.AddRestaurantToList(listID, restaurant.ID, userID)
	if entry == nil {
		return nil, apperror.ErrNotFound
	}

	if err := s.search.IndexRestaurant(restaurant); err != nil {
		zap.L().Warn("failed to index restaurant", zap.Int("id", restaurant.ID), zap.Error(err))
	}

	return &dto.CreateRestaurantResponse{
		Restaurant: restaurant,
		Entry:      entry,
	}, nil
}

func (s *restaurantService) RemoveFromList(userID, listID, restaurantID int) error {
	if !s.store.RemoveRestaurantFromList(listID, restaurantID, userID) {
		return apperror.ErrNotFound
	}

	// Drop the search document once the restaurant is no longer pinned
	// to any of the user's lists.
	if s.store.GetRestaurantDetails(restaurantID, userID) == nil {
		if err := s.search.DeleteRestaurant(restaurantID); err != nil {
			zap.L().Warn("failed to delete restaurant from index", zap.Int("id", restaurantID), zap.Error(err))
		}
	}
	return nil
}

func (s *restaurantService) defaultListID(userID int) int {
	for _, l := range s.store.GetListsByUser(userID) {
		if l.Title == store.DefaultListTitle {
			return l.ID
		}
	}
	return 0
}
