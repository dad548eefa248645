package service

import (
	"strconv"

	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"

	"anoa.com/makanlist/internal/model"
)

// SearchService keeps the restaurants index in sync with the store.
// All methods are no-ops when the meilisearch client is absent so the
// app keeps working without a search backend.
type SearchService interface {
	IndexRestaurant(r *model.Restaurant) error
	DeleteRestaurant(id int) error
}

type searchService struct {
	client meilisearch.ServiceManager
}

type meiliRestaurantDoc struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Cuisine    string   `json:"cuisine"`
	PriceLevel *int     `json:"price_level"`
	Rating     *float64 `json:"rating"`
	CreatedAt  int64    `json:"created_at"`
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{client: client}
	if client != nil {
		s.initIndexes()
	}
	return s
}

func (s *searchService) initIndexes() {
	filterable := []string{"cuisine", "price_level"}
	filterableInterface := make([]any, len(filterable))
	for i, v := range filterable {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index("restaurants").UpdateFilterableAttributes(&filterableInterface); err != nil {
		zap.L().Warn("failed to set filterable attributes for restaurants index", zap.Error(err))
	}

	sortable := []string{"rating", "created_at"}
	if _, err := s.client.Index("restaurants").UpdateSortableAttributes(&sortable); err != nil {
		zap.L().Warn("failed to set sortable attributes for restaurants index", zap.Error(err))
	}
}

func (s *searchService) IndexRestaurant(r *model.Restaurant) error {
	if s.client == nil {
		return nil
	}

	doc := meiliRestaurantDoc{
		ID:         strconv.Itoa(r.ID),
		Name:       r.Name,
		Address:    getStringOrEmpty(r.Address),
		Cuisine:    getStringOrEmpty(r.Cuisine),
		PriceLevel: r.PriceLevel,
		Rating:     r.Rating,
		CreatedAt:  r.CreatedAt.Unix(),
	}

	task, err := s.client.Index("restaurants").AddDocuments([]meiliRestaurantDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	zap.L().Debug("indexed restaurant", zap.Int("id", r.ID), zap.Int64("task", task.TaskUID))
	return nil
}

func (s *searchService) DeleteRestaurant(id int) error {
	if s.client == nil {
		return nil
	}
	_, err := s.client.Index("restaurants").DeleteDocument(strconv.Itoa(id))
	return err
}

func getStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	return &s
}
