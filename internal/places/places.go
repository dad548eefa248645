package places

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"
)

// Place is the subset of place details the app cares about.
type Place struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Address    *string  `json:"address"`
	Cuisine    *string  `json:"cuisine"`
	PriceLevel *int     `json:"price_level"`
	Rating     *float64 `json:"rating"`
	PhotoURL   *string  `json:"photo_url"`
}

// Lookup resolves a place id to its details.
type Lookup interface {
	FindPlace(ctx context.Context, placeID string) (*Place, error)
}

var ErrPlaceNotFound = errors.New("place not found")

type httpLookup struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPLookup returns a Lookup backed by a places HTTP API. Returns
// nil when baseURL is empty so callers can treat the lookup as
// optional.
func NewHTTPLookup(baseURL, apiKey string) Lookup {
	if baseURL == "" {
		return nil
	}
	return &httpLookup{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *httpLookup) FindPlace(ctx context.Context, placeID string) (*Place, error) {
	u, err := url.Parse(l.baseURL + "/places/" + url.PathEscape(placeID))
	if err != nil {
		return nil, err
	}
	if l.apiKey != "" {
		q := u.Query()
		q.Set("key", l.apiKey)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.New("failed to fetch place details: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPlaceNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("places API returned status " + resp.Status)
	}

	var place Place
	if err := json.NewDecoder(resp.Body).Decode(&place); err != nil {
		return nil, errors.New("failed to decode place details: " + err.Error())
	}
	place.PlaceID = placeID

	return &place, nil
}
