// Package places finds restaurants with the Places API (New).
package places

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"google.golang.org/api/option"
	placesapi "google.golang.org/api/places/v1"
)

var ErrMissingAPIKey = errors.New("places: api key is required")

// Place is the first match of a text search.
type Place struct {
	ID      string
	Name    string
	Address string
	Rating  float64
	MapURL  string
}

// Finder looks up a single place for a free-text query.
type Finder interface {
	// FindRestaurant returns nil without error when nothing matched.
	FindRestaurant(ctx context.Context, food, location string) (*Place, error)
}

type Client struct {
	svc *placesapi.Service
}

var _ Finder = (*Client)(nil)

func New(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	svc, err := placesapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("places: create service: %w", err)
	}
	return &Client{svc: svc}, nil
}

func (c *Client) FindRestaurant(ctx context.Context, food, location string) (*Place, error) {
	query := BuildQuery(food, location)

	resp, err := c.svc.Places.SearchText(&placesapi.GoogleMapsPlacesV1SearchTextRequest{
		TextQuery:      query,
		LanguageCode:   "ko",
		MaxResultCount: 1,
	}).
		Fields("places.id", "places.displayName", "places.formattedAddress", "places.rating", "places.googleMapsUri").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("places: search %q: %w", query, err)
	}

	if len(resp.Places) == 0 {
		return nil, nil
	}

	p := resp.Places[0]
	place := &Place{
		ID:      p.Id,
		Address: p.FormattedAddress,
		Rating:  p.Rating,
		MapURL:  p.GoogleMapsUri,
	}
	if p.DisplayName != nil {
		place.Name = p.DisplayName.Text
	}
	if place.MapURL == "" {
		place.MapURL = MapURL(place.ID, place.Name)
	}
	return place, nil
}

// BuildQuery is the text search sent for a food near a location.
func BuildQuery(food, location string) string {
	return fmt.Sprintf("%s %s 맛집", location, food)
}

// MapURL links to a place on Google Maps.
func MapURL(placeID, name string) string {
	v := url.Values{}
	v.Set("api", "1")
	v.Set("query", name)
	if placeID != "" {
		v.Set("query_place_id", placeID)
	}
	return "https://www.google.com/maps/search/?" + v.Encode()
}
