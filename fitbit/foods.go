package fitbit

import (
	"context"
	"net/http"
)

// FoodsService handles the food log plus the favorites, custom foods
// and meals endpoints that hang off it.
type FoodsService struct {
	*DeletableCollectionService
}

// foodLogQualifiers maps each summary view of the food log to its path
// suffix. All three share the usual user-id defaulting.
var foodLogQualifiers = map[string][]string{
	"recent":   {"foods", "log", "recent"},
	"favorite": {"foods", "log", "favorite"},
	"frequent": {"foods", "log", "frequent"},
}

// qualified fetches one of the summary views of the food log.
func (s *FoodsService) qualified(ctx context.Context, userID, qualifier string) (any, error) {
	url := s.client.userURL(userID, foodLogQualifiers[qualifier]...)
	return s.client.makeRequest(ctx, url, nil, http.MethodGet, nil)
}

// Recent lists the foods the user logged most recently.
func (s *FoodsService) Recent(ctx context.Context, userID string) (any, error) {
	return s.qualified(ctx, userID, "recent")
}

// Favorite lists the user's favorite foods.
func (s *FoodsService) Favorite(ctx context.Context, userID string) (any, error) {
	return s.qualified(ctx, userID, "favorite")
}

// Frequent lists the foods the user logs most often.
func (s *FoodsService) Frequent(ctx context.Context, userID string) (any, error) {
	return s.qualified(ctx, userID, "frequent")
}

// AddFavorite marks a food as a favorite of the authenticated user.
func (s *FoodsService) AddFavorite(ctx context.Context, foodID string) (any, error) {
	url := s.client.userURL("", "foods", "log", "favorite", foodID)
	return s.client.makeRequest(ctx, url, nil, http.MethodPost, nil)
}

// DeleteFavorite removes a food from the authenticated user's favorites.
func (s *FoodsService) DeleteFavorite(ctx context.Context, foodID string) error {
	url := s.client.userURL("", "foods", "log", "favorite", foodID)
	_, err := s.client.makeRequest(ctx, url, nil, http.MethodDelete, nil)
	return err
}

// Create registers a new private food for the authenticated user. The
// payload is passed through to the API unchanged.
func (s *FoodsService) Create(ctx context.Context, data map[string]any) (any, error) {
	url := s.client.userURL("", "foods")
	return s.client.makeRequest(ctx, url, data, http.MethodPost, nil)
}

// Meals lists the authenticated user's saved meals.
func (s *FoodsService) Meals(ctx context.Context) (any, error) {
	url := s.client.userURL("", "meals")
	return s.client.makeRequest(ctx, url, nil, http.MethodGet, nil)
}
