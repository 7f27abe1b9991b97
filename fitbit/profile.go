package fitbit

import (
	"context"
	"net/http"
)

// UserService handles communication with the user profile methods.
type UserService struct {
	client *Client
}

// GetProfile fetches a user's profile. An empty userID means the
// authenticated user. The API wraps the response in a "user" object.
func (s *UserService) GetProfile(ctx context.Context, userID string) (any, error) {
	url := s.client.userURL(userID, "profile")
	return s.client.makeRequest(ctx, url, nil, http.MethodGet, nil)
}

// UpdateProfile updates fields of the authenticated user's profile.
// This is not the same shape the GET comes back in: updates take a flat
// field map, reads come back wrapped in a "user" object.
func (s *UserService) UpdateProfile(ctx context.Context, data map[string]any) (any, error) {
	url := s.client.userURL("", "profile")
	return s.client.makeRequest(ctx, url, data, http.MethodPost, nil)
}
