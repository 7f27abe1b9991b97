package fitbit

import (
	"context"
	"fmt"
	"net/http"
)

// ActivitiesService adds the activity statistics reads on top of the
// dated activity log.
type ActivitiesService struct {
	*DeletableCollectionService
}

// activityQualifiers is the fixed set of listing views the stats
// endpoint supports.
var activityQualifiers = map[string]bool{
	"recent":   true,
	"favorite": true,
	"frequent": true,
}

// Stats fetches activity statistics for a user. A qualifier of recent,
// favorite or frequent narrows the listing to that view; an empty
// qualifier returns the lifetime statistics. Unknown qualifiers fail
// with *InvalidArgumentsError before any request is made.
func (s *ActivitiesService) Stats(ctx context.Context, userID, qualifier string) (any, error) {
	segments := []string{"activities"}
	if qualifier != "" {
		if !activityQualifiers[qualifier] {
			return nil, &InvalidArgumentsError{
				Message: fmt.Sprintf("unknown activity qualifier %q (valid: recent, favorite, frequent)", qualifier),
			}
		}
		segments = append(segments, qualifier)
	}
	url := s.client.userURL(userID, segments...)
	return s.client.makeRequest(ctx, url, nil, http.MethodGet, nil)
}

// Recent is shorthand for Stats with the recent qualifier.
func (s *ActivitiesService) Recent(ctx context.Context, userID string) (any, error) {
	return s.Stats(ctx, userID, "recent")
}

// Favorite is shorthand for Stats with the favorite qualifier.
func (s *ActivitiesService) Favorite(ctx context.Context, userID string) (any, error) {
	return s.Stats(ctx, userID, "favorite")
}

// Frequent is shorthand for Stats with the frequent qualifier.
func (s *ActivitiesService) Frequent(ctx context.Context, userID string) (any, error) {
	return s.Stats(ctx, userID, "frequent")
}
