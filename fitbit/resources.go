package fitbit

import (
	"context"
	"fmt"
	"net/http"
)

// collectionDef describes one entry of the collection resource table:
// the API path segment behind the resource name and whether individual
// log entries can be deleted.
type collectionDef struct {
	path      string
	deletable bool
}

// collections is the fixed table of dated log resources. The deletable
// flag decides which service type gets registered for the resource, so
// a non-deletable resource never grows a Delete method in the first
// place. body is the aggregate measurement resource and keeps no
// per-entry log.
var collections = map[string]collectionDef{
	"body":       {path: "body"},
	"activities": {path: "activities", deletable: true},
	"foods":      {path: "foods/log", deletable: true},
	"water":      {path: "foods/log/water", deletable: true},
	"sleep":      {path: "sleep", deletable: true},
	"heart":      {path: "heart", deletable: true},
	"bp":         {path: "bp", deletable: true},
	"glucose":    {path: "glucose", deletable: true},
}

// collection wires the read/write service for a non-deletable table
// entry. The panics fire only on a mismatch between the table and the
// registration code in NewClient, never on user input.
func (c *Client) collection(name string) *CollectionService {
	def, ok := collections[name]
	if !ok || def.deletable {
		panic(fmt.Sprintf("fitbit: %q is not a non-deletable collection resource", name))
	}
	return &CollectionService{client: c, path: def.path}
}

// deletableCollection wires the full service for a deletable table entry.
func (c *Client) deletableCollection(name string) *DeletableCollectionService {
	def, ok := collections[name]
	if !ok || !def.deletable {
		panic(fmt.Sprintf("fitbit: %q is not a deletable collection resource", name))
	}
	return &DeletableCollectionService{CollectionService{client: c, path: def.path}}
}

// CollectionService provides the dated-log operations shared by every
// collection resource.
type CollectionService struct {
	client *Client
	path   string
}

// DeletableCollectionService adds log deletion on top of the shared
// collection operations, for resources whose entries can be removed.
type DeletableCollectionService struct {
	CollectionService
}

// Get fetches the resource's log for a single day. A zero date means
// today; an empty userID means the authenticated user.
func (s *CollectionService) Get(ctx context.Context, userID string, date Date) (any, error) {
	url, _ := s.client.collectionURL(s.path, userID, date, nil)
	return s.client.makeRequest(ctx, url, nil, http.MethodGet, nil)
}

// Log records an entry for a single day. The payload is sent
// form-encoded with the normalized date under the "date" field.
func (s *CollectionService) Log(ctx context.Context, userID string, date Date, data map[string]any) (any, error) {
	url, payload := s.client.collectionURL(s.path, userID, date, data)
	return s.client.makeRequest(ctx, url, payload, http.MethodPost, nil)
}

// TimeSeries fetches a range of values starting at baseDate. Exactly
// one of period and endDate must be set: a Period covers a relative
// window back from the base date, a non-zero endDate an explicit range.
// Supplying both fails with *InvalidArgumentsError and an unknown
// period with *InvalidPeriodError, in both cases before any request is
// made.
func (s *CollectionService) TimeSeries(ctx context.Context, userID string, baseDate Date, period Period, endDate Date) (any, error) {
	url, err := s.client.timeSeriesURL(s.path, userID, baseDate, period, endDate)
	if err != nil {
		return nil, err
	}
	return s.client.makeRequest(ctx, url, nil, http.MethodGet, nil)
}

// Delete removes a single log entry of the authenticated user.
func (s *DeletableCollectionService) Delete(ctx context.Context, logID string) error {
	url := s.client.deleteCollectionURL(s.path, logID)
	_, err := s.client.makeRequest(ctx, url, nil, http.MethodDelete, nil)
	return err
}
