package fitbit

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// recordedRequest captures what the mock server saw for one call.
type recordedRequest struct {
	Method string
	Path   string
	Form   url.Values
	Header http.Header
}

// captureServer records every request it receives and answers each one
// with a fixed status and body.
type captureServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

// newCaptureServer starts a captureServer responding with the given
// status and body.
func newCaptureServer(t *testing.T, status int, body string) *captureServer {
	t.Helper()

	cs := &captureServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}

		cs.mu.Lock()
		cs.requests = append(cs.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Form:   r.PostForm,
			Header: r.Header.Clone(),
		})
		cs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(cs.Close)

	return cs
}

// calls returns a snapshot of the recorded requests.
func (cs *captureServer) calls() []recordedRequest {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]recordedRequest, len(cs.requests))
	copy(out, cs.requests)
	return out
}

// last returns the most recent recorded request and fails the test if
// the server was never hit.
func (cs *captureServer) last(t *testing.T) recordedRequest {
	t.Helper()
	calls := cs.calls()
	if len(calls) == 0 {
		t.Fatal("mock server received no requests")
	}
	return calls[len(calls)-1]
}

// newMockClient builds an unauthenticated client connected directly to
// the mock server.
func newMockClient(ts *httptest.Server, opts ...Option) *Client {
	defaultOpts := []Option{
		WithBaseURL(ts.URL),
		// Shorter backoff logic so tests don't permanently stall
		WithMaxRetries(1),
		WithBackoffBase(1),
		WithBackoffMax(1),
	}
	defaultOpts = append(defaultOpts, opts...)
	return NewClient(defaultOpts...)
}
