package fitbit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	defaultBaseURL    = "https://api.fitbit.com"
	defaultAPIVersion = "1"
	defaultLanguage   = "en_US"
)

// Client is the core Fitbit API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiVersion string
	language   string
	tokens     oauth2.TokenSource

	maxRetries  int
	backoffBase time.Duration
	backoffMax  time.Duration

	rateLimiter *rateLimiter

	// Services used for communicating with the Fitbit API endpoints.
	Body          *CollectionService
	Activities    *ActivitiesService
	Foods         *FoodsService
	Water         *DeletableCollectionService
	Sleep         *DeletableCollectionService
	Heart         *DeletableCollectionService
	BloodPressure *DeletableCollectionService
	Glucose       *DeletableCollectionService
	User          *UserService
}

// NewClient creates a new Fitbit API client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		baseURL:     defaultBaseURL,
		apiVersion:  defaultAPIVersion,
		language:    defaultLanguage,
		maxRetries:  3,
		backoffBase: 1 * time.Second,
		backoffMax:  60 * time.Second,
		rateLimiter: newRateLimiter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Body = c.collection("body")
	c.Activities = &ActivitiesService{c.deletableCollection("activities")}
	c.Foods = &FoodsService{c.deletableCollection("foods")}
	c.Water = c.deletableCollection("water")
	c.Sleep = c.deletableCollection("sleep")
	c.Heart = c.deletableCollection("heart")
	c.BloodPressure = c.deletableCollection("bp")
	c.Glucose = c.deletableCollection("glucose")
	c.User = &UserService{client: c}

	return c
}

// makeRequest is the single transport entry point used by every service
// method: it builds the HTTP request, executes it, and interprets the
// (status, body) pair into a decoded value, a boolean acknowledgement,
// or a classified error.
//
// A non-nil data is form-encoded as the request body; nil data means a
// bodiless request. Custom headers are applied over the standard set, so
// an explicit caller Accept-Language overrides the configured system
// language.
func (c *Client) makeRequest(ctx context.Context, url string, data map[string]any, method string, headers map[string]string) (any, error) {
	var body io.Reader
	if data != nil {
		body = strings.NewReader(encodeForm(data).Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request for %s: %w", method, url, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return interpretResponse(method, resp.StatusCode, raw, url)
}

// do executes an HTTP request with context, authentication, the system
// language header, rate limiting, and automatic retries on 429 Too Many
// Requests. Unlike the status interpretation layer it never judges the
// response: any response that arrives is handed back for classification.
func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	// Ensure the request has the provided context attached.
	req = req.WithContext(ctx)

	// Inject authentication header if a token source is configured.
	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("fetch access token: %w", err)
		}
		tok.SetAuthHeader(req)
	}

	// Set standard headers. The system language ships on every request;
	// caller-supplied values take precedence.
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if req.Header.Get("Accept-Language") == "" {
		req.Header.Set("Accept-Language", c.language)
	}
	if req.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	var resp *http.Response
	var err error
	var attempt int

	for {
		// Enforce local rate limit before executing request.
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("local rate limit wait interrupted: %w", err)
		}

		// Execute HTTP request.
		resp, err = c.httpClient.Do(req)
		if err != nil {
			// If context is canceled or deadline exceeded, return immediately.
			if ctx.Err() != nil {
				return nil, fmt.Errorf("request aborted by context: %w", ctx.Err())
			}
			return nil, fmt.Errorf("http execute request failed: %w", err)
		}

		// Anything other than 429 goes straight to classification.
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= c.maxRetries {
			break
		}

		// Drain body to reuse connection
		_, _ = io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		// Bodied requests need a fresh body reader for the retry.
		if req.GetBody != nil {
			if req.Body, err = req.GetBody(); err != nil {
				return nil, fmt.Errorf("rewind request body for retry: %w", err)
			}
		}

		backoff := calculateBackoff(attempt, c.backoffBase, c.backoffMax)

		select {
		case <-time.After(backoff):
			// Proceed to retry
			attempt++
		case <-ctx.Done():
			// Context canceled during backoff
			return nil, fmt.Errorf("context canceled during rate limit backoff: %w", ctx.Err())
		}
	}

	return resp, nil
}
