package fitbit

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client used for requests.
// If this is not provided, a default http.Client is used.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithToken sets a static OAuth2 access token for authentication.
// This will automatically set the Authorization: Bearer <token> header
// on all requests. For tokens that need refreshing, use WithTokenSource.
func WithToken(token string) Option {
	return func(client *Client) {
		client.tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	}
}

// WithTokenSource sets the OAuth2 token source used to authenticate
// requests. A source produced by oauth2.Config.TokenSource refreshes
// expired tokens transparently.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(client *Client) {
		client.tokens = ts
	}
}

// WithBaseURL overrides the default Fitbit API base URL.
// This is primarily useful for testing or connecting to a proxy.
func WithBaseURL(url string) Option {
	return func(client *Client) {
		client.baseURL = url
	}
}

// WithAPIVersion overrides the API version segment interpolated into
// every generated URL. The default is "1".
func WithAPIVersion(version string) Option {
	return func(client *Client) {
		client.apiVersion = version
	}
}

// WithSystemLanguage sets the Accept-Language value attached to every
// request. The API uses it to choose the unit system for measurements;
// the default is "en_US".
func WithSystemLanguage(lang string) Option {
	return func(client *Client) {
		client.language = lang
	}
}

// WithMaxRetries sets the maximum number of retries for 429 Too Many Requests
// responses. By default, the client will retry up to 3 times.
func WithMaxRetries(retries int) Option {
	return func(client *Client) {
		client.maxRetries = retries
	}
}

// WithBackoffBase sets the base duration for exponential backoff during retries.
// By default, this is 1 second.
func WithBackoffBase(base time.Duration) Option {
	return func(client *Client) {
		client.backoffBase = base
	}
}

// WithBackoffMax sets the maximum duration for exponential backoff during retries.
// By default, this is 60 seconds.
func WithBackoffMax(max time.Duration) Option {
	return func(client *Client) {
		client.backoffMax = max
	}
}

// WithRateLimiting enables or disables client-side rate limiting.
// This is primarily used for testing and benchmarking.
func WithRateLimiting(enabled bool) Option {
	return func(client *Client) {
		client.rateLimiter.SetAutoLimiting(enabled)
	}
}
