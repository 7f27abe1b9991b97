// Package fitbit provides a Go client for the Fitbit Web API.
//
// The client handles OAuth2 bearer authentication (via golang.org/x/oauth2
// token sources), request construction for the dated collection resources
// (body, activities, foods, water, sleep, heart, bp, glucose), time-series
// queries, client-side rate limiting (150 req/hour via token bucket), and
// automatic retries with exponential backoff on 429 responses.
//
// # Quick Start
//
//	client := fitbit.NewClient(
//	    fitbit.WithToken("your_oauth2_token"),
//	)
//
//	weight, err := client.Body.Get(ctx, "", fitbit.Date{})
//
// # Collections
//
// Every collection resource shares the same dated-log operations. A zero
// fitbit.Date means "today" and an empty user ID means the authenticated
// user:
//
//	water, _ := client.Water.Get(ctx, "", fitbit.NewDate(2024, time.March, 1))
//	_, _ = client.Water.Log(ctx, "", fitbit.Date{}, map[string]any{"amount": 500})
//	_ = client.Water.Delete(ctx, "12345")
//
// The aggregate body resource keeps no per-entry log, so client.Body has
// no Delete method.
//
// # Time series
//
// Ranged reads take either a relative period or an explicit end date,
// never both:
//
//	series, err := client.Body.TimeSeries(ctx, "", base, fitbit.Period30Days, fitbit.Date{})
package fitbit
