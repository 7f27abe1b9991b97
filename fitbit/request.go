package fitbit

import (
	"fmt"
	"net/url"
	"strings"
)

// userOrSelf substitutes the authenticated-user sentinel for an empty id.
func userOrSelf(userID string) string {
	if userID == "" {
		return "-"
	}
	return userID
}

// userURL joins path segments under the versioned /user/ prefix and
// appends the .json suffix every endpoint carries.
func (c *Client) userURL(userID string, segments ...string) string {
	parts := append([]string{
		strings.TrimSuffix(c.baseURL, "/"),
		c.apiVersion,
		"user",
		userOrSelf(userID),
	}, segments...)
	return strings.Join(parts, "/") + ".json"
}

// collectionURL builds the URL and payload of a dated collection call.
//
// A nil data produces the read form, which scopes the URL to a single
// day and carries no body. A non-nil data produces the write form: the
// URL drops the date segment and the normalized date is merged into a
// copy of the payload under the "date" key as a Date value, never the
// caller's original string. The returned payload is nil exactly when
// data is nil; downstream that distinction selects GET vs POST.
func (c *Client) collectionURL(resource, userID string, date Date, data map[string]any) (string, map[string]any) {
	day := date.orToday()

	if data == nil {
		return c.userURL(userID, resource, "date", day.String()), nil
	}

	payload := make(map[string]any, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	payload["date"] = day
	return c.userURL(userID, resource), payload
}

// deleteCollectionURL builds the removal URL for a single log entry.
// Deletion is always scoped to the authenticated user.
func (c *Client) deleteCollectionURL(resource, logID string) string {
	return c.userURL("", resource, logID)
}

// timeSeriesURL builds the URL of a ranged read. Exactly one of period
// and endDate selects the range; validation happens here so a bad call
// never reaches the network.
func (c *Client) timeSeriesURL(resource, userID string, baseDate Date, period Period, endDate Date) (string, error) {
	if period != "" && !endDate.IsZero() {
		return "", &InvalidArgumentsError{Message: "period and end date are mutually exclusive"}
	}

	var last string
	if !endDate.IsZero() {
		last = endDate.String()
	} else {
		if !period.Valid() {
			return "", &InvalidPeriodError{Period: period}
		}
		last = string(period)
	}

	return c.userURL(userID, resource, "date", baseDate.orToday().String(), last), nil
}

// encodeForm renders a payload as form values. Date values keep their
// canonical YYYY-MM-DD form; everything else goes through fmt.
func encodeForm(data map[string]any) url.Values {
	form := url.Values{}
	for k, v := range data {
		switch v := v.(type) {
		case Date:
			form.Set(k, v.String())
		case string:
			form.Set(k, v)
		default:
			form.Set(k, fmt.Sprint(v))
		}
	}
	return form
}
