package fitbit

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// interpretResponse classifies one API response by its status code and
// the method that produced it:
//
//	202, any method    -> true (accepted, nothing to decode)
//	DELETE, 204        -> true
//	DELETE, otherwise  -> *DeleteError
//	200                -> JSON-decoded body
//	204, non-DELETE    -> *DeleteError (the API reserves empty-success
//	                      for deletions; see DeleteError)
//	anything else      -> mapped error carrying status and body
func interpretResponse(method string, statusCode int, body []byte, requestURL string) (any, error) {
	switch {
	case statusCode == http.StatusAccepted:
		return true, nil

	case method == http.MethodDelete:
		if statusCode == http.StatusNoContent {
			return true, nil
		}
		return nil, &DeleteError{
			StatusCode: statusCode,
			Method:     method,
			Body:       string(body),
			URL:        requestURL,
		}

	case statusCode == http.StatusOK:
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("decode response body from %s: %w", requestURL, err)
		}
		return v, nil

	case statusCode == http.StatusNoContent:
		return nil, &DeleteError{
			StatusCode: statusCode,
			Method:     method,
			Body:       string(body),
			URL:        requestURL,
		}

	default:
		return nil, mapStatusError(statusCode, string(body), requestURL)
	}
}
