// Package apierr normalizes every failure coming back from the CIPMN backend
// into a single displayable error shape.
//
// The backend signals failure in three distinct ways: a transport-level fault
// (connection refused, DNS, client timeout), a non-2xx HTTP status, and a
// body-level "errors" array that can appear even on HTTP 200. All three
// collapse into one *Error carrying a human-readable Message and a numeric
// StatusCode, so the UI layer never sees a raw transport error or an
// unparsed backend payload.
//
// # Usage
//
//	body, err := io.ReadAll(resp.Body)
//	if err != nil {
//	    return apierr.Transport(err)
//	}
//	if apiErr := apierr.Normalize(resp.StatusCode, body); apiErr != nil {
//	    return apiErr
//	}
//
// Normalize is idempotent over response shapes: for any combination of
// status code and body it either returns nil (success) or exactly one
// *Error with a non-empty Message and a defined StatusCode.
package apierr
