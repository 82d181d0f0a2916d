package apierr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Fallback messages shown when the backend provides nothing usable.
const (
	unknownMessage   = "Unknown error"
	transportMessage = "Something went wrong"
)

// Error is the normalized failure shape surfaced to callers. Message is
// always suitable for direct display (toast/banner); StatusCode is the
// backend-embedded error code when present, the HTTP status otherwise.
type Error struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("apierr: %s (status %d)", e.Message, e.StatusCode)
}

// Unwrap exposes the underlying cause, if any, for logging. The cause is
// never part of the displayable message.
func (e *Error) Unwrap() error { return e.cause }

// New creates a normalized error. An empty message falls back to the
// generic unknown-error text and a zero status code falls back to 500, so
// the invariant "non-empty message, defined code" holds for any input.
func New(message string, statusCode int) *Error {
	if message == "" {
		message = unknownMessage
	}
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return &Error{Message: message, StatusCode: statusCode}
}

// Transport wraps a transport-level fault (network unreachable, DNS,
// client-side timeout). The raw error is kept as the cause but the
// displayable message is always the generic one.
func Transport(err error) *Error {
	return &Error{
		Message:    transportMessage,
		StatusCode: http.StatusInternalServerError,
		cause:      err,
	}
}

// formattedError is the backend's soft-error element:
// {"message": "...", "extensions": {"code": 400}}.
type formattedError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code int `json:"code"`
	} `json:"extensions"`
}

// responseBody covers both backend failure conventions: the errors array
// and the plain message field used by the auth endpoints.
type responseBody struct {
	Errors  []formattedError `json:"errors"`
	Message string           `json:"message"`
	Error   string           `json:"error"`
}

// Normalize inspects an HTTP status and raw body and returns the
// normalized error, or nil when the response is a success. The body-level
// errors array wins over the HTTP status: it marks a failure even on 200.
func Normalize(statusCode int, body []byte) *Error {
	var parsed responseBody
	jsonOK := json.Unmarshal(body, &parsed) == nil

	if jsonOK && len(parsed.Errors) > 0 {
		return fromErrors(parsed.Errors, statusCode)
	}

	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	msg := ""
	if jsonOK {
		msg = parsed.Message
		if msg == "" {
			msg = parsed.Error
		}
	}
	return New(msg, statusCode)
}

// fromErrors builds the normalized error from the backend's errors array.
// Messages are joined by a space; the code comes from the first error's
// extensions, then the HTTP status, then 500.
func fromErrors(errs []formattedError, statusCode int) *Error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Message != "" {
			msgs = append(msgs, e.Message)
		}
	}

	code := errs[0].Extensions.Code
	if code == 0 {
		code = statusCode
	}
	return New(strings.Join(msgs, " "), code)
}

// From extracts a normalized *Error from an arbitrary error, or wraps it
// as a transport fault when it is anything else.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	return Transport(err)
}
