package transport

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by Get when no api key is configured.
var ErrMissingAPIKey = errors.New("API key is required: set it in config or with SetAPIKey")

// RequestError reports a transport failure or an HTTP status >= 400.
// StatusCode is 0 when no response was received.
type RequestError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("request error: %v", e.Err)
	}
	return "request error"
}

func (e *RequestError) Unwrap() error { return e.Err }

// ResponseError reports a response body that is not valid JSON.
type ResponseError struct {
	Err error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v", e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }
