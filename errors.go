package scrappa

import (
	"errors"
	"fmt"

	"github.com/loykin/scrappa/internal/transport"
)

// ValidationError is returned before any I/O when a required parameter is
// missing or empty.
type ValidationError struct {
	Param string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("the parameter [%s] is required", e.Param)
}

func missingParameter(name string) error {
	return &ValidationError{Param: name}
}

// RequestError reports a transport failure or an HTTP status >= 400.
type RequestError = transport.RequestError

// ResponseError reports a response body that is not valid JSON.
type ResponseError = transport.ResponseError

// ErrMissingAPIKey is returned when a request is attempted without an api key.
var ErrMissingAPIKey = transport.ErrMissingAPIKey

// IsValidation reports whether err is a ValidationError and returns the
// offending parameter name.
func IsValidation(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Param, true
	}
	return "", false
}

// IsHTTPStatus reports whether err is a RequestError carrying code.
func IsHTTPStatus(err error, code int) bool {
	var re *RequestError
	return errors.As(err, &re) && re.StatusCode == code
}
