package api

import (
	"errors"
	"fmt"
)

// ErrMalformed marks a response body that did not match the expected schema.
var ErrMalformed = errors.New("malformed response")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: HTTP %d", e.Endpoint, e.Code)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.Code, e.Body)
}

// IsStatus reports whether err carries an HTTP status error.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
