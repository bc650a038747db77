package kudu

import (
	"errors"
	"fmt"
)

// errorBodyLimit caps how much of a failed response body is retained on an
// HTTPError.
const errorBodyLimit = 4 << 10

// HTTPError is a non-2xx response from the SCM site. The client attaches no
// meaning to individual status codes (a missing remote file and a rejected
// credential both land here), so callers that care inspect StatusCode
// themselves.
type HTTPError struct {
	StatusCode int
	Status     string
	Method     string
	URL        string
	Body       []byte // response body, truncated to errorBodyLimit
}

func (e *HTTPError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("kudu: %s %s: %s", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("kudu: %s %s: %s: %s", e.Method, e.URL, e.Status, e.Body)
}

// AsHTTPError checks if an error is an *HTTPError and returns it.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// AsInvalidPath checks if an error is an *InvalidPathError and returns it.
func AsInvalidPath(err error) (*InvalidPathError, bool) {
	var pe *InvalidPathError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
