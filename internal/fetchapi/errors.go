package fetchapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Operation names carried by RequestFailedError.
const (
	OpLogin           = "login"
	OpLogout          = "logout"
	OpListBreeds      = "listBreeds"
	OpSearchDogs      = "searchDogs"
	OpGetDogs         = "getDogs"
	OpGetMatch        = "getMatch"
	OpGetLocations    = "getLocations"
	OpSearchLocations = "searchLocations"
)

var (
	ErrTooFewIDs  = errors.New("at least two dog ids are required")
	ErrTooManyIDs = fmt.Errorf("at most %d ids can be sent in one request", MaxBatch)
)

// RequestFailedError is returned by every Client operation when the service
// answers with a non-2xx status or the request never completes. StatusCode is
// 0 for transport errors, in which case Err holds the cause.
type RequestFailedError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *RequestFailedError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s failed with status %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s failed with status %d", e.Operation, e.StatusCode)
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a 401 from the service, which means the
// session cookie is missing or expired.
func IsUnauthorized(err error) bool {
	var rf *RequestFailedError
	return errors.As(err, &rf) && rf.StatusCode == http.StatusUnauthorized
}

// StatusCode extracts the HTTP status of a failed request, or 0.
func StatusCode(err error) int {
	var rf *RequestFailedError
	if errors.As(err, &rf) {
		return rf.StatusCode
	}
	return 0
}
