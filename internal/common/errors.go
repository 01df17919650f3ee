package common

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is an error carrying an HTTP-style status classification.
// The valuation core raises BadRequest and NotFound; everything else is
// treated as unclassified (500) by HTTPStatus.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// BadRequestf builds a BadRequest StatusError.
func BadRequestf(format string, args ...interface{}) error {
	return &StatusError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound StatusError.
func NotFoundf(format string, args ...interface{}) error {
	return &StatusError{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// IsBadRequest reports whether err is (or wraps) a BadRequest StatusError.
func IsBadRequest(err error) bool {
	return statusOf(err) == http.StatusBadRequest
}

// IsNotFound reports whether err is (or wraps) a NotFound StatusError.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// HTTPStatus returns the status classification of err,
// defaulting to 500 for unclassified errors.
func HTTPStatus(err error) int {
	if status := statusOf(err); status != 0 {
		return status
	}
	return http.StatusInternalServerError
}

func statusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}
