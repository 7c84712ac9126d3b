package repositories

import (
	"fmt"
	"net/http"
)

// NotFoundError reports that the upstream response had no record for the
// requested location.
type NotFoundError struct {
	LocationName string
	Message      string
}

func newNotFoundError(format, locationName string) *NotFoundError {
	return &NotFoundError{
		LocationName: locationName,
		Message:      fmt.Sprintf(format, locationName),
	}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// UpstreamError is any failure talking to the CWA API. Status is zero when no
// HTTP response was received.
type UpstreamError struct {
	Dataset string
	Status  int
	// Message is the "message" field of the upstream error body, if any.
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s: upstream status %d: %s", e.Dataset, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s: upstream status %d", e.Dataset, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Dataset, e.Err)
	}
	return e.Dataset + ": upstream request failed"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) StatusCode() int {
	return e.Status
}
