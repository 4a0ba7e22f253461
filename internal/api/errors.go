package api

import (
	"errors"
	"fmt"
)

// ErrUnexpectedFormat is returned when the verification reply body has
// no parseable first line.
var ErrUnexpectedFormat = errors.New("unexpected response format")

// TransportError represents a network-level failure: the POST could not
// be issued, the connection failed, or the body could not be read.
type TransportError struct {
	Err error
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
