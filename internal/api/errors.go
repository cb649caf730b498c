package api

import "fmt"

// Error is the single failure type the gateway returns. A remote rejection
// carries the non-2xx HTTP status; a network-level failure (no response)
// carries Status == 0. Raw transport errors never escape the gateway.
type Error struct {
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// IsNetwork reports whether the failure happened without any HTTP response.
func (e *Error) IsNetwork() bool { return e.Status == 0 }

// remoteErr builds an Error for a non-2xx response.
func remoteErr(msg string, status int) *Error {
	return &Error{Message: msg, Status: status}
}

// connErr builds an Error for a transport-level failure.
func connErr(msg string, err error) *Error {
	return &Error{Message: msg, Err: err}
}
