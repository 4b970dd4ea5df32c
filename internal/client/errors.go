package client

import "fmt"

// The three ways a request can go wrong, kept as distinct types so
// callers can tell a server rejection from a dead network. None of them
// are retried; every failure is terminal for the operation that hit it.

// UploadError is a server rejection of an upload (bad file, bad CSV).
// Message is the server's own error text when it sent one.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return e.Message
}

// ApplicationError is a structured failure from the search endpoint:
// the server responded, but marked the request unsuccessful.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// TransportError means no response was obtained at all.
type TransportError struct {
	Err error
	Op  string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
