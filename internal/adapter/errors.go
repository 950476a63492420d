package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrRequestTooLarge     = errors.New("request entity too large")

	// ErrInvalidResponse is returned when the server answered with a body
	// that is not the expected JSON document.
	ErrInvalidResponse = errors.New("invalid server response")
)
