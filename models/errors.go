package models

import "errors"

var (
	ErrUnknownMediaType = errors.New("unknown media type")
	ErrUnknownOperation = errors.New("unknown operation")
)
