package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFileName        = errors.New("file name is required")
	ErrEmptyFilePath        = errors.New("file path is required")
	ErrInvalidFileType      = errors.New("invalid file type")
	ErrInvalidOperation     = errors.New("invalid operation")
	ErrMissingSecretData    = errors.New("secret data is required to hide")
	ErrUnexpectedSecretData = errors.New("secret data is not sent on extract")
)
