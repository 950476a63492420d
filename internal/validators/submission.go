// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-stego-client/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldFile targets the selected carrier file of a request.
	FieldFile = "file"

	// FieldFilePath targets the on-disk location of the carrier file.
	FieldFilePath = "file_path"

	// FieldFileType targets the media type sent as "fileType".
	FieldFileType = "file_type"

	// FieldOperation targets the hide/extract operation.
	FieldOperation = "operation"

	// FieldSecretData checks that the secret payload is present exactly for hide.
	FieldSecretData = "secret_data"

	// FieldName targets the name of a downloaded file.
	FieldName = "name"
)

// SubmissionValidator implements [Validator] for the outbound models of the
// stego round trip: [models.SubmissionRequest] and [models.DownloadedFile].
type SubmissionValidator struct{}

// NewSubmissionValidator constructs a SubmissionValidator and returns it as
// the Validator interface.
func NewSubmissionValidator() Validator {
	return &SubmissionValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted; anything else yields ErrUnsupportedType.
func (v *SubmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmissionRequest:
		return v.validateSubmissionRequest(ctx, value, fields...)
	case *models.SubmissionRequest:
		return v.validateSubmissionRequest(ctx, *value, fields...)

	case models.DownloadedFile:
		return v.validateDownloadedFile(ctx, value, fields...)
	case *models.DownloadedFile:
		return v.validateDownloadedFile(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSubmissionRequest validates a request before it is streamed.
//
// Default validated fields (when none specified):
// File, FilePath, FileType, Operation, SecretData.
func (v *SubmissionValidator) validateSubmissionRequest(_ context.Context, req models.SubmissionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFile, FieldFilePath, FieldFileType, FieldOperation, FieldSecretData}
	}

	for _, f := range fields {
		switch f {
		case FieldFile:
			if req.File.Name == "" {
				return ErrEmptyFileName
			}
		case FieldFilePath:
			if req.File.Path == "" {
				return ErrEmptyFilePath
			}
		case FieldFileType:
			if !req.FileType.Valid() {
				return ErrInvalidFileType
			}
		case FieldOperation:
			if !req.Operation.Valid() {
				return ErrInvalidOperation
			}
		case FieldSecretData:
			if req.Operation == models.Hide && req.SecretData == nil {
				return ErrMissingSecretData
			}
			if req.Operation == models.Extract && req.SecretData != nil {
				return ErrUnexpectedSecretData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDownloadedFile validates a processed file before it is saved.
func (v *SubmissionValidator) validateDownloadedFile(_ context.Context, file models.DownloadedFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if file.Name == "" {
				return ErrEmptyFileName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
