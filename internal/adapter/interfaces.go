// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the steganography processing server.
//
// The primary abstraction is [ProcessingAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPProcessingAdapter]) that talks multipart/form-data
// to the processing endpoint and plain GET to the download endpoint.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-stego-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/processing_adapter_mock.go -package=mock

// ProcessingAdapter defines transport-agnostic communication with the
// processing server.
type ProcessingAdapter interface {
	// Process submits req together with the carrier content as one
	// multipart request and decodes the JSON answer.
	//
	// A decoded body is returned even for non-2xx statuses when it carries
	// an "error" field, so that the server's message reaches the user. A
	// non-nil error means no usable answer was received: the request could
	// not be sent, the connection failed, or the body is not JSON
	// ([ErrInvalidResponse]).
	Process(ctx context.Context, req models.SubmissionRequest, content io.Reader) (models.ProcessResponse, error)

	// Download fetches the processed file at location, a path relative to
	// the server base URL as produced by [models.DownloadLocation].
	// fallbackName is used when the server does not announce a file name.
	Download(ctx context.Context, location, fallbackName string) (models.DownloadedFile, error)
}
