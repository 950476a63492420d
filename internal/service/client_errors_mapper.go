// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stego-client/internal/adapter"
)

// mapDownloadError translates the adapter's transport error of a download
// into a service error.
func mapDownloadError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrProcessedFileNotFound, err)
	}

	return err
}
