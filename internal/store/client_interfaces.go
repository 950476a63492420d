package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-stego-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CarrierFileStorage gives access to the carrier files the user selects on
// the local disk.
type CarrierFileStorage interface {
	// Stat resolves path (a leading "~" expands to the home directory) and
	// describes the regular file found there. Returns [ErrNotRegularFile]
	// for directories and other special files.
	Stat(path string) (models.SelectedFile, error)

	// Open opens the selected file for reading. The caller closes it.
	Open(ctx context.Context, file models.SelectedFile) (io.ReadCloser, error)
}

// DownloadFileStorage persists processed files fetched from the server.
type DownloadFileStorage interface {
	// Save writes file into the download directory under its base name.
	// An existing file is never overwritten: a " (n)" suffix is added to the
	// name instead. Returns [ErrEmptyFileName] if file has no usable name.
	Save(ctx context.Context, file models.DownloadedFile) (models.SavedFile, error)
}
