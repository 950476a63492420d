package store

import (
	"github.com/MKhiriev/go-stego-client/internal/config"
	"github.com/MKhiriev/go-stego-client/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Carriers reads the carrier files the user selects.
	Carriers CarrierFileStorage

	// Downloads saves processed files fetched from the server.
	Downloads DownloadFileStorage
}

// NewClientStorages initialises the client storage layer using the supplied
// download configuration and logger. Both storages share one local
// filesystem implementation.
func NewClientStorages(cfg config.ClientDownload, logger *logger.Logger) *ClientStorages {
	logger.Info().Str("download_dir", cfg.Dir).Msg("creating new storages...")

	files := NewLocalFileStorage(cfg.Dir, logger)
	return &ClientStorages{
		Carriers:  files,
		Downloads: files,
	}
}
