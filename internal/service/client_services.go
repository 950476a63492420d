package service

import (
	"github.com/MKhiriev/go-stego-client/internal/adapter"
	"github.com/MKhiriev/go-stego-client/internal/config"
	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/internal/store"
	"github.com/MKhiriev/go-stego-client/internal/validators"
	"github.com/MKhiriev/go-stego-client/models"
)

type ClientServices struct {
	StegoService   ClientStegoService
	PreviewService ClientPreviewService
	AppInfoService AppInfoService
}

func NewClientServices(
	storages *store.ClientStorages,
	processingAdapter adapter.ProcessingAdapter,
	buildInfo models.AppBuildInfo,
	cfg config.ClientApp,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		StegoService:   NewClientStegoService(storages, processingAdapter, validators.NewSubmissionValidator(), logger),
		PreviewService: NewClientPreviewService(storages.Carriers, logger),
		AppInfoService: NewAppInfoService(buildInfo, cfg, logger),
	}
}
