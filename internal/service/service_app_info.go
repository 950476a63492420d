package service

import (
	"context"

	"github.com/MKhiriev/go-stego-client/internal/config"
	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService creates an [AppInfoService]. The configured version is
// used when none was injected at build time.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.ClientApp, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		info:   buildInfo.WithVersion(cfg.Version),
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
