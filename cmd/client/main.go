package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-stego-client/internal/adapter"
	"github.com/MKhiriev/go-stego-client/internal/client"
	"github.com/MKhiriev/go-stego-client/internal/config"
	"github.com/MKhiriev/go-stego-client/internal/controller"
	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/internal/service"
	"github.com/MKhiriev/go-stego-client/internal/store"
	"github.com/MKhiriev/go-stego-client/internal/tui"
	"github.com/MKhiriev/go-stego-client/internal/utils"
	"github.com/MKhiriev/go-stego-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("stego-client", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("stego-client", cfg.Log.File)

	processingAdapter, err := adapter.NewHTTPProcessingAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create processing adapter")
	}

	storages := store.NewClientStorages(cfg.Download, log)

	services := service.NewClientServices(storages, processingAdapter, buildInfo, cfg.App, log)

	autoDelay := cfg.Download.AutoDelay
	ctrl := controller.New(controller.Options{
		Results: controller.ResultRenderOptions{
			DownloadPrefix:      cfg.Adapter.DownloadPath,
			AutoDownloadDelay:   &autoDelay,
			DisableAutoDownload: cfg.Download.DisableAuto,
		},
		NewCycleID: utils.NewCycleID,
	}, log)

	ui, err := tui.New(services, ctrl, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
