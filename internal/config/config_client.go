package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is the configured application version.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the processing server.
	HTTPAddress string
	// ProcessPath is the path of the processing endpoint.
	ProcessPath string
	// DownloadPath is the path prefix of the download endpoint.
	DownloadPath string
	// RequestTimeout is the timeout for outbound requests; zero disables it.
	RequestTimeout time.Duration
}

// ClientDownload contains processed-file download settings.
type ClientDownload struct {
	// Dir is where downloaded files are saved.
	Dir string
	// AutoDelay is the delay of the automatic download after a hide success.
	AutoDelay time.Duration
	// DisableAuto turns the automatic download off.
	DisableAuto bool
}

// ClientLog contains log sink settings.
type ClientLog struct {
	// File is the log file path; empty selects the default location.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App      ClientApp
	Adapter  ClientAdapter
	Download ClientDownload
	Log      ClientLog
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			ProcessPath:    cfg.Adapter.ProcessPath,
			DownloadPath:   cfg.Adapter.DownloadPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Download: ClientDownload{
			Dir:         cfg.Download.Dir,
			AutoDelay:   autoDelay(cfg.Download.AutoDelay),
			DisableAuto: cfg.Download.DisableAuto,
		},
		Log: ClientLog{
			File: cfg.Log.File,
		},
	}
}

func autoDelay(d *time.Duration) time.Duration {
	if d == nil {
		return DefaultAutoDelay
	}
	return *d
}
