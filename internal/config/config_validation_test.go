package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaults())
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *ClientConfig) {}},
		{name: "zero timeout is valid", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }},
		{
			name:    "empty address",
			mutate:  func(c *ClientConfig) { c.Adapter.HTTPAddress = "  " },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "relative process path",
			mutate:  func(c *ClientConfig) { c.Adapter.ProcessPath = "process" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "relative download path",
			mutate:  func(c *ClientConfig) { c.Adapter.DownloadPath = "download" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = -time.Second },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "empty download dir",
			mutate:  func(c *ClientConfig) { c.Download.Dir = "" },
			wantErr: ErrInvalidDownloadConfigs,
		},
		{
			name:    "negative delay",
			mutate:  func(c *ClientConfig) { c.Download.AutoDelay = -time.Millisecond },
			wantErr: ErrInvalidDownloadConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_MapsAllFields(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:      App{Version: "1.0.0"},
		Adapter:  Adapter{HTTPAddress: "h", ProcessPath: "/p", DownloadPath: "/d", RequestTimeout: time.Second},
		Download: Download{Dir: "out", AutoDelay: durationPtr(2 * time.Second), DisableAuto: true},
		Log:      Log{File: "x.log"},
	})

	assert.Equal(t, &ClientConfig{
		App:      ClientApp{Version: "1.0.0"},
		Adapter:  ClientAdapter{HTTPAddress: "h", ProcessPath: "/p", DownloadPath: "/d", RequestTimeout: time.Second},
		Download: ClientDownload{Dir: "out", AutoDelay: 2 * time.Second, DisableAuto: true},
		Log:      ClientLog{File: "x.log"},
	}, cfg)
}

func TestNewClientConfig_UnsetDelayUsesDefault(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{})

	assert.Equal(t, DefaultAutoDelay, cfg.Download.AutoDelay)
}
