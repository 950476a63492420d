// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// go-stego-client application. It is populated by merging values from a
// .env file, environment variables, command-line flags, an optional JSON
// file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the location of the processing endpoint and the
	// outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Download holds settings for saving processed files.
	Download Download `envPrefix:"DOWNLOAD_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Used when no version was injected at build time.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings of the processing endpoint.
type Adapter struct {
	// HTTPAddress is the base URL of the processing server
	// (e.g. "http://localhost:5000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ProcessPath is the path of the multipart processing endpoint.
	// Env: ADAPTER_PROCESS_PATH
	ProcessPath string `env:"PROCESS_PATH"`

	// DownloadPath is the path prefix of the processed-file download
	// endpoint.
	// Env: ADAPTER_DOWNLOAD_PATH
	DownloadPath string `env:"DOWNLOAD_PATH"`

	// RequestTimeout bounds a single outbound request (e.g. "30s", "1m").
	// Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Download holds settings for processed-file downloads.
type Download struct {
	// Dir is the directory processed files are saved to.
	// Env: DOWNLOAD_DIR
	Dir string `env:"DIR"`

	// AutoDelay is the delay between a successful hide and the automatic
	// download of its result. Nil means unset so that an explicit zero
	// ("0s", immediate download) survives the merge.
	// Env: DOWNLOAD_AUTO_DELAY
	AutoDelay *time.Duration `env:"AUTO_DELAY"`

	// DisableAuto turns the automatic download off.
	// Env: DOWNLOAD_DISABLE_AUTO
	DisableAuto bool `env:"DISABLE_AUTO"`
}

// Log holds the log sink settings.
type Log struct {
	// File is the path of the JSON log file. Empty selects the default
	// location next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Default values merged after every other source.
const (
	DefaultHTTPAddress  = "http://localhost:5000"
	DefaultProcessPath  = "/process"
	DefaultDownloadPath = "/download"
	DefaultDownloadDir  = "downloads"
	DefaultAutoDelay    = time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:  DefaultHTTPAddress,
			ProcessPath:  DefaultProcessPath,
			DownloadPath: DefaultDownloadPath,
		},
		Download: Download{
			Dir:       DefaultDownloadDir,
			AutoDelay: durationPtr(DefaultAutoDelay),
		},
	}
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (the first source
// that sets a field wins):
//  1. Environment variables (including those loaded from .env)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
