package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeJSONFile(t, `{
		"app": { "version": "0.9.0" },
		"adapter": {
			"http_address": "http://stego:5000",
			"process_path": "/process",
			"download_path": "/download",
			"request_timeout": "30s"
		},
		"download": {
			"dir": "/srv/out",
			"auto_delay": "1500ms",
			"disable_auto": true
		},
		"log": { "file": "/var/log/client.log" }
	}`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "http://stego:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/process", cfg.Adapter.ProcessPath)
	assert.Equal(t, "/download", cfg.Adapter.DownloadPath)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/srv/out", cfg.Download.Dir)
	require.NotNil(t, cfg.Download.AutoDelay)
	assert.Equal(t, 1500*time.Millisecond, *cfg.Download.AutoDelay)
	assert.True(t, cfg.Download.DisableAuto)
	assert.Equal(t, "/var/log/client.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := writeJSONFile(t, `{"adapter": `)

	_, err := parseJSON(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := writeJSONFile(t, `{"download": {"auto_delay": "later"}}`)

	_, err := parseJSON(p)

	assert.Error(t, err)
}

func TestParseJSON_NumericDurationIsNanoseconds(t *testing.T) {
	p := writeJSONFile(t, `{"adapter": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := writeJSONFile(t, `{}`)

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
