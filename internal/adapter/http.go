package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-stego-client/internal/config"
	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/internal/utils"
	"github.com/MKhiriev/go-stego-client/models"
)

type httpProcessingAdapter struct {
	client *utils.HTTPClient

	processPath string

	logger *logger.Logger
}

// NewHTTPProcessingAdapter constructs an HTTP implementation of
// [ProcessingAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPProcessingAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ProcessingAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	processPath := adapterCfg.ProcessPath
	if processPath == "" {
		processPath = config.DefaultProcessPath
	}

	return &httpProcessingAdapter{
		client:      utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, logger),
		processPath: processPath,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Process implements [ProcessingAdapter].
func (h *httpProcessingAdapter) Process(ctx context.Context, req models.SubmissionRequest, content io.Reader) (models.ProcessResponse, error) {
	log := h.requestLogger(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetMultipartFormData(req.FormFields()).
		SetFileReader(models.FieldFile, req.File.Name, content).
		Post(h.processPath)
	if err != nil {
		return models.ProcessResponse{}, fmt.Errorf("process request: %w", err)
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Int("bytes", len(resp.Body())).
		Msg("process response received")

	var pr models.ProcessResponse
	if decodeErr := json.Unmarshal(resp.Body(), &pr); decodeErr != nil {
		if err = mapHTTPError(resp); err != nil {
			return models.ProcessResponse{}, err
		}
		return models.ProcessResponse{}, fmt.Errorf("%w: %v", ErrInvalidResponse, decodeErr)
	}

	if resp.IsError() && (pr.Error == nil || *pr.Error == "") {
		return models.ProcessResponse{}, mapHTTPError(resp)
	}

	return pr, nil
}

// Download implements [ProcessingAdapter].
func (h *httpProcessingAdapter) Download(ctx context.Context, location, fallbackName string) (models.DownloadedFile, error) {
	log := h.requestLogger(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		Get(location)
	if err != nil {
		return models.DownloadedFile{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DownloadedFile{}, err
	}

	name, ok := utils.AttachmentFilename(resp.Header().Get("Content-Disposition"))
	if !ok {
		name = fallbackName
	}

	log.Debug().
		Str("location", location).
		Str("name", name).
		Int("bytes", len(resp.Body())).
		Msg("download received")

	return models.DownloadedFile{
		Name:        name,
		ContentType: resp.Header().Get("Content-Type"),
		Content:     resp.Body(),
	}, nil
}

func (h *httpProcessingAdapter) requestLogger(ctx context.Context) *logger.Logger {
	if id, ok := utils.CycleIDFromContext(ctx); ok {
		return &logger.Logger{Logger: h.logger.With().Str("cycle_id", id).Logger()}
	}
	return h.logger
}
