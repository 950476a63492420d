// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stego-client/internal/adapter"
	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/internal/store"
	"github.com/MKhiriev/go-stego-client/internal/utils"
	"github.com/MKhiriev/go-stego-client/internal/validators"
	"github.com/MKhiriev/go-stego-client/models"
)

type clientStegoService struct {
	carriers  store.CarrierFileStorage
	downloads store.DownloadFileStorage
	adapter   adapter.ProcessingAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewClientStegoService creates a [ClientStegoService] reading carriers and
// saving downloads through storages and talking to the server through
// processingAdapter. Requests and downloaded files are checked by validator
// first.
func NewClientStegoService(
	storages *store.ClientStorages,
	processingAdapter adapter.ProcessingAdapter,
	validator validators.Validator,
	logger *logger.Logger,
) ClientStegoService {
	return &clientStegoService{
		carriers:  storages.Carriers,
		downloads: storages.Downloads,
		adapter:   processingAdapter,
		validator: validator,
		logger:    logger,
	}
}

func (s *clientStegoService) Select(path string) (models.SelectedFile, error) {
	file, err := s.carriers.Stat(path)
	if err != nil {
		return models.SelectedFile{}, fmt.Errorf("select carrier file: %w", err)
	}
	return file, nil
}

func (s *clientStegoService) Submit(ctx context.Context, cycleID string, req models.SubmissionRequest) (models.ProcessResponse, error) {
	ctx = utils.WithCycleID(ctx, cycleID)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ProcessResponse{}, fmt.Errorf("%w: invalid %s request: %w", ErrSubmissionRejected, req.FileType, err)
	}

	content, err := s.carriers.Open(ctx, req.File)
	if err != nil {
		return models.ProcessResponse{}, fmt.Errorf("%w: open %s: %w", ErrSubmissionRejected, req.File.Name, err)
	}
	defer content.Close()

	resp, err := s.adapter.Process(ctx, req, content)
	if err != nil {
		s.logger.Error().Err(err).
			Str("cycle_id", cycleID).
			Str("media", req.FileType.String()).
			Msg("process request failed")
		return models.ProcessResponse{}, err
	}

	s.logger.Debug().
		Str("cycle_id", cycleID).
		Bool("success", resp.Success).
		Bool("has_error", resp.Error != nil).
		Msg("process response decoded")
	return resp, nil
}

func (s *clientStegoService) Download(ctx context.Context, location, originalName string) (models.SavedFile, error) {
	file, err := s.adapter.Download(ctx, location, originalName)
	if err != nil {
		return models.SavedFile{}, fmt.Errorf("download %s: %w", originalName, mapDownloadError(err))
	}

	if err = s.validator.Validate(ctx, file); err != nil {
		return models.SavedFile{}, fmt.Errorf("invalid download %s: %w", originalName, err)
	}

	saved, err := s.downloads.Save(ctx, file)
	if err != nil {
		return models.SavedFile{}, fmt.Errorf("save %s: %w", file.Name, err)
	}
	return saved, nil
}
