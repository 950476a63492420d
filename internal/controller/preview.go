// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/models"
)

// PreviewTask asks the presentation layer to decode File asynchronously and
// hand the outcome back to [FilePreviewBinder.Apply].
type PreviewTask struct {
	MediaType  models.MediaType
	Generation uint64
	File       models.SelectedFile
}

// FilePreviewBinder renders a preview for newly selected files.
type FilePreviewBinder struct {
	page *Page
	log  *logger.Logger
}

// NewFilePreviewBinder creates a [FilePreviewBinder] over page.
func NewFilePreviewBinder(page *Page, log *logger.Logger) *FilePreviewBinder {
	return &FilePreviewBinder{page: page, log: log}
}

// Select records file as the selection of workflow m. A nil file clears the
// selection and hides the preview.
//
// For decoded previews a task is returned and the preview shows a loading
// state until Apply is called; name-only previews are complete immediately.
func (b *FilePreviewBinder) Select(m models.MediaType, file *models.SelectedFile) (*PreviewTask, error) {
	s, err := b.page.Session(m)
	if err != nil {
		return nil, err
	}

	s.clearSelection()
	if file == nil {
		return nil, nil
	}

	selected := *file
	s.SelectedFile = &selected
	s.Preview.Visible = true

	if s.descriptor.PreviewKind == PreviewFileName {
		s.Preview.State = PreviewNameOnly
		s.Preview.Text = selected.Name
		return nil, nil
	}

	s.Preview.State = PreviewLoading
	return &PreviewTask{MediaType: m, Generation: s.selection, File: selected}, nil
}

// Apply binds the decode outcome of task to its workflow's preview. Outcomes
// of superseded selections are dropped and reported as false. A decode error
// is logged and leaves the preview in the unavailable state.
func (b *FilePreviewBinder) Apply(task PreviewTask, decoded models.DecodedPreview, decodeErr error) bool {
	s, err := b.page.Session(task.MediaType)
	if err != nil {
		return false
	}
	if s.selection != task.Generation {
		b.log.Debug().
			Str("media", task.MediaType.String()).
			Str("file", task.File.Name).
			Msg("stale preview dropped")
		return false
	}

	if decodeErr != nil {
		b.log.Warn().Err(decodeErr).
			Str("media", task.MediaType.String()).
			Str("file", task.File.Name).
			Msg("preview decode failed")
		s.Preview.State = PreviewUnavailable
		s.Preview.Text = previewUnavailablePrefix + decodeErr.Error()
		return true
	}

	s.Preview.State = PreviewReady
	s.Preview.Decoded = decoded
	return true
}
