// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"time"

	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/google/uuid"
)

// DefaultAutoDownloadDelay is the delay between a hide success and its
// automatic download when none is configured.
const DefaultAutoDownloadDelay = time.Second

// Options configures [New].
type Options struct {
	// Descriptors lists the workflows in tab order. Defaults to
	// [DefaultDescriptors].
	Descriptors []Descriptor

	// Results configures result rendering and the automatic download.
	Results ResultRenderOptions

	// NewCycleID generates submit cycle identifiers. Defaults to random UUIDs.
	NewCycleID func() string
}

// Controller groups the controllers of one page.
type Controller struct {
	Page        *Page
	Tabs        *TabController
	Previews    *FilePreviewBinder
	Operations  *OperationModeToggle
	Encryption  *EncryptionToggle
	Submissions *SubmissionController
	Results     *ResultRenderer
}

// New builds a page from opts and wires its controllers.
func New(opts Options, log *logger.Logger) *Controller {
	if len(opts.Descriptors) == 0 {
		opts.Descriptors = DefaultDescriptors()
	}
	if opts.NewCycleID == nil {
		opts.NewCycleID = func() string { return uuid.NewString() }
	}
	if opts.Results.DownloadPrefix == "" {
		opts.Results.DownloadPrefix = "/download"
	}

	page := NewPage(opts.Descriptors)
	results := NewResultRenderer(page, opts.Results, log)

	return &Controller{
		Page:        page,
		Tabs:        NewTabController(page, log),
		Previews:    NewFilePreviewBinder(page, log),
		Operations:  NewOperationModeToggle(page),
		Encryption:  NewEncryptionToggle(page),
		Submissions: NewSubmissionController(page, results, opts.NewCycleID, log),
		Results:     results,
	}
}
