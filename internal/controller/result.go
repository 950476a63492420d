// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"time"

	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/models"
)

// EffectKind identifies a side effect requested from the presentation layer.
type EffectKind int

const (
	// EffectDownload asks for the processed file to be downloaded after Delay.
	EffectDownload EffectKind = iota + 1
)

// Effect is a side effect the presentation layer performs on behalf of the
// result state machine.
type Effect struct {
	Kind     EffectKind
	Delay    time.Duration
	Origin   models.MediaType
	Download DownloadAction
}

// Interpret maps a decoded endpoint response to a [models.SubmissionResult].
// The operation of the originating request decides which success shape is
// expected. Responses that are neither an error nor the expected success
// shape become a generic failure.
func Interpret(resp models.ProcessResponse, op models.Operation) models.SubmissionResult {
	if resp.Error != nil && *resp.Error != "" {
		return models.NewFailure(*resp.Error)
	}
	if !resp.Success {
		return models.NewFailure(MsgUnrecognizedResponse)
	}

	switch op {
	case models.Hide:
		if resp.Filename == nil || *resp.Filename == "" {
			return models.NewFailure(MsgUnrecognizedResponse)
		}
		original := *resp.Filename
		if resp.OriginalName != nil && *resp.OriginalName != "" {
			original = *resp.OriginalName
		}
		return models.NewHideSuccess(*resp.Filename, original)
	case models.Extract:
		if resp.Data == nil {
			return models.NewFailure(MsgUnrecognizedResponse)
		}
		return models.NewExtractSuccess(*resp.Data)
	default:
		return models.NewFailure(MsgUnrecognizedResponse)
	}
}

// ResultRenderOptions configures a [ResultRenderer].
type ResultRenderOptions struct {
	// DownloadPrefix is the path of the download endpoint, e.g. "/download".
	DownloadPrefix string

	// AutoDownloadDelay is the delay between rendering a hide success and
	// the automatic download. Nil selects [DefaultAutoDownloadDelay]; zero
	// downloads immediately.
	AutoDownloadDelay *time.Duration

	// DisableAutoDownload turns the automatic download off; the download
	// action stays available in the modal.
	DisableAutoDownload bool
}

// ResultRenderer renders submission results into the shared modal.
type ResultRenderer struct {
	page  *Page
	opts  ResultRenderOptions
	delay time.Duration
	log   *logger.Logger
}

// NewResultRenderer creates a [ResultRenderer] over page.
func NewResultRenderer(page *Page, opts ResultRenderOptions, log *logger.Logger) *ResultRenderer {
	delay := DefaultAutoDownloadDelay
	if opts.AutoDownloadDelay != nil && *opts.AutoDownloadDelay >= 0 {
		delay = *opts.AutoDownloadDelay
	}
	return &ResultRenderer{page: page, opts: opts, delay: delay, log: log}
}

// Render shows result in the modal on behalf of workflow origin and returns
// the effects to perform. A hide success yields exactly one delayed download
// effect unless automatic downloads are disabled.
func (r *ResultRenderer) Render(origin models.MediaType, result models.SubmissionResult) []Effect {
	modal := Modal{Visible: true, Origin: origin, Kind: result.Kind}
	state := StateFailed
	var effects []Effect

	switch result.Kind {
	case models.ResultHideSuccess:
		state = StateSucceeded
		modal.Title = TitleSuccess
		modal.Body = MsgHideSucceeded + "\n" + MsgDownloadReady
		modal.Download = DownloadAction{
			Visible:      true,
			Location:     models.DownloadLocation(r.opts.DownloadPrefix, result.Filename, result.OriginalName),
			Filename:     result.Filename,
			OriginalName: result.OriginalName,
		}
		if !r.opts.DisableAutoDownload {
			effects = append(effects, Effect{
				Kind:     EffectDownload,
				Delay:    r.delay,
				Origin:   origin,
				Download: modal.Download,
			})
		}
	case models.ResultExtractSuccess:
		state = StateSucceeded
		modal.Title = TitleExtractedData
		modal.Body = MsgExtractSucceeded
		modal.Data = result.Data
	default:
		modal.Kind = models.ResultFailure
		modal.Title = TitleError
		modal.Body = result.Message
	}

	r.page.Modal = modal
	if s, err := r.page.Session(origin); err == nil {
		s.State = state
	}
	return effects
}

// RequestDownload returns an immediate download effect for the file shown
// in the modal, or false when the modal has no download action.
func (r *ResultRenderer) RequestDownload() (Effect, bool) {
	m := r.page.Modal
	if !m.Visible || !m.Download.Visible {
		return Effect{}, false
	}
	return Effect{Kind: EffectDownload, Origin: m.Origin, Download: m.Download}, true
}

// Dismiss closes the modal. The originating workflow returns to idle; form
// values are left as they are.
func (r *ResultRenderer) Dismiss() {
	origin := r.page.Modal.Origin
	r.page.Modal = Modal{}
	r.toIdle(origin)
}

// DismissAlert closes the transport-failure alert.
func (r *ResultRenderer) DismissAlert() {
	origin := r.page.Alert.Origin
	r.page.Alert = Alert{}
	r.toIdle(origin)
}

func (r *ResultRenderer) toIdle(m models.MediaType) {
	s, err := r.page.Session(m)
	if err != nil {
		return
	}
	if s.State == StateSucceeded || s.State == StateFailed {
		s.State = StateIdle
	}
}
