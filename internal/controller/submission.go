// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/MKhiriev/go-stego-client/models"
)

// Cycle is one submit-response round trip of a workflow.
type Cycle struct {
	ID        string
	MediaType models.MediaType
	Request   models.SubmissionRequest
}

// SubmissionController assembles requests from sessions and tracks the busy
// state of the submit controls.
type SubmissionController struct {
	page    *Page
	results *ResultRenderer
	newID   func() string
	log     *logger.Logger
}

// NewSubmissionController creates a [SubmissionController]. newID generates
// cycle identifiers used for log correlation.
func NewSubmissionController(page *Page, results *ResultRenderer, newID func() string, log *logger.Logger) *SubmissionController {
	return &SubmissionController{page: page, results: results, newID: newID, log: log}
}

// BuildRequest reads s and assembles its request. SecretData is included
// only for hide and Password only when encryption is enabled, whatever the
// hidden inputs still contain.
func BuildRequest(s *WorkflowSession) (models.SubmissionRequest, error) {
	if s.SelectedFile == nil {
		return models.SubmissionRequest{}, ErrNoFileSelected
	}
	if !s.Operation.Valid() {
		return models.SubmissionRequest{}, ErrNoOperation
	}

	req := models.SubmissionRequest{
		File:      *s.SelectedFile,
		FileType:  s.MediaType(),
		Operation: s.Operation,
	}
	if s.Operation == models.Hide {
		secret := s.SecretData
		req.SecretData = &secret
	}
	if s.Encrypted {
		password := s.Password
		req.Password = &password
	}
	return req, nil
}

// Begin starts a submit cycle for workflow m. The submit control is marked
// busy before Begin returns, so the caller issues the network call strictly
// after the control is disabled. A busy control rejects the submit with
// [ErrSubmitInFlight].
//
// Without a selected file no cycle is started: the failure is rendered in
// the modal and [ErrNoFileSelected] is returned.
func (c *SubmissionController) Begin(m models.MediaType) (*Cycle, error) {
	s, err := c.page.Session(m)
	if err != nil {
		return nil, err
	}
	if s.Submit.Disabled {
		return nil, fmt.Errorf("%w: %s", ErrSubmitInFlight, m)
	}

	req, err := BuildRequest(s)
	if err != nil {
		if errors.Is(err, ErrNoFileSelected) {
			c.results.Render(m, models.NewFailure(MsgNoFileSelected))
		}
		return nil, fmt.Errorf("build %s request: %w", m, err)
	}

	s.markBusy()
	cycle := &Cycle{ID: c.newID(), MediaType: m, Request: req}

	c.log.Info().
		Str("cycle_id", cycle.ID).
		Str("media", m.String()).
		Str("operation", req.Operation.String()).
		Bool("encrypted", req.Password != nil).
		Str("file", req.File.Name).
		Msg("submission started")
	return cycle, nil
}

// Settle finishes cycle with the endpoint outcome. The submit control is
// restored on every path. A transport error opens the blocking alert and
// bypasses the modal; otherwise the response is interpreted and rendered,
// and the resulting effects are returned to the caller.
func (c *SubmissionController) Settle(cycle *Cycle, resp models.ProcessResponse, transportErr error) []Effect {
	s, err := c.page.Session(cycle.MediaType)
	if err != nil {
		return nil
	}
	s.restoreSubmit()

	if transportErr != nil {
		s.State = StateFailed
		c.page.Alert = Alert{
			Visible: true,
			Message: transportAlertPrefix + transportErr.Error(),
			Origin:  cycle.MediaType,
		}
		c.log.Error().Err(transportErr).
			Str("cycle_id", cycle.ID).
			Str("media", cycle.MediaType.String()).
			Msg("submission transport failure")
		return nil
	}

	result := Interpret(resp, cycle.Request.Operation)
	c.log.Info().
		Str("cycle_id", cycle.ID).
		Str("media", cycle.MediaType.String()).
		Stringer("result", result.Kind).
		Msg("submission settled")

	return c.results.Render(cycle.MediaType, result)
}
