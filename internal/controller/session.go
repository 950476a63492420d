// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import "github.com/MKhiriev/go-stego-client/models"

// CycleState is the position of a workflow in its submit cycle.
type CycleState int

const (
	StateIdle CycleState = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s CycleState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PreviewState describes what the preview region currently shows.
type PreviewState int

const (
	PreviewEmpty PreviewState = iota
	PreviewLoading
	PreviewReady
	PreviewNameOnly
	PreviewUnavailable
)

// Preview is the view-model of a workflow's preview region.
type Preview struct {
	Visible bool
	State   PreviewState

	// Text is the file name for PreviewNameOnly or the failure reason for
	// PreviewUnavailable.
	Text string

	// Decoded is set for PreviewReady.
	Decoded models.DecodedPreview
}

// SubmitControl is the view-model of a workflow's submit button.
type SubmitControl struct {
	Label    string
	Disabled bool

	original string
}

// WorkflowSession is the per-media-type record of form intent together with
// the visibility state of its widgets.
//
// SecretData and Password keep their values while their inputs are hidden;
// only the request builder decides whether they are sent.
type WorkflowSession struct {
	descriptor Descriptor

	Operation    models.Operation
	Encrypted    bool
	Password     string
	SecretData   string
	SelectedFile *models.SelectedFile

	SecretDataVisible bool
	PasswordVisible   bool

	Preview Preview
	Submit  SubmitControl
	State   CycleState

	// selection increments on every file selection change so that late
	// preview decodes of a superseded selection can be dropped.
	selection uint64
}

func newWorkflowSession(d Descriptor) *WorkflowSession {
	label := "Process " + d.MediaType.Title()
	return &WorkflowSession{
		descriptor:        d,
		Operation:         models.Hide,
		SecretDataVisible: true,
		Submit:            SubmitControl{Label: label, original: label},
	}
}

// MediaType returns the fixed media type of the session.
func (s *WorkflowSession) MediaType() models.MediaType {
	return s.descriptor.MediaType
}

// Descriptor returns the descriptor the session was built from.
func (s *WorkflowSession) Descriptor() Descriptor {
	return s.descriptor
}

// Widgets returns the element names bound to the session.
func (s *WorkflowSession) Widgets() WidgetIDs {
	return s.descriptor.Widgets
}

// SetSecretData stores the typed secret payload. The value is kept even while
// the input is hidden.
func (s *WorkflowSession) SetSecretData(v string) {
	s.SecretData = v
}

// SetPassword stores the typed password. The value is kept even while the
// input is hidden.
func (s *WorkflowSession) SetPassword(v string) {
	s.Password = v
}

func (s *WorkflowSession) clearSelection() {
	s.selection++
	s.SelectedFile = nil
	s.Preview = Preview{}
}

func (s *WorkflowSession) markBusy() {
	s.Submit.Disabled = true
	s.Submit.Label = SubmitLabelProcessing
	s.State = StateSubmitting
}

func (s *WorkflowSession) restoreSubmit() {
	s.Submit.Disabled = false
	s.Submit.Label = s.Submit.original
}
