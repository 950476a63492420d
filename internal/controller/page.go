// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"fmt"

	"github.com/MKhiriev/go-stego-client/models"
)

// DownloadAction is the view-model of the modal's download button.
type DownloadAction struct {
	Visible      bool
	Location     string
	Filename     string
	OriginalName string
}

// Modal is the single result overlay shared by every workflow.
//
// It has no ownership guard: a late response of one workflow replaces
// whatever the modal shows, even if another tab is active by then. Origin
// records which workflow rendered the current content.
type Modal struct {
	Visible  bool
	Title    string
	Body     string
	Origin   models.MediaType
	Kind     models.ResultKind
	Data     string
	Download DownloadAction
}

// Alert is the blocking transport-failure notice.
type Alert struct {
	Visible bool
	Message string
	Origin  models.MediaType
}

// Page is the view-model of the whole interactive surface.
type Page struct {
	sessions []*WorkflowSession
	byMedia  map[models.MediaType]*WorkflowSession
	active   int

	Modal Modal
	Alert Alert
}

// NewPage builds one session per descriptor. The first tab is active.
func NewPage(descriptors []Descriptor) *Page {
	p := &Page{
		sessions: make([]*WorkflowSession, 0, len(descriptors)),
		byMedia:  make(map[models.MediaType]*WorkflowSession, len(descriptors)),
	}
	for _, d := range descriptors {
		s := newWorkflowSession(d)
		p.sessions = append(p.sessions, s)
		p.byMedia[d.MediaType] = s
	}
	return p
}

// Sessions returns the sessions in tab order.
func (p *Page) Sessions() []*WorkflowSession {
	return p.sessions
}

// Session returns the session of media type m.
func (p *Page) Session(m models.MediaType) (*WorkflowSession, error) {
	s, ok := p.byMedia[m]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkflow, m)
	}
	return s, nil
}

// ActiveIndex returns the index of the selected tab.
func (p *Page) ActiveIndex() int {
	return p.active
}

// Active returns the session of the selected tab, or nil for an empty page.
func (p *Page) Active() *WorkflowSession {
	if len(p.sessions) == 0 {
		return nil
	}
	return p.sessions[p.active]
}
