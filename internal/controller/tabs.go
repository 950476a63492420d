// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"fmt"

	"github.com/MKhiriev/go-stego-client/internal/logger"
)

// TabController keeps exactly one workflow active and makes every activation
// start from pristine file inputs.
type TabController struct {
	page *Page
	log  *logger.Logger
}

// NewTabController creates a [TabController] over page.
func NewTabController(page *Page, log *logger.Logger) *TabController {
	return &TabController{page: page, log: log}
}

// Activate selects tab i. Every session, not only the newly active one,
// loses its file selection and preview. Secret payload and password values
// are left untouched.
func (t *TabController) Activate(i int) error {
	if i < 0 || i >= len(t.page.sessions) {
		return fmt.Errorf("%w: %d", ErrTabOutOfRange, i)
	}

	for _, s := range t.page.sessions {
		s.clearSelection()
	}
	t.page.active = i

	t.log.Debug().
		Str("media", t.page.sessions[i].MediaType().String()).
		Msg("tab activated")
	return nil
}

// Next activates the tab after the current one, wrapping around.
func (t *TabController) Next() error {
	n := len(t.page.sessions)
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrTabOutOfRange, 0)
	}
	return t.Activate((t.page.active + 1) % n)
}

// Prev activates the tab before the current one, wrapping around.
func (t *TabController) Prev() error {
	n := len(t.page.sessions)
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrTabOutOfRange, 0)
	}
	return t.Activate((t.page.active - 1 + n) % n)
}
