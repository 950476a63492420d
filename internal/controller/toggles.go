// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"fmt"

	"github.com/MKhiriev/go-stego-client/models"
)

// OperationModeToggle shows the secret payload input only for hide.
type OperationModeToggle struct {
	page *Page
}

// NewOperationModeToggle creates an [OperationModeToggle] over page.
func NewOperationModeToggle(page *Page) *OperationModeToggle {
	return &OperationModeToggle{page: page}
}

// Set selects op for the workflow of media type m. The secret payload value
// is not cleared when its input becomes hidden.
func (t *OperationModeToggle) Set(m models.MediaType, op models.Operation) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownOperation, op)
	}
	s, err := t.page.Session(m)
	if err != nil {
		return err
	}

	s.Operation = op
	s.SecretDataVisible = op == models.Hide
	return nil
}

// Toggle flips between hide and extract.
func (t *OperationModeToggle) Toggle(m models.MediaType) error {
	s, err := t.page.Session(m)
	if err != nil {
		return err
	}
	if s.Operation == models.Hide {
		return t.Set(m, models.Extract)
	}
	return t.Set(m, models.Hide)
}

// EncryptionToggle shows the password input only when encryption is on.
type EncryptionToggle struct {
	page *Page
}

// NewEncryptionToggle creates an [EncryptionToggle] over page.
func NewEncryptionToggle(page *Page) *EncryptionToggle {
	return &EncryptionToggle{page: page}
}

// Set changes the encryption flag of the workflow of media type m. The
// password value is not cleared when its input becomes hidden.
func (t *EncryptionToggle) Set(m models.MediaType, checked bool) error {
	s, err := t.page.Session(m)
	if err != nil {
		return err
	}

	s.Encrypted = checked
	s.PasswordVisible = checked
	return nil
}

// Toggle flips the encryption flag.
func (t *EncryptionToggle) Toggle(m models.MediaType) error {
	s, err := t.page.Session(m)
	if err != nil {
		return err
	}
	return t.Set(m, !s.Encrypted)
}
