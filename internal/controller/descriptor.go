// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import "github.com/MKhiriev/go-stego-client/models"

// PreviewKind selects how a newly selected file is previewed.
type PreviewKind int

const (
	// PreviewDecoded decodes the file into a displayable representation.
	PreviewDecoded PreviewKind = iota + 1

	// PreviewFileName only shows the selected file name.
	PreviewFileName
)

// WidgetIDs binds a workflow to the concrete names of its interactive
// elements. It is resolved once when the page is built.
type WidgetIDs struct {
	FileInput         string
	OperationSelector string
	SecretDataField   string
	SecretDataGroup   string
	PasswordField     string
	EncryptCheckbox   string
	Form              string
	SubmitButton      string
	Preview           string
}

// NewWidgetIDs returns the "{mediaType}Xxx" naming scheme of a workflow.
func NewWidgetIDs(m models.MediaType) WidgetIDs {
	p := m.String()
	return WidgetIDs{
		FileInput:         p + "File",
		OperationSelector: p + "Operation",
		SecretDataField:   p + "SecretData",
		SecretDataGroup:   p + "SecretDataGroup",
		PasswordField:     p + "Password",
		EncryptCheckbox:   p + "Encrypt",
		Form:              p + "Form",
		SubmitButton:      p + "Submit",
		Preview:           p + "Preview",
	}
}

// Descriptor parameterises the generic workflow for one media type.
type Descriptor struct {
	MediaType   models.MediaType
	PreviewKind PreviewKind
	Widgets     WidgetIDs
}

// NewDescriptor builds the descriptor of m with its default preview kind:
// images and videos are decoded, audio and documents show their name.
func NewDescriptor(m models.MediaType) Descriptor {
	kind := PreviewFileName
	if m == models.Image || m == models.Video {
		kind = PreviewDecoded
	}
	return Descriptor{MediaType: m, PreviewKind: kind, Widgets: NewWidgetIDs(m)}
}

// DefaultDescriptors returns descriptors for every media type in tab order.
func DefaultDescriptors() []Descriptor {
	out := make([]Descriptor, 0, len(models.MediaTypes))
	for _, m := range models.MediaTypes {
		out = append(out, NewDescriptor(m))
	}
	return out
}
