// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DecodedPreview is the displayable representation of a selected carrier
// file produced by the preview decoder.
type DecodedPreview struct {
	// Render is the terminal rendering of the file (an image thumbnail made
	// of coloured half blocks, or a one-line summary for videos).
	Render string

	// MIMEType is the sniffed content type of the file.
	MIMEType string

	// Size is the file size in bytes.
	Size int64

	// Width and Height are the pixel dimensions of decoded images.
	// Zero for media that is not decoded to pixels.
	Width  int
	Height int
}

// PreviewBounds is the terminal area available to a preview, in cells.
type PreviewBounds struct {
	Width  int
	Height int
}
